// Package ir provides the value tree that cborfix encodes.
//
// # Overview
//
// A fixture is represented as a tree of *Node. The tree is a recursive
// tagged union: the Type field selects which payload field holds the
// value. Every kind a fixture can contain has exactly one Type:
//
//   - NullType: null
//   - BoolType: boolean, in Bool
//   - IntType: 64-bit signed integer, in Int64
//   - FloatType: IEEE-754 double, in Float64
//   - StringType: UTF-8 text, in String
//   - BytesType: raw byte sequence, in Bytes
//   - ArrayType: ordered list of nodes, in Values
//   - ObjectType: ordered key/value pairs, in Fields and Values
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Fields are string typed.
// The order of Fields is the insertion order and is preserved by every
// operation in this module, including encoding.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("integer"), Val: ir.FromInt(42)},
//	    {Key: ir.FromString("binary"), Val: ir.FromBytes([]byte{0xde, 0xad})},
//	})
//
// Constructors do not check their children: a nil child or a non-string
// key is kept in the tree and reported as an error by encoding.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Constructors always build
// fresh nodes, so independent callers never share a tree.
package ir
