// Package encode encodes IR nodes to CBOR (RFC 8949).
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("integer"), Val: ir.FromInt(42)},
//	    {Key: ir.FromString("float"), Val: ir.FromFloat(3.14159)},
//	})
//	err := encode.Encode(node, w)
//
//	// Encode to a byte slice, with map keys in RFC 8949 core
//	// deterministic order and floats in their shortest form.
//	d, err := encode.Bytes(node,
//	    encode.EncodeKeyOrder(encode.BytewiseOrder),
//	    encode.EncodeShortestFloat(true))
//
//	// Render encoded bytes in diagnostic notation
//	text, err := encode.Diagnose(d)
//
// Only definite length items are produced. By default object keys keep
// their insertion order and floats are always 64-bit, so a given tree
// always encodes to the same bytes.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/cborfix/ir - IR representation
//   - github.com/signadot/tony-format/cborfix/fixture - fixtures built on this package
package encode
