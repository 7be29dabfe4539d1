package fixture

import "github.com/signadot/tony-format/cborfix/ir"

// DefaultPath is where the external test suite expects the fixture.
const DefaultPath = "expected_data.cbor"

var binaryBlob = []byte{0xde, 0xad, 0xbe, 0xef}

func kv(key string, val *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(key), Val: val}
}

// basicPairs are the leading pairs shared by both presets.
func basicPairs() []ir.KeyVal {
	return []ir.KeyVal{
		kv("integer", ir.FromInt(42)),
		kv("float", ir.FromFloat(3.14159)),
		kv("string", ir.FromString("Hello, CBOR!")),
		kv("array", ir.FromInts(1, 2, 3)),
		kv("map", ir.FromKeyVals([]ir.KeyVal{
			kv("a", ir.FromInt(1)),
			kv("b", ir.FromInt(2)),
		})),
	}
}

// Full returns the fixture with every supported kind:
//
//	{"integer": 42, "float": 3.14159, "string": "Hello, CBOR!",
//	 "array": [1, 2, 3], "map": {"a": 1, "b": 2},
//	 "bool_true": true, "bool_false": false, "none": null,
//	 "binary": h'deadbeef', "nested": {"list": [1, {"inner": "value"}]}}
func Full() *ir.Node {
	pairs := append(basicPairs(),
		kv("bool_true", ir.FromBool(true)),
		kv("bool_false", ir.FromBool(false)),
		kv("none", ir.Null()),
		kv("binary", ir.FromBytes(binaryBlob)),
		kv("nested", ir.FromKeyVals([]ir.KeyVal{
			kv("list", ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				ir.FromKeyVals([]ir.KeyVal{
					kv("inner", ir.FromString("value")),
				}),
			})),
		})),
	)
	return ir.FromKeyVals(pairs)
}

// Basic returns the first five keys of Full.
func Basic() *ir.Node {
	return ir.FromKeyVals(basicPairs())
}
