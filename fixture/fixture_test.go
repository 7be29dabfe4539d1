package fixture

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/signadot/tony-format/cborfix/encode"
	"github.com/signadot/tony-format/cborfix/ir"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
)

const (
	fullHex = "aa" +
		"67696e7465676572182a" + // "integer": 42
		"65666c6f6174fb400921f9f01b866e" + // "float": 3.14159
		"66737472696e676c48656c6c6f2c2043424f5221" + // "string": "Hello, CBOR!"
		"65617272617983010203" + // "array": [1, 2, 3]
		"636d6170a26161016162" + "02" + // "map": {"a": 1, "b": 2}
		"69626f6f6c5f74727565f5" + // "bool_true": true
		"6a626f6f6c5f66616c7365f4" + // "bool_false": false
		"646e6f6e65f6" + // "none": null
		"6662696e61727944deadbeef" + // "binary": h'deadbeef'
		"666e6573746564a1646c6973748201a165696e6e65726576616c7565" // "nested": {...}

	basicHex = "a5" +
		"67696e7465676572182a" +
		"65666c6f6174fb400921f9f01b866e" +
		"66737472696e676c48656c6c6f2c2043424f5221" +
		"65617272617983010203" +
		"636d6170a2616101616202"
)

func TestFullKeys(t *testing.T) {
	want := []string{"integer", "float", "string", "array", "map",
		"bool_true", "bool_false", "none", "binary", "nested"}
	if diff := cmp.Diff(want, Full().Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestBasicKeys(t *testing.T) {
	want := []string{"integer", "float", "string", "array", "map"}
	if diff := cmp.Diff(want, Basic().Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestPresetBytes(t *testing.T) {
	tests := []struct {
		preset Preset
		hex    string
	}{
		{FullPreset, fullHex},
		{BasicPreset, basicHex},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			d, err := Bytes(tt.preset)
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(d); got != tt.hex {
				t.Errorf("got  %s\nwant %s", got, tt.hex)
			}
		})
	}
}

func TestFullDecodes(t *testing.T) {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := dm.Unmarshal(encode.MustBytes(Full()), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"integer":    uint64(42),
		"float":      3.14159,
		"string":     "Hello, CBOR!",
		"array":      []any{uint64(1), uint64(2), uint64(3)},
		"map":        map[string]any{"a": uint64(1), "b": uint64(2)},
		"bool_true":  true,
		"bool_false": false,
		"none":       nil,
		"binary":     []byte{0xde, 0xad, 0xbe, 0xef},
		"nested": map[string]any{
			"list": []any{uint64(1), map[string]any{"inner": "value"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}
}

func TestBasicIsPrefixOfFull(t *testing.T) {
	full, basic := Full(), Basic()
	for i, k := range basic.Keys() {
		if ir.Compare(basic.Values[i], ir.Get(full, k)) != 0 {
			t.Errorf("%s differs between presets", k)
		}
	}
}

func TestFreshTrees(t *testing.T) {
	a := Full()
	ir.Get(a, "binary").Bytes[0] = 0
	ir.Get(a, "array").Values[0].Int64 = 99
	b := Full()
	if ir.Get(b, "binary").Bytes[0] != 0xde {
		t.Error("binary blob shared between trees")
	}
	if ir.Get(b, "array").Values[0].Int64 != 1 {
		t.Error("array shared between trees")
	}
	if !bytes.Equal(encode.MustBytes(b), encode.MustBytes(Full())) {
		t.Error("fresh trees encode differently")
	}
}

func TestDeterministic(t *testing.T) {
	for _, p := range AllPresets() {
		first, err := Bytes(p)
		if err != nil {
			t.Fatal(err)
		}
		for range 10 {
			d, err := Bytes(p)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(first, d) {
				t.Fatalf("%s: output changed between runs", p)
			}
		}
	}
}

func TestDiagnoseFull(t *testing.T) {
	got, err := encode.Diagnose(encode.MustBytes(Full()))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"integer": 42, "float": 3.14159_3, "string": "Hello, CBOR!", ` +
		`"array": [1, 2, 3], "map": {"a": 1, "b": 2}, "bool_true": true, ` +
		`"bool_false": false, "none": null, "binary": h'deadbeef', ` +
		`"nested": {"list": [1, {"inner": "value"}]}}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
