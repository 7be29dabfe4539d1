package fixture

import (
	"fmt"

	"github.com/signadot/tony-format/cborfix/debug"
	"github.com/signadot/tony-format/cborfix/encode"
)

// Bytes builds and encodes preset p.
func Bytes(p Preset, opts ...encode.EncodeOption) ([]byte, error) {
	node := p.Build()
	if node == nil {
		return nil, fmt.Errorf("%w: %d", ErrBadPreset, int(p))
	}
	if debug.Encode() {
		debug.Logf("preset %s tree %s\n", p.String(), node)
	}
	d, err := encode.Bytes(node, opts...)
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("preset %s (%s): %d bytes\n  %s\n", p.String(), encode.OptsString(opts...), len(d), d)
	}
	return d, nil
}

// Generate builds, encodes and writes preset p to path, returning the
// number of bytes written.
func Generate(p Preset, path string, opts ...encode.EncodeOption) (int, error) {
	d, err := Bytes(p, opts...)
	if err != nil {
		return 0, err
	}
	if err := WriteFile(path, d); err != nil {
		return 0, err
	}
	return len(d), nil
}
