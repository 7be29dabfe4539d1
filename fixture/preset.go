package fixture

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/cborfix/ir"
)

type Preset int

const (
	FullPreset Preset = iota
	BasicPreset
)

var ErrBadPreset = errors.New("bad preset")

func ParsePreset(v string) (Preset, error) {
	p, ok := map[string]Preset{
		"f":     FullPreset,
		"full":  FullPreset,
		"b":     BasicPreset,
		"basic": BasicPreset,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPreset, v)
}

func (p Preset) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p Preset) MarshalText() ([]byte, error) {
	switch p {
	case FullPreset:
		return []byte("full"), nil
	case BasicPreset:
		return []byte("basic"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a preset>", p)
	}
}

func (p *Preset) UnmarshalText(d []byte) error {
	pp, err := ParsePreset(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Build returns a fresh tree for p, or nil if p is not a known preset.
func (p Preset) Build() *ir.Node {
	switch p {
	case FullPreset:
		return Full()
	case BasicPreset:
		return Basic()
	default:
		return nil
	}
}

// Description is a one line summary of p for listings.
func (p Preset) Description() string {
	switch p {
	case FullPreset:
		return "every supported kind: ints, floats, text, arrays, maps, bools, null, bytes, nesting"
	case BasicPreset:
		return "integer, float, string, array and map only"
	default:
		return ""
	}
}

// AllPresets returns all presets, the default first.
func AllPresets() []Preset {
	return []Preset{FullPreset, BasicPreset}
}
