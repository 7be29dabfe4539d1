package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tony-format/cborfix/debug"
	"github.com/signadot/tony-format/cborfix/encode"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrDrift = errors.New("fixture drift")

// Drift describes how a fixture file differs from its preset. OnDisk
// and Fresh are in diagnostic notation; Diffs edits OnDisk into Fresh.
type Drift struct {
	Path   string
	Preset Preset
	OnDisk string
	Fresh  string
	Diffs  []diffpatch.Diff
}

// Check compares the file at path with a fresh encoding of p. It
// returns a nil Drift when they are byte identical.
func Check(p Preset, path string, opts ...encode.EncodeOption) (*Drift, error) {
	fresh, err := Bytes(p, opts...)
	if err != nil {
		return nil, err
	}
	onDisk, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(fresh, onDisk) {
		return nil, nil
	}
	res := &Drift{
		Path:   path,
		Preset: p,
		OnDisk: diagOrHex(onDisk),
		Fresh:  diagOrHex(fresh),
	}
	if res.OnDisk == res.Fresh {
		// same values, different encoding, e.g. float width or key order
		res.OnDisk = fmt.Sprintf("% x", onDisk)
		res.Fresh = fmt.Sprintf("% x", fresh)
	}
	dmp := diffpatch.New()
	res.Diffs = dmp.DiffCleanupSemantic(dmp.DiffMain(res.OnDisk, res.Fresh, false))
	if debug.Check() {
		debug.Logf("check %s against %s: %d diffs\n", path, p.String(), len(res.Diffs))
	}
	return res, nil
}

func diagOrHex(d []byte) string {
	s, err := encode.Diagnose(d)
	if err != nil {
		return fmt.Sprintf("[malformed] % x", d)
	}
	return s
}

func (d *Drift) Error() string {
	return fmt.Sprintf("%s: %s differs from preset %s", ErrDrift, d.Path, d.Preset)
}

func (d *Drift) Unwrap() error {
	return ErrDrift
}

// Format renders the drift with removed text in [-..-] and added text in
// {+..+}, or in red and green when useColor is set.
func (d *Drift) Format(useColor bool) string {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	head := color.New(color.Bold)
	if useColor {
		del.EnableColor()
		ins.EnableColor()
		head.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
		head.DisableColor()
	}
	buf := &strings.Builder{}
	buf.WriteString(head.Sprintf("%s differs from preset %s", d.Path, d.Preset))
	buf.WriteString("\n")
	for _, diff := range d.Diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			if useColor {
				buf.WriteString(del.Sprint(diff.Text))
			} else {
				buf.WriteString("[-" + diff.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if useColor {
				buf.WriteString(ins.Sprint(diff.Text))
			} else {
				buf.WriteString("{+" + diff.Text + "+}")
			}
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	buf.WriteString("\n")
	return buf.String()
}
