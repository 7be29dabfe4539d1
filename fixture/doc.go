// Package fixture builds the CBOR fixture trees and persists them.
//
// Two presets are provided. Full is the ten key fixture covering every
// kind the encoder supports; Basic is its first five keys. Both are
// pure functions returning a fresh tree on every call.
//
//	n, err := fixture.Generate(fixture.FullPreset, "expected_data.cbor")
//
//	drift, err := fixture.Check(fixture.FullPreset, "expected_data.cbor")
//	if drift != nil {
//	    fmt.Print(drift.Format(false))
//	}
//
// WriteFile never leaves a partially written file behind: data goes to a
// temporary file in the target directory which is renamed into place
// only after it has been fully written and synced.
package fixture
