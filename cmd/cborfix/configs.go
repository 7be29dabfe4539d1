package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/cborfix/encode"
	"github.com/signadot/tony-format/cborfix/fixture"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Out      string `cli:"name=o desc='output file (default expected_data.cbor)'"`
	Shortest bool   `cli:"name=shortest desc='encode floats in their shortest exact form'"`
	Check    bool   `cli:"name=check desc='compare the output file with the preset instead of writing it'"`
	Diag     bool   `cli:"name=diag desc='print the output in diagnostic notation'"`
	Color    bool   `cli:"name=color desc='color output'"`
	List     bool   `cli:"name=l aliases=list desc='list presets'"`

	Preset *fixture.Preset
	Order  *encode.KeyOrder

	Main *cli.Command
}

func (cfg *MainConfig) presetOpt(_ *cli.Context, v string) (any, error) {
	p, err := fixture.ParsePreset(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Preset = &p
	return p, nil
}

func (cfg *MainConfig) orderOpt(_ *cli.Context, v string) (any, error) {
	o, err := encode.ParseKeyOrder(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Order = &o
	return o, nil
}

func (cfg *MainConfig) preset() fixture.Preset {
	if cfg.Preset != nil {
		return *cfg.Preset
	}
	return fixture.FullPreset
}

func (cfg *MainConfig) outPath() string {
	if cfg.Out != "" {
		return cfg.Out
	}
	return fixture.DefaultPath
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeShortestFloat(cfg.Shortest),
	}
	if cfg.Order != nil {
		res = append(res, encode.EncodeKeyOrder(*cfg.Order))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
