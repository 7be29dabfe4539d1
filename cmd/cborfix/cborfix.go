package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/tony-format/cborfix/encode"
	"github.com/signadot/tony-format/cborfix/fixture"

	"github.com/scott-cotton/cli"
)

func cborfix(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return usage(cfg, cc, err)
	}
	if len(args) != 0 {
		return usage(cfg, cc, fmt.Errorf("%w: unexpected arguments %q", cli.ErrUsage, args))
	}
	if cfg.List {
		for _, p := range fixture.AllPresets() {
			fmt.Fprintf(cc.Out, "%-6s %s\n", p, p.Description())
		}
		return nil
	}
	if cfg.Check {
		return check(cfg, cc)
	}
	return generate(cfg, cc)
}

func usage(cfg *MainConfig, cc *cli.Context, err error) error {
	if errors.Is(err, cli.ErrUsage) {
		cfg.Main.Usage(cc, err)
		os.Exit(cfg.Main.Exit(cc, err))
	}
	return err
}

func generate(cfg *MainConfig, cc *cli.Context) error {
	path := cfg.outPath()
	p := cfg.preset()
	n, err := fixture.Generate(p, path, cfg.encOpts()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "expected data generated in %s\n", path)
	theLog.Info("generated", "path", path, "preset", p.String(), "bytes", n)
	if !cfg.Diag {
		return nil
	}
	return printPreset(cc, p, cfg.encOpts())
}

func check(cfg *MainConfig, cc *cli.Context) error {
	path := cfg.outPath()
	p := cfg.preset()
	drift, err := fixture.Check(p, path, cfg.encOpts()...)
	if err != nil {
		return err
	}
	if drift != nil {
		fmt.Fprint(cc.Out, drift.Format(cfg.useColor(cc.Out)))
		return drift
	}
	theLog.Info("fixture up to date", "path", path, "preset", p.String())
	if cfg.Diag {
		return printPreset(cc, p, cfg.encOpts())
	}
	return nil
}

func printPreset(cc *cli.Context, p fixture.Preset, opts []encode.EncodeOption) error {
	d, err := fixture.Bytes(p, opts...)
	if err != nil {
		return err
	}
	s, err := encode.Diagnose(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, s)
	return err
}
