package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{})
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"preset"},
			Description: "fixture preset: full/f, basic/b (default full)",
			Type:        cli.NamedFuncOpt(cfg.presetOpt, "(preset)"),
		},
		&cli.Opt{
			Name:        "order",
			Description: "map key order: insertion/i, length/l, bytewise/b (default insertion)",
			Type:        cli.NamedFuncOpt(cfg.orderOpt, "(order)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cborfix").
		WithSynopsis("cborfix [opts]").
		WithDescription("cborfix writes the CBOR fixture expected by the decoder test suite.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cborfix(cfg, cc, args)
		})
}
