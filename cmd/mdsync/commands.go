package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "color",
			Description: "color mode: auto, always, never",
			Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mdsync").
		WithSynopsis("mdsync [opts] command [opts]").
		WithDescription("mdsync keeps a readme in sync with package docs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mdsyncMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			DocsCommand(cfg),
			DumpCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check [-readme path] [-pkg dir]").
		WithDescription("check that the readme matches the package docs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DocsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Docs, "docs").
		WithAliases("d").
		WithSynopsis("docs [-pkg dir]").
		WithDescription("print the package docs as markdown").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docs(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("parse markdown files and dump their item trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
