package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mdsync/mdsync/render"
)

type MainConfig struct {
	Dir string `cli:"name=C desc='project directory (default .)'"`

	ColorMode render.Mode

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) colorOpt(_ *cli.Context, a string) (any, error) {
	m, err := render.ParseMode(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.ColorMode = m
	return m, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) projectDir() string {
	if cfg.Dir == "" {
		return "."
	}
	return cfg.Dir
}

type CheckConfig struct {
	*MainConfig

	Readme string `cli:"name=readme desc='readme path, overrides the config file'"`
	Pkg    string `cli:"name=pkg desc='documented package directory, overrides the config file'"`
	Quiet  bool   `cli:"name=q aliases=quiet desc='no output when in sync'"`

	Check *cli.Command
}

type DocsConfig struct {
	*MainConfig

	Pkg string `cli:"name=pkg desc='documented package directory, overrides the config file'"`

	Docs *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
