package main

import (
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/mdsync/mdsync/config"
	"github.com/mdsync/mdsync/extract"
)

func docs(cfg *DocsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Docs.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: docs takes no arguments", cli.ErrUsage)
	}
	dir := cfg.projectDir()
	pcfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if cfg.Pkg != "" {
		pcfg.Package = cfg.Pkg
	}
	fd, err := extract.PackageDocs(filepath.Join(dir, pcfg.Package), pcfg.BuildTags)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(fd.Text)
	return err
}
