package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mdsync/mdsync/debug"
	"github.com/mdsync/mdsync/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dumpArg(cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func dumpArg(w io.Writer, arg string) error {
	var src []byte
	var err error
	if arg == "-" {
		src, err = io.ReadAll(os.Stdin)
		arg = "<stdin>"
	} else {
		src, err = os.ReadFile(arg)
	}
	if err != nil {
		return err
	}
	d, err := parse.Parse(src, arg)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", arg, err)
	}
	_, err = fmt.Fprintln(w, debug.DocumentString(d))
	return err
}
