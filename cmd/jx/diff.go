package main

import (
	"fmt"

	jx "github.com/jx-format/go-jx"

	"github.com/scott-cotton/cli"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand prints the difference between two documents.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - show the difference between two documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: jx diff <a> <b>", cli.ErrUsage)
	}
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return err
	}
	d := jx.Diff(a, b)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprintln(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
