package main

import (
	"fmt"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/query"

	"github.com/scott-cotton/cli"
)

type getConfig struct {
	*cli.Command
}

// GetCommand evaluates an expression against a document.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <expr> [file] - evaluate an expression against a document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: jx get <expr> [file]", cli.ErrUsage)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getDocFile(cc, file)
	if err != nil {
		return err
	}
	res, err := query.Eval(args[0], doc)
	if err != nil {
		return fmt.Errorf("get %q: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
