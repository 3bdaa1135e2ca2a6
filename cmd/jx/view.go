package main

import (
	"fmt"
	"os"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/gomap"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type viewConfig struct {
	*cli.Command
	Multi bool `cli:"name=multi aliases=m desc='parse a stream of whitespace separated documents'"`
	YAML  bool `cli:"name=yaml desc='render documents as YAML'"`
	Color bool `cli:"name=color aliases=c desc='force colored output'"`
}

// ViewCommand parses documents and prints their canonical form.
func ViewCommand() *cli.Command {
	cfg := &viewConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "view").
		WithSynopsis("view [flags] [file...] - parse documents and print them").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *viewConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var encOpts []encode.EncodeOption
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		encOpts = append(encOpts, encode.EncodeColors(encode.NewColors()))
	}
	for _, file := range args {
		if err := cfg.viewFile(cc, file, encOpts); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *viewConfig) viewFile(cc *cli.Context, file string, encOpts []encode.EncodeOption) error {
	d, err := readDoc(cc, file)
	if err != nil {
		return err
	}
	var vals []*ir.Value
	if cfg.Multi {
		vals, err = parse.ParseMulti(d)
	} else {
		var v *ir.Value
		v, err = parse.Parse(d)
		vals = []*ir.Value{v}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for _, v := range vals {
		if err := cfg.show(cc, v, encOpts); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *viewConfig) show(cc *cli.Context, v *ir.Value, encOpts []encode.EncodeOption) error {
	if cfg.YAML {
		out, err := yaml.Marshal(gomap.FromIR(v))
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	}
	if err := encode.Encode(v, cc.Out, encOpts...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cc.Out)
	return err
}
