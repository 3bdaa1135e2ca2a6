package main

import (
	"fmt"

	jx "github.com/jx-format/go-jx"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"

	"github.com/scott-cotton/cli"
)

type patchConfig struct {
	*cli.Command
	Merge bool `cli:"name=merge aliases=m desc='apply an RFC 7386 merge patch instead of an RFC 6902 patch'"`
}

// PatchCommand applies a patch document to a target document.
func PatchCommand() *cli.Command {
	cfg := &patchConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch [flags] <patch> [file] - apply a patch to a document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: jx patch [-merge] <patch> [file]", cli.ErrUsage)
	}
	patchDoc, err := getDocFile(cc, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getDocFile(cc, file)
	if err != nil {
		return err
	}
	var res *ir.Value
	if cfg.Merge {
		res, err = jx.MergePatch(doc, patchDoc)
	} else {
		res, err = jx.ApplyPatch(doc, patchDoc)
	}
	if err != nil {
		return fmt.Errorf("patch %s: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
