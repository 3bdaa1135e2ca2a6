package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"

	"github.com/scott-cotton/cli"
)

func readDoc(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Value, error) {
	d, err := readDoc(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}
