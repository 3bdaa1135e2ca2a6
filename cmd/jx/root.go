package main

import (
	"github.com/scott-cotton/cli"
)

const usageText = `jx works with JSON documents represented as jx values.

Documents are read from files or from standard input ("-"). Output is
the canonical encoding: one line, object keys sorted.

Examples:

	echo '{"b":1,"a":[1,2]}' | jx view
	jx view -multi log.jsonl
	jx get 'user.name' doc.json
	jx diff a.json b.json
	jx patch -merge patch.json doc.json
`

// Root returns the jx command tree.
func Root() *cli.Command {
	return cli.NewCommand("jx").
		WithSynopsis("jx - view, query, diff and patch JSON documents").
		WithDescription(usageText).
		WithSubs(
			ViewCommand(),
			GetCommand(),
			DiffCommand(),
			PatchCommand(),
		)
}
