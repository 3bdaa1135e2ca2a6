// Package query evaluates expressions against documents.
package query

import (
	"github.com/expr-lang/expr"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/gomap"
	"github.com/jx-format/go-jx/ir"
)

// Eval compiles and runs an expression against doc and returns the
// result as a value. The whole document is bound as "doc"; when the
// document is an object its top-level fields are bound directly as
// well, so `user.name` and `doc.user.name` are equivalent.
func Eval(src string, doc *ir.Value) (*ir.Value, error) {
	native := gomap.FromIR(doc)
	env := map[string]any{}
	if m, ok := native.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = native

	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q -> %v\n", src, out)
	}
	return gomap.ToIR(out)
}
