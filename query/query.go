// Package query evaluates expressions against a parsed document.
//
// Expressions use the expr language. The document's top-level entries are
// in scope as variables, projected to plain Go values the way [ir.ToAny]
// projects them, and caller environment entries are layered on top. Two
// functions are built in: get(path) resolves a dotted path against the
// document and yields nil when absent, and getenv(name) reads a process
// environment variable.
package query

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/ir"
)

// Run compiles src and evaluates it against doc.
func Run(doc *yamlet.Document, src string, env map[string]any) (any, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	scope := runScope(doc, env)
	if debug.Query() {
		debug.Logf("query: run %q with %d names in scope\n", src, len(scope))
	}
	res, err := expr.Run(prg, scope)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	return res, nil
}

func runScope(doc *yamlet.Document, env map[string]any) map[string]any {
	scope := map[string]any{}
	if m, ok := ir.ToAny(doc.Root).(map[string]any); ok {
		for k, v := range m {
			scope[k] = v
		}
	}
	for k, v := range env {
		scope[k] = v
	}
	return scope
}

func exprOpts(doc *yamlet.Document) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			v := doc.View().At(params[0].(string))
			if !v.Ok() {
				return nil, nil
			}
			return ir.ToAny(v.Node()), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
