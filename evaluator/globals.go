package evaluator

import (
	"time"

	env "github.com/loxscript/lox/environment"
)

// defineGlobals wires every native binding the language defines. clock
// is the only one (spec.md §1 non-goals: no other builtins) — kept as
// its own function so that fact stays visible at a glance.
func defineGlobals(globals *env.Env) {
	globals.Define("clock", &NativeFn{arity: 0, fn: func(interp *Interpreter, args []any) (any, error) {
		return float64(time.Now().Unix()), nil
	}})
}
