// Package env implements chained name-to-value scopes: the runtime
// home of every variable, closure, and block in a running Lox program.
package env

import (
	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

type Env struct {
	outer *Env

	values map[string]any
}

func New() *Env {
	return &Env{values: make(map[string]any), outer: nil}
}

func NewChild(outer *Env) *Env {
	return &Env{values: make(map[string]any), outer: outer}
}

// Define unconditionally sets name in this scope; redefinition is
// allowed (the global scope relies on this for REPL re-declarations).
func (e *Env) Define(name string, value any) {
	e.values[name] = value
}

// Assign sets name only if it's already visible in this scope or an
// enclosing one.
func (e *Env) Assign(tok token.Token, value any) error {
	if _, ok := e.values[tok.Lexeme]; ok {
		e.values[tok.Lexeme] = value
		return nil
	}

	if e.outer != nil {
		return e.outer.Assign(tok, value)
	}

	return &loxerror.RuntimeError{Message: "Undefined variable '" + tok.Lexeme + "'.", Token: tok}
}

// Get looks up name, walking outward through enclosing scopes.
func (e *Env) Get(tok token.Token) (any, error) {
	if val, ok := e.values[tok.Lexeme]; ok {
		return val, nil
	}

	if e.outer != nil {
		return e.outer.Get(tok)
	}

	return nil, &loxerror.RuntimeError{Message: "Undefined variable '" + tok.Lexeme + "'.", Token: tok}
}

// ancestor walks distance enclosing links. Walking off the end of the
// chain is a resolver/interpreter bug, not a user-facing error.
func (e *Env) ancestor(distance int) *Env {
	env := e
	for i := 0; i < distance; i++ {
		if env.outer == nil {
			panic("env: walked past the global scope while resolving a binding")
		}
		env = env.outer
	}
	return env
}

// GetAt reads name directly out of the scope distance links away,
// bypassing the walk-and-miss fallback Get uses for globals.
func (e *Env) GetAt(distance int, name string) any {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the scope distance links away.
func (e *Env) AssignAt(distance int, tok token.Token, value any) {
	e.ancestor(distance).values[tok.Lexeme] = value
}
