// Package lox ties the scanner, parser, resolver, and evaluator into
// one programmatic entry point. The CLI/REPL driver (cmd/lox) is the
// only thing that turns a Result into process-visible output and an
// exit code; this package itself never touches os.Exit or a global.
package lox

import (
	"io"
	"os"

	"github.com/loxscript/lox/evaluator"
	"github.com/loxscript/lox/parser"
	"github.com/loxscript/lox/resolver"
	"github.com/loxscript/lox/scanner"
)

// Result reports everything one Session.Run call produced: compile-time
// errors (scanner/parser/resolver, collected as far as each pass goes)
// and, if the program got far enough to execute, the runtime error that
// stopped it.
type Result struct {
	CompileErrors []error
	RuntimeErr    error
}

// HadError reports whether Run produced any compile-time error; runtime
// failures are reported separately by HadRuntimeError. Together they are
// the structured replacement for the source's package-level
// hadError/hadRuntimeError flags (spec.md §9 flags these as a wart).
func (r Result) HadError() bool {
	return len(r.CompileErrors) > 0
}

func (r Result) HadRuntimeError() bool {
	return r.RuntimeErr != nil
}

// Session owns one interpreter and its print destination. A REPL keeps
// a single long-lived Session so variables and functions declared on
// one line persist into the next; a one-shot file run can just build a
// fresh Session per invocation.
type Session struct {
	interp *evaluator.Interpreter
}

// New builds a Session whose print statements write to out. A nil out
// defaults to os.Stdout.
func New(out io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	return &Session{interp: evaluator.New(out)}
}

// Run scans, parses, resolves, and — if every prior pass was clean —
// interprets source, against this Session's persistent global
// environment.
func (s *Session) Run(source string) Result {
	tokens, err := scanner.New(source).Scan()
	if err != nil {
		return Result{CompileErrors: []error{err}}
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		return Result{CompileErrors: parseErrs}
	}

	res := resolver.New(s.interp)
	if resolveErrs := res.Resolve(stmts); len(resolveErrs) > 0 {
		return Result{CompileErrors: resolveErrs}
	}

	if err := s.interp.Interpret(stmts); err != nil {
		return Result{RuntimeErr: err}
	}

	return Result{}
}
