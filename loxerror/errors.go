// Package loxerror defines the four error kinds the pipeline can raise
// and the formatting rules the driver uses to render them.
package loxerror

import (
	"fmt"

	"github.com/loxscript/lox/token"
)

// LexError is raised by the scanner on the first malformed lexeme.
type LexError struct {
	Message string
	Line    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is raised by the parser; a parse pass collects as many as
// it can by synchronizing to the next statement boundary.
type ParseError struct {
	Message string
	Token   token.Token
}

func (e *ParseError) Error() string {
	if e.Token.Kind == token.Eof {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// ResolveError is raised by the resolver; the pipeline halts before
// any evaluation happens.
type ResolveError struct {
	Message string
	Line    int
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError is raised by the interpreter and halts the program.
type RuntimeError struct {
	Message string
	Token   token.Token
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}
