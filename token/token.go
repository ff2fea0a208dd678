package token

import "fmt"

// Token is a single lexeme produced by the scanner, carrying enough
// location information for error reporting through the whole pipeline.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

// NilV is the zero-value token returned by parser helpers on failure
// paths where no real token is available yet.
var NilV Token

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{kind, lexeme, literal, line}
}

func (t Token) ToString() string {
	return fmt.Sprintf("{Kind(%v), Literal(%v), Lexeme(%s)}", t.Kind, t.Literal, t.Lexeme)
}
