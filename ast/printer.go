package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression as a fully-parenthesized s-expression,
// following the teacher's own parenthesize helper. It exists purely
// for tests and debugging, never on the evaluation path.
func PrintExpr(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		if e.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", e.Value)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize(fmt.Sprintf("assign %s", e.Name.Lexeme), e.Value)
	case *Call:
		return parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
	case *Get:
		return parenthesize(fmt.Sprintf("get %s", e.Name.Lexeme), e.Object)
	case *Set:
		return parenthesize(fmt.Sprintf("set %s", e.Name.Lexeme), e.Object, e.Value)
	case *This:
		return "this"
	case *Super:
		return fmt.Sprintf("(super %s)", e.Method.Lexeme)
	default:
		return "<unknown>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(e))
	}
	b.WriteByte(')')

	return b.String()
}
