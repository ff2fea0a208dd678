package ast

import (
	"testing"

	"github.com/loxscript/lox/token"
)

func TestPrintNestedBinary(t *testing.T) {
	expr := &Binary{
		Left:     &Unary{Operator: token.New(token.Minus, "-", nil, 1), Right: &Literal{Value: 123.0}},
		Operator: token.New(token.Star, "*", nil, 1),
		Right:    &Grouping{Expression: &Literal{Value: 45.67}},
	}

	got := PrintExpr(expr)
	want := "(* (- 123) (group 45.67))"
	if got != want {
		t.Errorf("PrintExpr() = %q, want %q", got, want)
	}
}

func TestPrintNilLiteral(t *testing.T) {
	if got := PrintExpr(&Literal{Value: nil}); got != "nil" {
		t.Errorf("PrintExpr() = %q, want %q", got, "nil")
	}
}
