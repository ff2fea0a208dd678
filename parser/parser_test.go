package parser

import (
	"testing"

	"github.com/loxscript/lox/ast"
	"github.com/loxscript/lox/scanner"
)

func parseSource(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens, err := scanner.New(source).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	stmts, errs := New(tokens).Parse()
	if len(errs) != 0 {
		t.Fatalf("Parse() errors = %v", errs)
	}
	return stmts
}

func TestArithmeticPrecedence(t *testing.T) {
	stmts := parseSource(t, "1 + 2 * 3;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	exprStmt, ok := stmts[0].(*ast.Expression)
	if !ok {
		t.Fatalf("got %T, want *ast.Expression", stmts[0])
	}

	if got, want := ast.PrintExpr(exprStmt.Expr), "(+ 1 (* 2 3))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	outer, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block", stmts[0])
	}
	if len(outer.Stmts) != 2 {
		t.Fatalf("got %d outer statements, want 2 (init, while)", len(outer.Stmts))
	}
	if _, ok := outer.Stmts[0].(*ast.Var); !ok {
		t.Errorf("first statement is %T, want *ast.Var", outer.Stmts[0])
	}

	whileStmt, ok := outer.Stmts[1].(*ast.While)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.While", outer.Stmts[1])
	}

	body, ok := whileStmt.Body.(*ast.Block)
	if !ok {
		t.Fatalf("while body is %T, want *ast.Block", whileStmt.Body)
	}
	if len(body.Stmts) != 2 {
		t.Fatalf("got %d body statements, want 2 (print, increment)", len(body.Stmts))
	}
}

func TestForWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts := parseSource(t, "for (;;) print 1;")
	whileStmt := stmts[0].(*ast.While)

	lit, ok := whileStmt.Condition.(*ast.Literal)
	if !ok {
		t.Fatalf("condition is %T, want *ast.Literal", whileStmt.Condition)
	}
	if lit.Value != true {
		t.Errorf("condition = %v, want true", lit.Value)
	}
}

func TestAssignmentTargets(t *testing.T) {
	stmts := parseSource(t, "a = 1; obj.field = 2;")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}

	first := stmts[0].(*ast.Expression).Expr
	if _, ok := first.(*ast.Assign); !ok {
		t.Errorf("got %T, want *ast.Assign", first)
	}

	second := stmts[1].(*ast.Expression).Expr
	if _, ok := second.(*ast.Set); !ok {
		t.Errorf("got %T, want *ast.Set", second)
	}
}

func TestInvalidAssignmentTargetIsAnError(t *testing.T) {
	tokens, err := scanner.New("1 = 2;").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	_, errs := New(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected a parse error for an invalid assignment target")
	}
}

func TestClassWithSuperclass(t *testing.T) {
	stmts := parseSource(t, "class B < A { hi() { return 1; } }")
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("got %T, want *ast.Class", stmts[0])
	}
	if class.Superclass == nil {
		t.Fatal("expected a superclass")
	}
	if class.Superclass.Name.Lexeme != "A" {
		t.Errorf("superclass = %s, want A", class.Superclass.Name.Lexeme)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "hi" {
		t.Errorf("methods = %+v, want single method 'hi'", class.Methods)
	}
}

func TestSynchronizationCollectsMultipleErrors(t *testing.T) {
	tokens, err := scanner.New("var; var; var ok = 1;").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	stmts, errs := New(tokens).Parse()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2 (one synchronized past)", len(errs))
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d recovered statements, want 1", len(stmts))
	}
}

func TestParamAndArgLimit(t *testing.T) {
	var b []byte
	b = append(b, "fun f("...)
	for i := 0; i < 256; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, 'a')
		b = appendInt(b, i)
	}
	b = append(b, ") {}"...)

	tokens, err := scanner.New(string(b)).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	_, errs := New(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected a parse error for more than 255 parameters")
	}

	var c []byte
	c = append(c, "f("...)
	for i := 0; i < 256; i++ {
		if i > 0 {
			c = append(c, ',')
		}
		c = appendInt(c, i)
	}
	c = append(c, ");"...)

	tokens, err = scanner.New(string(c)).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	_, errs = New(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected a parse error for more than 255 arguments")
	}
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b = append(b, digits[i])
	}
	return b
}
