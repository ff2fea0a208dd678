package lox_test

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/loxscript/lox"
)

//go:embed testdata/arithmetic.lox
var arithmeticSrc string

//go:embed testdata/closure_counter.lox
var closureCounterSrc string

//go:embed testdata/resolver_binding.lox
var resolverBindingSrc string

//go:embed testdata/class_init.lox
var classInitSrc string

//go:embed testdata/super_dispatch.lox
var superDispatchSrc string

//go:embed testdata/runtime_error.lox
var runtimeErrorSrc string

func run(t *testing.T, source string) (string, lox.Result) {
	t.Helper()
	var out strings.Builder
	result := lox.New(&out).Run(source)
	return out.String(), result
}

func TestArithmeticPrecedence(t *testing.T) {
	out, result := run(t, arithmeticSrc)
	if result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: compile=%v runtime=%v", result.CompileErrors, result.RuntimeErr)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestClosureCounter(t *testing.T) {
	out, result := run(t, closureCounterSrc)
	if result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: compile=%v runtime=%v", result.CompileErrors, result.RuntimeErr)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestResolverFixedBinding(t *testing.T) {
	out, result := run(t, resolverBindingSrc)
	if result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: compile=%v runtime=%v", result.CompileErrors, result.RuntimeErr)
	}
	if out != "global\nglobal\n" {
		t.Errorf("got %q, want %q", out, "global\nglobal\n")
	}
}

func TestClassInitAndMethod(t *testing.T) {
	out, result := run(t, classInitSrc)
	if result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: compile=%v runtime=%v", result.CompileErrors, result.RuntimeErr)
	}
	if out != "Hi X\n" {
		t.Errorf("got %q, want %q", out, "Hi X\n")
	}
}

func TestSuperDispatch(t *testing.T) {
	out, result := run(t, superDispatchSrc)
	if result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: compile=%v runtime=%v", result.CompileErrors, result.RuntimeErr)
	}
	if out != "A\nB\n" {
		t.Errorf("got %q, want %q", out, "A\nB\n")
	}
}

func TestRuntimeErrorHaltsAndReports(t *testing.T) {
	_, result := run(t, runtimeErrorSrc)
	if result.HadError() {
		t.Fatalf("unexpected compile error: %v", result.CompileErrors)
	}
	if !result.HadRuntimeError() {
		t.Fatal("expected a runtime error")
	}

	want := "Operands must be numbers.\n[line 1]"
	if result.RuntimeErr.Error() != want {
		t.Errorf("got %q, want %q", result.RuntimeErr.Error(), want)
	}
}

func TestClassInheritingFromItselfFailsAtResolveTime(t *testing.T) {
	_, result := run(t, "class Oops < Oops {}")
	if !result.HadError() {
		t.Fatal("expected a resolve-time error")
	}
}

func TestTopLevelReturnFailsAtResolveTime(t *testing.T) {
	_, result := run(t, "return 1;")
	if !result.HadError() {
		t.Fatal("expected a resolve-time error")
	}
}

func TestSessionPersistsGlobalsAcrossRuns(t *testing.T) {
	var out strings.Builder
	session := lox.New(&out)

	if result := session.Run("var x = 1;"); result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: %v %v", result.CompileErrors, result.RuntimeErr)
	}
	if result := session.Run("print x + 1;"); result.HadError() || result.HadRuntimeError() {
		t.Fatalf("unexpected error: %v %v", result.CompileErrors, result.RuntimeErr)
	}

	if out.String() != "2\n" {
		t.Errorf("got %q, want %q", out.String(), "2\n")
	}
}
