package evaluator

// Callable is any Lox value that can appear on the left of a Call
// expression: native functions, user functions, and classes (whose call
// form is instantiation).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []any) (any, error)
}

// NativeFn wraps a host function as a Lox callable. clock is the only
// one the language defines (see globals.go).
type NativeFn struct {
	arity int
	fn    func(interp *Interpreter, args []any) (any, error)
}

func (f *NativeFn) Arity() int { return f.arity }

func (f *NativeFn) Call(interp *Interpreter, args []any) (any, error) {
	return f.fn(interp, args)
}

func (f *NativeFn) String() string { return "<native fn>" }
