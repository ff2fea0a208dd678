package evaluator

import (
	"github.com/loxscript/lox/ast"
	env "github.com/loxscript/lox/environment"
)

// LoxFunction is a user-defined function or method together with the
// environment it closed over at declaration time.
type LoxFunction struct {
	declaration   *ast.Function
	closure       *env.Env
	isInitializer bool
}

func NewLoxFunction(declaration *ast.Function, closure *env.Env, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *LoxFunction) Arity() int {
	return len(f.declaration.Params)
}

// Call runs the function body in a fresh environment enclosing its
// closure. A returnSignal from the body supplies the result, unless
// this is an initializer, which always yields the bound instance
// regardless of what (if anything) the body returned.
func (f *LoxFunction) Call(interp *Interpreter, args []any) (any, error) {
	callEnv := env.NewChild(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, callEnv)
	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a copy of f whose closure additionally defines "this" as
// instance, the mechanism method lookup uses to produce a callable that
// already knows its receiver.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := env.NewChild(f.closure)
	env.Define("this", instance)
	return &LoxFunction{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
