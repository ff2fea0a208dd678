// Package evaluator is the tree-walking interpreter: the runtime value
// model (Callable, LoxFunction, LoxClass, LoxInstance) and the
// Interpreter that drives statement execution and expression
// evaluation against it, consulting the resolver's side-table for
// variable lookups.
package evaluator

import (
	"fmt"
	"io"

	"github.com/loxscript/lox/ast"
	env "github.com/loxscript/lox/environment"
	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

// returnSignal is the internal control-flow value Return statements
// raise. It satisfies error so it can travel through the same
// (value, error) shape every other statement uses, but it is not a
// user-facing error: LoxFunction.Call always catches it, and the
// resolver forbids top-level return, so Interpret never sees one.
type returnSignal struct {
	value any
}

func (r *returnSignal) Error() string { return "return outside a function call" }

// Interpreter walks the AST and evaluates it against a chain of
// environments, rooted at globals. Print output goes to out rather than
// directly to os.Stdout, so callers (the REPL, tests) can redirect it.
type Interpreter struct {
	globals     *env.Env
	environment *env.Env
	locals      map[ast.Expr]int
	out         io.Writer
}

func New(out io.Writer) *Interpreter {
	globals := env.New()
	defineGlobals(globals)

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		out:         out,
	}
}

// Resolve implements resolver.Binder: it records the scope distance the
// resolver computed for a Variable/Assign/This/Super node.
func (i *Interpreter) Resolve(node ast.Expr, distance int) {
	i.locals[node] = distance
}

// Interpret executes a program's statements in the global environment,
// stopping at the first RuntimeError.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expr)
		return err
	case *ast.Print:
		value, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, stringify(value))
		return nil
	case *ast.Var:
		var value any
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return i.executeBlock(s.Stmts, env.NewChild(i.environment))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := NewLoxFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value any
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}
	case *ast.Class:
		return i.executeClass(s)
	}

	return nil
}

func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *LoxClass
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return &loxerror.RuntimeError{Message: "Superclass must be a class.", Token: s.Superclass.Name}
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	methodEnv := i.environment
	if s.Superclass != nil {
		methodEnv = env.NewChild(methodEnv)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewLoxFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := NewLoxClass(s.Name.Lexeme, superclass, methods)
	return i.environment.Assign(s.Name, class)
}

// executeBlock runs stmts in blockEnv, restoring the previous
// environment on every exit path — normal completion, a propagating
// RuntimeError, or a returnSignal unwinding toward a LoxFunction.Call.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, blockEnv *env.Env) error {
	previous := i.environment
	i.environment = blockEnv
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	}

	return nil, fmt.Errorf("evaluator: unhandled expression %T", expr)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case token.Bang:
		return !isTruthy(right), nil
	}

	return nil, fmt.Errorf("evaluator: unhandled unary operator %s", e.Operator.Lexeme)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Greater:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l > r, err
	case token.GreaterEqual:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l >= r, err
	case token.Less:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l < r, err
	case token.LessEqual:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l <= r, err
	case token.BangEqual:
		return !isEqual(left, right), nil
	case token.EqualEqual:
		return isEqual(left, right), nil
	case token.Minus:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l - r, err
	case token.Slash:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, &loxerror.RuntimeError{Message: "Division by zero.", Token: e.Operator}
		}
		return l / r, nil
	case token.Star:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		return l * r, err
	case token.Plus:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &loxerror.RuntimeError{Message: "Operands must be two numbers or two strings.", Token: e.Operator}
	}

	return nil, fmt.Errorf("evaluator: unhandled binary operator %s", e.Operator.Lexeme)
}

func (i *Interpreter) evalLogical(e *ast.Logical) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (any, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e]; ok {
		i.environment.AssignAt(distance, e.Name, value)
		return value, nil
	}

	if err := i.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (any, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &loxerror.RuntimeError{Message: "Can only call functions and classes.", Token: e.Paren}
	}

	if len(args) != fn.Arity() {
		return nil, &loxerror.RuntimeError{
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
			Token:   e.Paren,
		}
	}

	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (any, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, &loxerror.RuntimeError{Message: "Only instances have properties.", Token: e.Name}
	}

	return instance.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.Set) (any, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, &loxerror.RuntimeError{Message: "Only instances have fields.", Token: e.Name}
	}

	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (any, error) {
	distance := i.locals[e]

	superclass, _ := i.environment.GetAt(distance, "super").(*LoxClass)
	this, _ := i.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &loxerror.RuntimeError{Message: "Undefined property '" + e.Method.Lexeme + "'.", Token: e.Method}
	}

	return method.Bind(this), nil
}

func (i *Interpreter) lookUpVariable(name token.Token, node ast.Expr) (any, error) {
	if distance, ok := i.locals[node]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}
