// Package resolver implements the static pass that walks the AST once
// before evaluation, binding every variable reference to a lexical
// scope distance and enforcing the rules that are cheaper to check
// once than on every evaluation (self-referential initializers,
// top-level return, this/super outside a class, and so on).
package resolver

import (
	"github.com/loxscript/lox/ast"
	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

// functionType tracks what kind of callable body the resolver is
// currently inside, so return rules can be enforced contextually.
type functionType int

const (
	noFunction functionType = iota
	inFunction
	inMethod
	inInitializer
)

type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// slotState distinguishes "declared, not yet defined" (the window
// during which reading the name in its own initializer is an error)
// from "fully defined".
type slotState bool

const (
	declared slotState = false
	defined  slotState = true
)

// Resolver produces a side-table mapping each Variable/Assign/This/Super
// node to the number of enclosing scopes between its use and the scope
// that declares it. Binder is the interface the interpreter's side-table
// sink implements; Resolve calls it once per resolved reference.
type Resolver struct {
	binder Binder

	scopes          []map[string]slotState
	currentFunction functionType
	currentClass    classType

	errors []error
}

// Binder receives each node's resolved scope distance. The interpreter
// implements this directly against its own side-table.
type Binder interface {
	Resolve(node ast.Expr, distance int)
}

func New(binder Binder) *Resolver {
	return &Resolver{binder: binder}
}

// Resolve runs the pass over a whole program's statement list, returning
// every ResolveError found. The pipeline halts before evaluation if this
// is non-empty.
func (r *Resolver) Resolve(stmts []ast.Stmt) []error {
	r.resolveStmts(stmts)
	return r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		if r.currentFunction == noFunction {
			r.fail(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == inInitializer {
				r.fail(s.Keyword.Line, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Class:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.fail(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = defined
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = defined

	for _, method := range s.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && state == declared {
				r.fail(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// nothing to bind
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		switch r.currentClass {
		case noClass:
			r.fail(e.Keyword.Line, "Can't use 'super' outside of a class.")
		case inClass:
			r.fail(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.This:
		if r.currentClass == noClass {
			r.fail(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	}
}

// resolveLocal walks the scope stack innermost-out; a miss leaves no
// side-table entry, which the interpreter treats as "look up globally".
func (r *Resolver) resolveLocal(node ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.binder.Resolve(node, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]slotState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}

	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.fail(name.Line, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = declared
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = defined
}

func (r *Resolver) fail(line int, message string) {
	r.errors = append(r.errors, &loxerror.ResolveError{Message: message, Line: line})
}
