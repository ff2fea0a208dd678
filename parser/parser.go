// Package parser implements a recursive-descent parser over the token
// sequence produced by the scanner, building the ast package's tagged
// union of expression and statement nodes.
package parser

import (
	"slices"

	"github.com/loxscript/lox/ast"
	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

const maxArgs = 255

type Parser struct {
	tokens  []token.Token
	current int
	errors  []error
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence, returning every statement it
// could build. On a malformed statement it records a ParseError and
// synchronizes to the next likely statement boundary so later errors in
// the same file still surface.
func (p *Parser) Parse() ([]ast.Stmt, []error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, p.errors
}

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(token.Less) {
		superName, err := p.consume(token.Identifier, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = &ast.Variable{Name: superName}
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*ast.Function))
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				return nil, &loxerror.ParseError{Message: "Can't have more than 255 parameters.", Token: p.peek()}
			}

			param, err := p.consume(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}

	body, err := p.blockStmts()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.blockStmts()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Stmts: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars into the while-loop/block form spec.md §4.2
// describes rather than carrying a dedicated AST node.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr = &ast.Literal{Value: true}
	if !p.check(token.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Stmts: []ast.Stmt{initializer, body}}
	}

	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()

	var value ast.Expr
	var err error
	if !p.check(token.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ast.While{Condition: condition, Body: body}, nil
}

func (p *Parser) blockStmts() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.Expression{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses a left-hand expression as an ordinary or-expression
// first, then retroactively converts it to an Assign/Set node if '='
// follows. Any other left-hand shape is a parse error that does not
// consume the right-hand side, per spec.md §4.2.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		if _, ok := expr.(*ast.Variable); !ok {
			if _, ok := expr.(*ast.Get); !ok {
				return nil, &loxerror.ParseError{Message: "Invalid assignment target.", Token: equals}
			}
		}

		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if get, ok := expr.(*ast.Get); ok {
			return &ast.Set{Object: get.Object, Name: get.Name, Value: value}, nil
		}
		return &ast.Assign{Name: expr.(*ast.Variable).Name, Value: value}, nil
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}

	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr

	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				return nil, &loxerror.ParseError{Message: "Can't have more than 255 arguments.", Token: p.peek()}
			}

			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	paren, err := p.consume(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}, nil
	case p.match(token.True):
		return &ast.Literal{Value: true}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.Super):
		keyword := p.previous()
		if _, err := p.consume(token.Dot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(token.Identifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}

	return nil, &loxerror.ParseError{Message: "Expect expression.", Token: p.peek()}
}

// synchronize discards tokens until a statement boundary so the next
// declaration() call has a fresh chance, letting Parse collect more
// than one error per pass.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.NilV, &loxerror.ParseError{Message: message, Token: p.peek()}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
