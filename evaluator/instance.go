package evaluator

import (
	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

// LoxInstance is a runtime object: a class reference plus a mutable
// field table.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]any
}

func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: make(map[string]any)}
}

// Get checks fields before methods, so a field can shadow a method of
// the same name. A method hit is bound to this instance before return.
func (i *LoxInstance) Get(name token.Token) (any, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}

	if method := i.class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}

	return nil, &loxerror.RuntimeError{Message: "Undefined property '" + name.Lexeme + "'.", Token: name}
}

func (i *LoxInstance) Set(name token.Token, value any) {
	i.fields[name.Lexeme] = value
}

func (i *LoxInstance) String() string {
	return i.class.name + " instance"
}
