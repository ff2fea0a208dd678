package evaluator

// LoxClass is a runtime class value: a method table plus an optional
// superclass link. Calling a class instantiates it.
type LoxClass struct {
	name       string
	superclass *LoxClass
	methods    map[string]*LoxFunction
}

func NewLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

// FindMethod checks the class's own table, then recurses to the
// superclass. Fields shadow methods, but that check happens in
// LoxInstance.Get, not here.
func (c *LoxClass) FindMethod(name string) *LoxFunction {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of init, if the class (or an ancestor) defines
// one, else zero.
func (c *LoxClass) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates an instance and, if an initializer exists, binds and
// runs it against the new instance before returning it.
func (c *LoxClass) Call(interp *Interpreter, args []any) (any, error) {
	instance := NewLoxInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *LoxClass) String() string {
	return c.name
}
