package evaluator

import (
	"fmt"
	"strconv"

	"github.com/loxscript/lox/loxerror"
	"github.com/loxscript/lox/token"
)

// isTruthy implements spec.md §4.5: only false and nil are falsey.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements strict equality: nil equals only nil, and values
// of different dynamic types are never equal.
func isEqual(left, right any) bool {
	if left == nil && right == nil {
		return true
	}
	if left == nil || right == nil {
		return false
	}
	return left == right
}

func checkNumberOperand(op token.Token, operand any) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, &loxerror.RuntimeError{Message: "Operand must be a number.", Token: op}
}

func checkNumberOperands(op token.Token, left, right any) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &loxerror.RuntimeError{Message: "Operands must be numbers.", Token: op}
	}
	return l, r, nil
}

// stringify renders a runtime value the way print displays it: whole
// doubles drop their trailing ".0", nil prints literally, and anything
// with a String method (callables, instances) uses it.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
