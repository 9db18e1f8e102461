package lisp

import (
	"errors"
	"fmt"

	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Evaluation failures that carry no context.
var (
	// ErrEmptyExpression is returned when an empty list is evaluated.
	ErrEmptyExpression = errors.New("cannot evaluate empty expression")
	// ErrEmptyListAccess is returned by head and tail on an empty list or
	// string.
	ErrEmptyListAccess = errors.New("empty list")
	// ErrDivisionByZero is returned by / and mod when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// UnboundSymbolError is returned when a symbol is not bound in any scope of
// an environment.
type UnboundSymbolError struct {
	Symbol symbol.ID
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %v", e.Symbol)
}

// NotASymbolError is returned when a symbol was required, such as the name in
// define and defn or a lambda parameter.
type NotASymbolError struct {
	Value LVal
}

func (e *NotASymbolError) Error() string {
	return fmt.Sprintf("%v is not a symbol", e.Value)
}

// NotAListError is returned when a list (or, for sequence operations, a
// string) was required.
type NotAListError struct {
	Value LVal
}

func (e *NotAListError) Error() string {
	return fmt.Sprintf("%v is not a list", e.Value)
}

// NotAFunctionError is returned when a value that is not a closure is called.
type NotAFunctionError struct {
	Value LVal
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("%v is not a function", e.Value)
}

// ArityError is returned when the number of arguments given to a closure or
// a special form does not match the number it expects.  Form is empty for
// closure calls.
type ArityError struct {
	Form     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	if e.Form != "" {
		return fmt.Sprintf("%s: wrong number of arguments, expected %d got %d", e.Form, e.Expected, e.Got)
	}
	return fmt.Sprintf("wrong number of arguments, expected %d got %d", e.Expected, e.Got)
}

// TypeError is returned when an operator receives an operand of the wrong
// type.
type TypeError struct {
	Op    string
	Value LVal
}

func (e *TypeError) Error() string {
	switch e.Op {
	case "cons":
		return fmt.Sprintf("cons: %v is not a string or list", e.Value)
	default:
		return fmt.Sprintf("%s: only integers supported for math expressions, got %v %v", e.Op, e.Value.Type, e.Value)
	}
}

// StackExhaustedError is returned when evaluation nests deeper than the
// evaluator allows, typically because of unbounded recursion.
type StackExhaustedError struct {
	Depth int
}

func (e *StackExhaustedError) Error() string {
	return fmt.Sprintf("stack exhausted: maximum evaluation depth %d exceeded", e.Depth)
}
