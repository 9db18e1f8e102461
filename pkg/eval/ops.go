package eval

import (
	"unicode/utf8"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/lisp"
)

func (ev *Evaluator) evalOperands(form string, args []lisp.LVal, env *environ.Environ) (lhs, rhs lisp.LVal, err error) {
	if err := checkArity(form, args, 2); err != nil {
		return lisp.LVal{}, lisp.LVal{}, err
	}
	lhs, err = ev.Eval(args[0], env)
	if err != nil {
		return lisp.LVal{}, lisp.LVal{}, err
	}
	rhs, err = ev.Eval(args[1], env)
	if err != nil {
		return lisp.LVal{}, lisp.LVal{}, err
	}
	return lhs, rhs, nil
}

func (ev *Evaluator) evalBinary(op string, args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	lhs, rhs, err := ev.evalOperands(op, args, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	return binary(op, lhs, rhs)
}

func binary(op string, lhs, rhs lisp.LVal) (lisp.LVal, error) {
	if op == "eq" {
		if lhs.Type == lisp.LList || rhs.Type == lisp.LList {
			return lisp.False(), nil
		}
		return lisp.Bool(lisp.Equal(lhs, rhs)), nil
	}
	x, ok := lisp.GetInt(lhs)
	if !ok {
		return lisp.LVal{}, &lisp.TypeError{Op: op, Value: lhs}
	}
	y, ok := lisp.GetInt(rhs)
	if !ok {
		return lisp.LVal{}, &lisp.TypeError{Op: op, Value: rhs}
	}
	switch op {
	case "+":
		return lisp.Int(x + y), nil
	case "-":
		return lisp.Int(x - y), nil
	case "*":
		return lisp.Int(x * y), nil
	case ">":
		return lisp.Bool(x > y), nil
	case "/":
		if y == 0 {
			return lisp.LVal{}, lisp.ErrDivisionByZero
		}
		return lisp.Int(floorDiv(x, y)), nil
	case "mod":
		if y == 0 {
			return lisp.LVal{}, lisp.ErrDivisionByZero
		}
		return lisp.Int(floorMod(x, y)), nil
	default:
		panic("unknown operator: " + op)
	}
}

// floorDiv returns x/y rounded toward negative infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv(x, y).  The result has the sign
// of y.
func floorMod(x, y int64) int64 {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// evalCons prepends to a list or concatenates two strings.
func (ev *Evaluator) evalCons(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	head, tail, err := ev.evalOperands("cons", args, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	if cells, ok := lisp.GetList(tail); ok {
		list := make([]lisp.LVal, 0, len(cells)+1)
		list = append(list, head)
		list = append(list, cells...)
		return lisp.List(list...), nil
	}
	s2, ok := lisp.GetString(tail)
	if !ok {
		return lisp.LVal{}, &lisp.TypeError{Op: "cons", Value: tail}
	}
	s1, ok := lisp.GetString(head)
	if !ok {
		return lisp.LVal{}, &lisp.TypeError{Op: "cons", Value: head}
	}
	return lisp.String(s1 + s2), nil
}

// evalSequence evaluates the single operand of head, tail and empty, which
// must be a list or a string.
func (ev *Evaluator) evalSequence(form string, args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity(form, args, 1); err != nil {
		return lisp.LVal{}, err
	}
	v, err := ev.Eval(args[0], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	if v.Type != lisp.LList && v.Type != lisp.LString {
		return lisp.LVal{}, &lisp.NotAListError{Value: v}
	}
	return v, nil
}

func (ev *Evaluator) evalHead(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	v, err := ev.evalSequence("head", args, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	if n, _ := lisp.SeqLen(v); n == 0 {
		return lisp.LVal{}, lisp.ErrEmptyListAccess
	}
	if s, ok := lisp.GetString(v); ok {
		_, size := utf8.DecodeRuneInString(s)
		return lisp.String(s[:size]), nil
	}
	cells, _ := lisp.GetList(v)
	return cells[0], nil
}

func (ev *Evaluator) evalTail(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	v, err := ev.evalSequence("tail", args, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	if n, _ := lisp.SeqLen(v); n == 0 {
		return lisp.LVal{}, lisp.ErrEmptyListAccess
	}
	if s, ok := lisp.GetString(v); ok {
		_, size := utf8.DecodeRuneInString(s)
		return lisp.String(s[size:]), nil
	}
	cells, _ := lisp.GetList(v)
	return lisp.List(cells[1:]...), nil
}

func (ev *Evaluator) evalEmpty(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	v, err := ev.evalSequence("empty", args, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	n, _ := lisp.SeqLen(v)
	return lisp.Bool(n == 0), nil
}
