package environ

import (
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Closure is a function value.  Env is the environment the closure was
// created in and is never changed after creation.
type Closure struct {
	Env    *Environ
	Params []symbol.ID
	Body   lisp.LVal
}

var _ lisp.Func = (*Closure)(nil)

// Arity implements lisp.Func.
func (c *Closure) Arity() int {
	return len(c.Params)
}

// NewClosure returns an LClosure value capturing env.
func NewClosure(env *Environ, params []symbol.ID, body lisp.LVal) lisp.LVal {
	return lisp.Closure(&Closure{
		Env:    env,
		Params: params,
		Body:   body,
	})
}

// GetClosure extracts a Closure from v.  GetClosure returns false if v is not
// LClosure or does not contain a Closure.
func GetClosure(v lisp.LVal) (*Closure, bool) {
	fn, ok := lisp.GetFunc(v)
	if !ok {
		return nil, false
	}
	c, ok := fn.(*Closure)
	return c, ok
}
