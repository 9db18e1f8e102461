// Package environ implements lexical environments and the closures that
// capture them.
package environ

import (
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Environ is a lexical environment.  Environ contains local symbol bindings
// and a parent environment.  Environ is in the scope of its parent's bindings.
//
// Environments are shared by reference.  Every closure and call frame holding
// an Environ observes bindings later made in it with Set.
type Environ struct {
	parent   *Environ
	bindings Bindings
}

// New returns a new environment.  If parent is nil a root Environ will be
// returned.
func New(parent *Environ, bindings Bindings) *Environ {
	if bindings == nil {
		bindings = NewBindings(0)
	}
	return &Environ{
		parent:   parent,
		bindings: bindings,
	}
}

// Parent returns the enclosing environment, or nil for a root environment.
func (env *Environ) Parent() *Environ {
	return env.parent
}

// Lookup returns the value bound to sym in env or its nearest ancestor.
// Lookup returns an UnboundSymbolError if no scope binds sym.
func (env *Environ) Lookup(sym symbol.ID) (lisp.LVal, error) {
	for e := env; e != nil; e = e.parent {
		v, ok := e.bindings.Get(sym)
		if ok {
			return v, nil
		}
	}
	return lisp.LVal{}, &lisp.UnboundSymbolError{Symbol: sym}
}

// Set binds sym to v in env.  Ancestor scopes are never modified; a binding
// for sym in an ancestor is shadowed.
func (env *Environ) Set(sym symbol.ID, v lisp.LVal) {
	env.bindings.Put(sym, v)
}

// Extend returns a new child environment of env containing bindings.
func (env *Environ) Extend(bindings Bindings) *Environ {
	return New(env, bindings)
}

// Names returns the symbols bound locally in env in binding order.
func (env *Environ) Names() []symbol.ID {
	return env.bindings.Names()
}
