package environ

import (
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Bindings is a set of variable bindings (e.g. function arguments).
type Bindings interface {
	// Len returns the number of variables bound
	Len() int
	// Get returns the value bound to the given symbol.
	Get(symbol.ID) (lisp.LVal, bool)
	// Put creates or updates a binding for the given symbol with the given
	// value.
	Put(symbol.ID, lisp.LVal)
	// Copy returns an independent set of bindings with the same contents.
	Copy() Bindings
	// Names returns the bound symbols in the order they were first bound.
	Names() []symbol.ID
}

// NewBindings creates and initializes a new set of variable bindings that has
// initial capacity to hold n values.
func NewBindings(n int) Bindings {
	return newBindings(n)
}

// ZipBindings binds each of params to the value at the same index in args.
// ZipBindings returns an ArityError if the lengths differ.
func ZipBindings(params []symbol.ID, args []lisp.LVal) (Bindings, error) {
	if len(params) != len(args) {
		return nil, &lisp.ArityError{Expected: len(params), Got: len(args)}
	}
	s := newBindings(len(params))
	for i := range params {
		s.Put(params[i], args[i])
	}
	return s, nil
}

type bindingPair struct {
	name  symbol.ID
	value lisp.LVal
}

// bindings is an ordered set of variable bindings.
type bindings struct {
	pairs []bindingPair
	index map[symbol.ID]int
}

var _ Bindings = (*bindings)(nil)

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[symbol.ID]int, n),
	}
}

// Len returns the number of symbols bound.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Get returns the value bound to variable.
func (s *bindings) Get(variable symbol.ID) (lisp.LVal, bool) {
	i, ok := s.index[variable]
	if !ok {
		return lisp.LVal{}, false
	}
	return s.pairs[i].value, true
}

// Put binds variable to v.  If variable was previously bound its entry will be
// updated.  Otherwise Put creates a new variable binding.
func (s *bindings) Put(variable symbol.ID, v lisp.LVal) {
	i, ok := s.index[variable]
	if ok {
		s.pairs[i].value = v
		return
	}
	s.index[variable] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{variable, v})
}

func (s *bindings) Copy() Bindings {
	cp := newBindings(len(s.pairs))
	for _, p := range s.pairs {
		cp.Put(p.name, p.value)
	}
	return cp
}

func (s *bindings) Names() []symbol.ID {
	names := make([]symbol.ID, len(s.pairs))
	for i := range s.pairs {
		names[i] = s.pairs[i].name
	}
	return names
}
