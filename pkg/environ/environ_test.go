package environ

import (
	"errors"
	"testing"

	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertIntEqual(t *testing.T, expect int64, v lisp.LVal) {
	t.Helper()
	x, ok := lisp.GetInt(v)
	if assert.True(t, ok, "not an integer: %v", v) {
		assert.Equal(t, expect, x)
	}
}

func TestRoot(t *testing.T) {
	vara := symbol.Intern("a")
	varb := symbol.Intern("b")
	env := New(nil, nil)
	assert.Empty(t, env.Names())
	assert.Nil(t, env.Parent())
	env.Set(vara, lisp.Int(1))
	_, err := env.Lookup(varb)
	var unbound *lisp.UnboundSymbolError
	if assert.True(t, errors.As(err, &unbound)) {
		assert.Equal(t, varb, unbound.Symbol)
	}
	v, err := env.Lookup(vara)
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
}

func TestChild(t *testing.T) {
	vara := symbol.Intern("a")
	varb := symbol.Intern("b")
	varc := symbol.Intern("c")
	root := New(nil, nil)
	root.Set(vara, lisp.Int(1))
	root.Set(varb, lisp.Int(2))
	env := root.Extend(nil)
	assert.Empty(t, env.Names())
	assert.Equal(t, root, env.Parent())
	assert.Equal(t, env, env.Extend(nil).Parent())
	env.Set(varb, lisp.Int(3))
	env.Set(varc, lisp.Int(4))

	v, err := env.Lookup(vara)
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
	v, err = env.Lookup(varb)
	require.NoError(t, err)
	AssertIntEqual(t, 3, v)

	// Set never reaches into the parent scope.
	v, err = root.Lookup(varb)
	require.NoError(t, err)
	AssertIntEqual(t, 2, v)
	_, err = root.Lookup(varc)
	assert.Error(t, err)
	assert.Equal(t, []symbol.ID{varb, varc}, env.Names())
}

func TestExtendBindings(t *testing.T) {
	x := symbol.Intern("x")
	y := symbol.Intern("y")
	root := New(nil, nil)
	root.Set(x, lisp.Int(1))
	b, err := ZipBindings([]symbol.ID{x, y}, []lisp.LVal{lisp.Int(10), lisp.Int(20)})
	require.NoError(t, err)
	env := root.Extend(b)
	assert.Len(t, env.Names(), 2)
	v, err := env.Lookup(x)
	require.NoError(t, err)
	AssertIntEqual(t, 10, v)
	v, err = root.Lookup(x)
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
}

func TestSharedParent(t *testing.T) {
	x := symbol.Intern("x")
	late := symbol.Intern("late")
	root := New(nil, nil)
	child1 := root.Extend(nil)
	child2 := root.Extend(nil)
	child1.Set(x, lisp.Int(1))
	child2.Set(x, lisp.Int(2))

	v, err := child1.Lookup(x)
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
	v, err = child2.Lookup(x)
	require.NoError(t, err)
	AssertIntEqual(t, 2, v)

	// A binding made in the shared parent after the children exist is
	// visible from both.
	root.Set(late, lisp.String("here"))
	for _, env := range []*Environ{child1, child2} {
		v, err := env.Lookup(late)
		require.NoError(t, err)
		assert.True(t, lisp.Equal(lisp.String("here"), v))
	}
}

func TestClosure(t *testing.T) {
	x := symbol.Intern("x")
	env := New(nil, nil)
	body := lisp.List(lisp.Intern("+"), lisp.Symbol(x), lisp.Int(1))
	v := NewClosure(env, []symbol.ID{x}, body)
	assert.Equal(t, lisp.LClosure, v.Type)
	assert.Equal(t, "<closure/1>", v.String())
	c, ok := GetClosure(v)
	require.True(t, ok)
	assert.Equal(t, env, c.Env)
	assert.Equal(t, 1, c.Arity())
	assert.True(t, lisp.Equal(body, c.Body))

	_, ok = GetClosure(lisp.Int(1))
	assert.False(t, ok)
}
