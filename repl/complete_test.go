package repl

import (
	"testing"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suffixes(c *completer, line string) ([]string, int) {
	runes := []rune(line)
	candidates, n := c.Do(runes, len(runes))
	var out []string
	for _, s := range candidates {
		out = append(out, string(s))
	}
	return out, n
}

func TestCompleter(t *testing.T) {
	ev, err := eval.New()
	require.NoError(t, err)
	global := environ.New(nil, nil)
	require.NoError(t, eval.LoadPrelude(ev, global))
	local := global.Extend(nil)
	local.Set(symbol.Intern("delta"), lisp.Int(1))

	c := &completer{env: local}
	out, n := suffixes(c, "(fil")
	assert.Equal(t, []string{"ter"}, out)
	assert.Equal(t, 3, n)

	out, n = suffixes(c, "(map (lambda (x) (de")
	assert.Equal(t, []string{"fine", "fn", "lta"}, out)
	assert.Equal(t, 2, n)

	out, _ = suffixes(c, "(mo")
	assert.Equal(t, []string{"d"}, out)

	out, _ = suffixes(c, "(zzz")
	assert.Empty(t, out)

	// names in an unrelated scope are not offered
	c = &completer{env: global}
	out, _ = suffixes(c, "(de")
	assert.Equal(t, []string{"fine", "fn"}, out)
}
