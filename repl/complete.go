package repl

import (
	"sort"
	"strings"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/chzyer/readline"
)

// completer completes the symbol before the cursor with keywords and the
// names bound in env or its ancestors.
type completer struct {
	env *environ.Environ
}

var _ readline.AutoCompleter = (*completer)(nil)

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !strings.ContainsRune(" \t\n()'\"", line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var suffixes [][]rune
	for _, name := range c.names() {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			suffixes = append(suffixes, []rune(name[len(prefix):]))
		}
	}
	return suffixes, pos - start
}

func (c *completer) names() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range eval.Keywords() {
		add(name)
	}
	for env := c.env; env != nil; env = env.Parent() {
		for _, id := range env.Names() {
			add(id.String())
		}
	}
	sort.Strings(names)
	return names
}
