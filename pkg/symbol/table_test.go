package symbol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	table := NewTable()
	assert.Equal(t, ID(1), table.Intern("testing"))
	assert.Equal(t, ID(2), table.Intern("hello"))
	assert.Equal(t, ID(1), table.Intern("testing"))
	s, ok := table.Symbol(1)
	assert.True(t, ok)
	assert.Equal(t, "testing", s)
	_, ok = table.Symbol(3)
	assert.False(t, ok)
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	ids := make([]ID, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = table.Intern("shared")
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ID(1), id)
	}
}

func TestString(t *testing.T) {
	table := NewTable()
	hello := table.Intern("hello")
	assert.Equal(t, "hello", String(hello, table))
	assert.Equal(t, "#<SYMBOL 0x12345678>", String(0x12345678, table))
	assert.Equal(t, "intern-test", Intern("intern-test").String())
}
