package symbol

import "sync"

// DefaultGlobalTable is the table used by Intern and by ID.String.  Symbols
// appearing in parsed programs and the special form keywords are interned
// here.
var DefaultGlobalTable = NewTable()

// Intern uses DefaultGlobalTable to intern s and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to strings.
type Table interface {
	// Intern inserts the given symbol into the table if it is not present and
	// returns its ID.
	Intern(symbol string) ID
	// Symbol returns the symbol associated with id.
	Symbol(id ID) (string, bool)
}

// NewTable returns an empty Table.
func NewTable() Table {
	return &table{
		i: make(map[ID]string),
		s: make(map[string]ID),
	}
}

type table struct {
	mut  sync.RWMutex
	last ID
	i    map[ID]string
	s    map[string]ID
}

var _ Table = (*table)(nil)

// Intern implements the Table interface
func (t *table) Intern(s string) ID {
	t.mut.Lock()
	defer t.mut.Unlock()
	if id, ok := t.s[s]; ok {
		return id
	}
	if t.last == MaxID {
		panic("too many symbols interned")
	}
	t.last++
	t.s[s] = t.last
	t.i[t.last] = s
	return t.last
}

// Symbol implements the Table interface
func (t *table) Symbol(id ID) (string, bool) {
	t.mut.RLock()
	defer t.mut.RUnlock()
	s, ok := t.i[id]
	return s, ok
}
