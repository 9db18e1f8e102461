package symbol

import "fmt"

// An ID is a handle to an interned symbol.  The zero ID is never assigned by
// a Table.
type ID uint32

// MaxID is the largest ID a Table will assign.
const MaxID = ^ID(0)

// String is equivalent to calling String(id, DefaultGlobalTable).
func (id ID) String() string {
	return String(id, DefaultGlobalTable)
}

// String returns the name of id in table.  If id is not present in table
// String returns a diagnostic string describing id.
func String(id ID, table Table) string {
	s, ok := table.Symbol(id)
	if !ok {
		return fmt.Sprintf(unknownSymbolFormat, uint32(id))
	}
	return s
}

const unknownSymbolFormat = "#<SYMBOL %#x>"
