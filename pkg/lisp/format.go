package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Format writes the printed representation of v to w using table to
// translate symbols.  Printed values read back as equal values, except
// closures, which print as <closure/N> where N is the closure's arity.
func Format(w io.Writer, v LVal, table symbol.Table) (int, error) {
	f := &formatter{w: w, table: table}
	f.format(v)
	return f.n, f.err
}

// FormatString returns the printed representation of v.
func FormatString(v LVal, table symbol.Table) string {
	var buf strings.Builder
	Format(&buf, v, table) // strings.Builder never fails
	return buf.String()
}

// formatter remembers the first write error and ignores writes after it.
type formatter struct {
	w     io.Writer
	table symbol.Table
	n     int
	err   error
}

func (f *formatter) write(s string) {
	if f.err != nil {
		return
	}
	n, err := io.WriteString(f.w, s)
	f.n += n
	f.err = err
}

func (f *formatter) format(v LVal) {
	switch v.Type {
	case LBool:
		if IsTrue(v) {
			f.write("#t")
		} else {
			f.write("#f")
		}
	case LInt:
		x, _ := GetInt(v)
		f.write(strconv.FormatInt(x, 10))
	case LString:
		s, _ := GetString(v)
		f.write(QuoteString(s))
	case LSymbol:
		id, _ := GetSymbol(v)
		f.write(symbol.String(id, f.table))
	case LList:
		cells, _ := GetList(v)
		f.write("(")
		for i := range cells {
			if i > 0 {
				f.write(" ")
			}
			f.format(cells[i])
		}
		f.write(")")
	case LClosure:
		fn, ok := GetFunc(v)
		if !ok {
			f.write("<closure>")
			return
		}
		f.write(fmt.Sprintf("<closure/%d>", fn.Arity()))
	default:
		f.write(fmt.Sprintf("#<%v>", v.Type))
	}
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// QuoteString returns s as a double-quoted string literal.
func QuoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}
