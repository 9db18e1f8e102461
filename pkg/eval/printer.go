package eval

import (
	"io"

	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Printer receives the values of print forms.
type Printer interface {
	Print(v lisp.LVal) error
}

// WriterPrinter writes each value on its own line using lisp.Format.
type WriterPrinter struct {
	W io.Writer
}

var _ Printer = (*WriterPrinter)(nil)

// Print implements Printer.
func (p *WriterPrinter) Print(v lisp.LVal) error {
	_, err := lisp.Format(p.W, v, symbol.DefaultGlobalTable)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.W, "\n")
	return err
}
