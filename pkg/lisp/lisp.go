// Package lisp defines LVal, the tagged union that represents both DIY Lang
// programs and the values they compute.
package lisp

import (
	"fmt"
	"unicode/utf8"

	"github.com/Xovval/diy-lang/pkg/symbol"
)

// LType is the type tag of an LVal.
type LType uint8

const (
	// LInvalid is the type of the zero LVal.  The evaluator never produces
	// LInvalid values.
	LInvalid LType = iota
	// LBool is a boolean.
	// Schema:
	//	Data: 0 if false and 1 otherwise
	LBool
	// LInt is a fixed-width signed integer.
	// Schema:
	//	Data: int64 value
	LInt
	// LString is a string of unicode characters.
	// Schema:
	//	Native: string value
	LString
	// LSymbol is a symbolic name.
	// Schema:
	//	Data: symbol.ID value
	LSymbol
	// LList is an ordered sequence of values.  When evaluated a non-empty
	// list is a function call or a special form.
	// Schema:
	//	Native: []LVal
	LList
	// LClosure is a function value.
	// Schema:
	//	Native: Func
	LClosure
)

var ltypeStrings = []string{
	LInvalid: "invalid",
	LBool:    "boolean",
	LInt:     "integer",
	LString:  "string",
	LSymbol:  "symbol",
	LList:    "list",
	LClosure: "closure",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// Func is the data held by an LClosure value.  The concrete type lives with
// the environment it captures (see package environ).
type Func interface {
	// Arity returns the number of parameters the function binds.
	Arity() int
}

// LVal is a lisp value.  LVal values must be compared with Equal.
type LVal struct {
	Type   LType
	Data   uint64
	Native interface{}
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns a true LBool value.
func True() LVal {
	return LVal{Type: LBool, Data: 1}
}

// False returns a false LBool value.
func False() LVal {
	return LVal{Type: LBool}
}

// GetBool returns the truth value of v.
// GetBool returns false if v is not LBool.
func GetBool(v LVal) (value bool, ok bool) {
	if v.Type != LBool {
		return false, false
	}
	return v.Data != 0, true
}

// Int returns an LInt value
func Int(x int64) LVal {
	return LVal{Type: LInt, Data: uint64(x)}
}

// GetInt returns the int64 value from v.
// GetInt returns false if v is not LInt.
func GetInt(v LVal) (int64, bool) {
	if v.Type != LInt {
		return 0, false
	}
	return int64(v.Data), true
}

// String returns an LString value
func String(s string) LVal {
	return LVal{Type: LString, Native: s}
}

// GetString extracts string data from v.
// GetString returns false if v is not LString.
func GetString(v LVal) (string, bool) {
	if v.Type != LString {
		return "", false
	}
	s, _ := v.Native.(string)
	return s, true
}

// Symbol returns an LSymbol value
func Symbol(id symbol.ID) LVal {
	return LVal{Type: LSymbol, Data: uint64(id)}
}

// Intern returns an LSymbol for name, interning it in
// symbol.DefaultGlobalTable.
func Intern(name string) LVal {
	return Symbol(symbol.Intern(name))
}

// GetSymbol extracts the symbol.ID from v.
// GetSymbol returns false if v is not LSymbol.
func GetSymbol(v LVal) (symbol.ID, bool) {
	if v.Type != LSymbol {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

// List returns an LList containing cells.  The returned value takes ownership
// of cells.
func List(cells ...LVal) LVal {
	if cells == nil {
		cells = []LVal{}
	}
	return LVal{Type: LList, Native: cells}
}

// GetList returns the elements of v.  The returned slice must not be modified.
// GetList returns false if v is not LList.
func GetList(v LVal) ([]LVal, bool) {
	if v.Type != LList {
		return nil, false
	}
	cells, _ := v.Native.([]LVal)
	return cells, true
}

// Closure wraps fn as an LClosure value.
func Closure(fn Func) LVal {
	return LVal{Type: LClosure, Native: fn}
}

// GetFunc returns the function data held by v.
// GetFunc returns false if v is not LClosure.
func GetFunc(v LVal) (Func, bool) {
	if v.Type != LClosure {
		return nil, false
	}
	fn, ok := v.Native.(Func)
	return fn, ok
}

// IsAtom returns true if v is a boolean, integer, string or symbol.
func IsAtom(v LVal) bool {
	switch v.Type {
	case LBool, LInt, LString, LSymbol:
		return true
	default:
		return false
	}
}

// IsTrue returns true iff v represents a true value.  Only the boolean false
// is false.  Zero, the empty string and the empty list are true.
func IsTrue(v LVal) bool {
	return !(v.Type == LBool && v.Data == 0)
}

// SeqLen returns the number of elements in a list or the number of characters
// in a string.  SeqLen returns false if v is neither.
func SeqLen(v LVal) (int, bool) {
	switch v.Type {
	case LList:
		cells, _ := GetList(v)
		return len(cells), true
	case LString:
		s, _ := GetString(v)
		return utf8.RuneCountInString(s), true
	default:
		return 0, false
	}
}

// Equal returns true if v1 and v2 have the same type and the same value.
// Lists are compared element-wise and closures by identity.
func Equal(v1, v2 LVal) bool {
	if v1.Type != v2.Type {
		return false
	}
	switch v1.Type {
	case LBool, LInt, LSymbol:
		return v1.Data == v2.Data
	case LString:
		s1, _ := GetString(v1)
		s2, _ := GetString(v2)
		return s1 == s2
	case LList:
		c1, _ := GetList(v1)
		c2, _ := GetList(v2)
		if len(c1) != len(c2) {
			return false
		}
		for i := range c1 {
			if !Equal(c1[i], c2[i]) {
				return false
			}
		}
		return true
	case LClosure:
		return v1.Native == v2.Native
	default:
		return false
	}
}

// String returns the printed representation of v using
// symbol.DefaultGlobalTable.
func (v LVal) String() string {
	return FormatString(v, symbol.DefaultGlobalTable)
}

// GoString implements fmt.GoStringer so that test failures are readable.
func (v LVal) GoString() string {
	return fmt.Sprintf("lisp.LVal{%v %s}", v.Type, v.String())
}
