package parser

import "fmt"

// Token is a lexical token of DIY Lang source.
type Token struct {
	Type   TokenType
	Text   string
	Source Location
}

// TokenType identifies the kind of a Token.
type TokenType uint

// TokenType constants produced by the lexer.
const (
	INVALID TokenType = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	BOOL
	STRING

	// Operators
	QUOTE

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ TokenType) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		INT:     "int",
		BOOL:    "bool",
		STRING:  "string",
		QUOTE:   "'",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location is a position in a source file.
type Location struct {
	File string
	Line int // line number starting at 1
	Col  int // column number starting at 1, counted in runes
}

// advance returns the location following the rune c at loc.
func (loc Location) advance(c rune) Location {
	if c == '\n' {
		loc.Line++
		loc.Col = 1
		return loc
	}
	loc.Col++
	return loc
}

func (loc Location) String() string {
	file := loc.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, loc.Line, loc.Col)
}
