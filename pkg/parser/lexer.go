package parser

import (
	"strings"

	parsec "github.com/prataprc/goparsec"
)

// Token patterns, matched at the scanner cursor.
const (
	patSpace  = `^(?:\s|;[^\n]*)+`
	patPunct  = `^[()']`
	patString = `^"(?:[^"\\]|\\(?s:.))*"`
	patWord   = `^[^\s()'";]+`
)

var punctTypes = map[string]TokenType{
	"(": PAREN_L,
	")": PAREN_R,
	"'": QUOTE,
}

// Lexer splits DIY Lang source into tokens.  Comments and whitespace are
// skipped.
type Lexer struct {
	scanner parsec.Scanner
	src     []byte
	loc     Location
	err     *SyntaxError
	done    bool
}

// NewLexer returns a Lexer reading src.  The name is used in token
// locations.
func NewLexer(name string, src string) *Lexer {
	b := []byte(src)
	return &Lexer{
		scanner: parsec.NewScanner(b),
		src:     b,
		loc:     Location{File: name, Line: 1, Col: 1},
	}
}

// Err returns the error that produced an ERROR token, if any.
func (lex *Lexer) Err() *SyntaxError {
	return lex.err
}

// match consumes the text matching pattern at the cursor.  match returns an
// empty string if the pattern does not match.
func (lex *Lexer) match(pattern string) string {
	b, s := lex.scanner.Match(pattern)
	lex.scanner = s
	text := string(b)
	for _, c := range text {
		lex.loc = lex.loc.advance(c)
	}
	return text
}

func (lex *Lexer) peekByte() (byte, bool) {
	i := lex.scanner.GetCursor()
	if i >= len(lex.src) {
		return 0, false
	}
	return lex.src[i], true
}

// NextToken returns the next token.  After an ERROR or EOF token every call
// returns EOF.
func (lex *Lexer) NextToken() Token {
	if lex.done {
		return Token{Type: EOF, Source: lex.loc}
	}
	lex.match(patSpace)
	start := lex.loc
	c, ok := lex.peekByte()
	if !ok {
		lex.done = true
		return Token{Type: EOF, Source: start}
	}
	switch c {
	case '(', ')', '\'':
		text := lex.match(patPunct)
		return Token{Type: punctTypes[text], Text: text, Source: start}
	case '"':
		text := lex.match(patString)
		if text == "" {
			return lex.errorf(start, true, "unterminated string literal")
		}
		return lex.unquote(start, text)
	default:
		text := lex.match(patWord)
		if text == "" {
			return lex.errorf(start, false, "unexpected character %q", c)
		}
		return lex.classifyWord(start, text)
	}
}

// unquote decodes the escape sequences of the string literal text.
func (lex *Lexer) unquote(start Location, text string) Token {
	var buf strings.Builder
	loc := start.advance('"')
	runes := []rune(text[1 : len(text)-1])
	for i := 0; i < len(runes); i++ {
		at := loc
		c := runes[i]
		loc = loc.advance(c)
		if c != '\\' {
			buf.WriteRune(c)
			continue
		}
		i++
		esc := runes[i]
		loc = loc.advance(esc)
		switch esc {
		case 'n':
			buf.WriteRune('\n')
		case 't':
			buf.WriteRune('\t')
		case '"', '\\':
			buf.WriteRune(esc)
		default:
			return lex.errorf(at, false, "invalid escape sequence \\%c", esc)
		}
	}
	return Token{Type: STRING, Text: buf.String(), Source: start}
}

func (lex *Lexer) classifyWord(start Location, text string) Token {
	switch {
	case text == "#t" || text == "#f":
		return Token{Type: BOOL, Text: text, Source: start}
	case isInteger(text):
		return Token{Type: INT, Text: text, Source: start}
	default:
		return Token{Type: SYMBOL, Text: text, Source: start}
	}
}

func isInteger(text string) bool {
	if strings.HasPrefix(text, "-") {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (lex *Lexer) errorf(loc Location, incomplete bool, format string, v ...interface{}) Token {
	lex.err = newSyntaxError(loc, incomplete, format, v...)
	lex.done = true
	return Token{Type: ERROR, Text: lex.err.Msg, Source: loc}
}
