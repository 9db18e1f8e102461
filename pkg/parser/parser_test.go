package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src    string
		expect string
	}{
		{"1", "1"},
		{"-42", "-42"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"foo", "foo"},
		{"-", "-"},
		{"mod", "mod"},
		{`"hello world"`, `"hello world"`},
		{`"esc \"q\" \\ \n"`, `"esc \"q\" \\ \n"`},
		{"()", "()"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"(a (b (c)) d)", "(a (b (c)) d)"},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"''x", "(quote (quote x))"},
		{"(define x ; the answer\n  42)", "(define x 42)"},
		{"  \n\t(foo)\n", "(foo)"},
		{"(head\"abc\")", `(head "abc")`},
	}
	for i, test := range tests {
		v, err := Parse(test.src)
		if assert.NoError(t, err, "test %d: %q", i, test.src) {
			assert.Equal(t, test.expect, v.String(), "test %d: %q", i, test.src)
		}
	}
}

func TestParse_Types(t *testing.T) {
	v, err := Parse("(1 #t \"s\" sym ())")
	require.NoError(t, err)
	cells, ok := lisp.GetList(v)
	require.True(t, ok)
	require.Len(t, cells, 5)
	assert.Equal(t, lisp.LInt, cells[0].Type)
	assert.Equal(t, lisp.LBool, cells[1].Type)
	assert.Equal(t, lisp.LString, cells[2].Type)
	assert.Equal(t, lisp.LSymbol, cells[3].Type)
	assert.Equal(t, lisp.LList, cells[4].Type)
	assert.True(t, lisp.Equal(lisp.Intern("sym"), cells[3]))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		src        string
		incomplete bool
		msg        string
	}{
		{"(1 2", true, "<input>:1:1: unclosed ("},
		{"(1 (2 3)", true, "<input>:1:1: unclosed ("},
		{`"abc`, true, "<input>:1:1: unterminated string literal"},
		{"'", true, "<input>:1:1: quote at end of input"},
		{")", false, "<input>:1:1: unexpected )"},
		{"(a\n  b))", false, "<input>:2:5: unexpected )"},
		{`"\q"`, false, `<input>:1:2: invalid escape sequence \q`},
		{"99999999999999999999", false, "<input>:1:1: integer literal overflows: 99999999999999999999"},
	}
	for i, test := range tests {
		_, err := Parse(test.src)
		if !assert.Error(t, err, "test %d: %q", i, test.src) {
			continue
		}
		assert.Equal(t, test.incomplete, errors.Is(err, ErrIncomplete), "test %d: %q", i, test.src)
		assert.EqualError(t, err, test.msg, "test %d: %q", i, test.src)
	}
}

func TestParse_Count(t *testing.T) {
	_, err := Parse("; only a comment")
	assert.EqualError(t, err, "<input>:1:1: no expression")
	assert.False(t, errors.Is(err, ErrIncomplete))
	_, err = Parse("1 2")
	assert.EqualError(t, err, "expected a single expression, found 2")
}

func TestParseProgram(t *testing.T) {
	src := `
(define x 1)
; comment between expressions
(define y "two")
(print (cons x '()))
`
	exprs, err := ParseProgram("prog.diy", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.Equal(t, `(define y "two")`, exprs[1].String())
	assert.Equal(t, "(print (cons x (quote ())))", exprs[2].String())

	_, err = ParseProgram("prog.diy", strings.NewReader("(define x\n  (+ 1 2)"))
	assert.EqualError(t, err, "prog.diy:1:1: unclosed (")
}

func TestLexer(t *testing.T) {
	lex := NewLexer("f", "(a 'b)\n\"s\"")
	var types []TokenType
	var locs []string
	for {
		tok := lex.NextToken()
		types = append(types, tok.Type)
		locs = append(locs, tok.Source.String())
		if tok.Type == EOF {
			break
		}
	}
	assert.Equal(t, []TokenType{PAREN_L, SYMBOL, QUOTE, SYMBOL, PAREN_R, STRING, EOF}, types)
	assert.Equal(t, []string{"f:1:1", "f:1:2", "f:1:4", "f:1:5", "f:1:6", "f:2:1", "f:2:4"}, locs)
	assert.Equal(t, EOF, lex.NextToken().Type)
}

func TestParse_Nesting(t *testing.T) {
	deep := strings.Repeat("(", MaxNesting) + strings.Repeat(")", MaxNesting)
	v, err := Parse(deep)
	require.NoError(t, err)
	assert.Equal(t, lisp.LList, v.Type)

	for _, src := range []string{
		strings.Repeat("(", MaxNesting+1),
		strings.Repeat("(", 300000),
		strings.Repeat("'", MaxNesting) + "x",
	} {
		_, err := Parse(src)
		var serr *SyntaxError
		if assert.True(t, errors.As(err, &serr)) {
			assert.Equal(t, "expression nested deeper than 10000 levels", serr.Msg)
			assert.Equal(t, 1, serr.Source.Line)
			assert.Equal(t, MaxNesting+1, serr.Source.Col)
		}
		assert.False(t, errors.Is(err, ErrIncomplete))
	}
}

func TestLexer_Strings(t *testing.T) {
	lex := NewLexer("", "\"a\\tb\nc\" x\"")
	tok := lex.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "a\tb\nc", tok.Text)
	tok = lex.NextToken()
	assert.Equal(t, SYMBOL, tok.Type)
	assert.Equal(t, "<input>:2:4", tok.Source.String())
	tok = lex.NextToken()
	assert.Equal(t, ERROR, tok.Type)
	assert.Equal(t, "<input>:2:5: unterminated string literal", lex.Err().Error())
	assert.True(t, errors.Is(lex.Err(), ErrIncomplete))
	assert.Equal(t, EOF, lex.NextToken().Type)
}
