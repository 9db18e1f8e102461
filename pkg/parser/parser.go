// Package parser reads DIY Lang source text into lisp.LVal expression trees.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Xovval/diy-lang/pkg/lisp"
)

// Parse parses src, which must contain exactly one expression.
func Parse(src string) (lisp.LVal, error) {
	exprs, err := ParseString("", src)
	if err != nil {
		return lisp.LVal{}, err
	}
	switch len(exprs) {
	case 0:
		return lisp.LVal{}, newSyntaxError(Location{Line: 1, Col: 1}, false, "no expression")
	case 1:
		return exprs[0], nil
	default:
		return lisp.LVal{}, fmt.Errorf("expected a single expression, found %d", len(exprs))
	}
}

// ParseProgram parses every expression read from r.  The name is used in
// error locations.
func ParseProgram(name string, r io.Reader) ([]lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(name, string(b))
}

// ParseString parses every expression in src.
func ParseString(name string, src string) ([]lisp.LVal, error) {
	p := New(NewLexer(name, src))
	return p.ParseProgram()
}

// MaxNesting is the deepest nesting of lists and quotes the parser accepts.
const MaxNesting = 10000

// Parser is a recursive descent parser.
type Parser struct {
	lex   *Lexer
	curr  Token
	peek  Token
	depth int
}

// New initializes and returns a new Parser that reads tokens from lex.
func New(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.ReadToken()
	return p
}

// ReadToken advances the parser one token.
func (p *Parser) ReadToken() {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
}

// Token returns the most recently read token.
func (p *Parser) Token() Token {
	return p.curr
}

// PeekType returns the type of the next token.
func (p *Parser) PeekType() TokenType {
	return p.peek.Type
}

// ParseProgram parses expressions until EOF.
func (p *Parser) ParseProgram() ([]lisp.LVal, error) {
	var exprs []lisp.LVal
	for p.PeekType() != EOF {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses the next expression.
func (p *Parser) ParseExpression() (lisp.LVal, error) {
	p.ReadToken()
	tok := p.Token()
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNesting {
		return lisp.LVal{}, newSyntaxError(tok.Source, false, "expression nested deeper than %d levels", MaxNesting)
	}
	switch tok.Type {
	case INT:
		x, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return lisp.LVal{}, newSyntaxError(tok.Source, false, "integer literal overflows: %s", tok.Text)
		}
		return lisp.Int(x), nil
	case BOOL:
		return lisp.Bool(tok.Text == "#t"), nil
	case STRING:
		return lisp.String(tok.Text), nil
	case SYMBOL:
		return lisp.Intern(tok.Text), nil
	case QUOTE:
		if p.PeekType() == EOF {
			return lisp.LVal{}, newSyntaxError(tok.Source, true, "quote at end of input")
		}
		v, err := p.ParseExpression()
		if err != nil {
			return lisp.LVal{}, err
		}
		return lisp.List(lisp.Intern("quote"), v), nil
	case PAREN_L:
		return p.parseList(tok)
	case PAREN_R:
		return lisp.LVal{}, newSyntaxError(tok.Source, false, "unexpected %s", tok.Type)
	case ERROR:
		return lisp.LVal{}, p.lex.Err()
	case EOF:
		return lisp.LVal{}, newSyntaxError(tok.Source, true, "unexpected end of input")
	default:
		return lisp.LVal{}, newSyntaxError(tok.Source, false, "unexpected token %s", tok.Type)
	}
}

func (p *Parser) parseList(open Token) (lisp.LVal, error) {
	cells := []lisp.LVal{}
	for {
		switch p.PeekType() {
		case PAREN_R:
			p.ReadToken()
			return lisp.List(cells...), nil
		case EOF:
			return lisp.LVal{}, newSyntaxError(open.Source, true, "unclosed %s", open.Type)
		}
		v, err := p.ParseExpression()
		if err != nil {
			return lisp.LVal{}, err
		}
		cells = append(cells, v)
	}
}
