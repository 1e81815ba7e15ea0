// Package parser turns a token stream from package lexer into a
// package ast tree, by recursive descent with the precedence levels
// (loosest to tightest):
//
//	or/xor/nor/xnor/nand
//	and
//	not
//	comparisons (< <= = >= > <>)
//	+ -
//	* / %
//	^
//	unary +, -
//	atoms, parentheses
package parser

import (
	"fmt"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/lexer"
)

// Error is a syntax error at a specific source location.
type Error struct {
	Loc lexer.Location
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Loc, e.Msg) }

// Parser consumes a fixed token slice (the whole program is lexed up
// front: While programs are small enough that streaming the lexer
// brings no benefit and a slice makes one-token lookahead trivial).
type Parser struct {
	toks []lexer.Token
	pos  int
	tree *ast.Tree
}

// Parse lexes and parses src, returning the program's root statement.
func Parse(src string) (ast.Stm, error) {
	toks, err := lexer.New(src).Tokens()
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks, tree: ast.NewTree()}
	stm, err := p.parseStm()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.EOF) {
		return nil, p.errorf("unexpected trailing %s", p.cur().Kind)
	}
	return stm, nil
}

func (p *Parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *Parser) at(k lexer.Kind) bool { return p.cur().Kind == k }

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if t.Kind != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if !p.at(k) {
		return lexer.Token{}, p.errorf("expected %s, found %s", k, p.cur().Kind)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Loc: p.cur().Loc, Msg: fmt.Sprintf(format, args...)}
}

// --- Statements ---
//
// stm := simpleStm (';' simpleStm)*
func (p *Parser) parseStm() (ast.Stm, error) {
	s, err := p.parseSimpleStm()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.Semi) {
		p.advance()
		s2, err := p.parseSimpleStm()
		if err != nil {
			return nil, err
		}
		s = p.tree.Seq(s, s2)
	}
	return s, nil
}

func (p *Parser) parseSimpleStm() (ast.Stm, error) {
	switch p.cur().Kind {
	case lexer.Skip:
		p.advance()
		return p.tree.Skip(), nil

	case lexer.Ident:
		name := p.advance().Text
		if _, err := p.expect(lexer.Assign); err != nil {
			return nil, err
		}
		x, err := p.parseAExp()
		if err != nil {
			return nil, err
		}
		return p.tree.Assign(p.tree.Var(name), x), nil

	case lexer.If:
		p.advance()
		cond, err := p.parseBExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Then); err != nil {
			return nil, err
		}
		then, err := p.parseStm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Else); err != nil {
			return nil, err
		}
		els, err := p.parseStm()
		if err != nil {
			return nil, err
		}
		return p.tree.If(cond, then, els), nil

	case lexer.While:
		p.advance()
		cond, err := p.parseBExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Do); err != nil {
			return nil, err
		}
		body, err := p.parseStm()
		if err != nil {
			return nil, err
		}
		return p.tree.While(cond, body), nil

	case lexer.Print:
		p.advance()
		x, err := p.parseAExp()
		if err != nil {
			return nil, err
		}
		return p.tree.Print(x), nil

	case lexer.Input:
		p.advance()
		name, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		return p.tree.Input(p.tree.Var(name.Text)), nil

	case lexer.LParen:
		p.advance()
		s, err := p.parseStm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, p.errorf("expected a statement, found %s", p.cur().Kind)
	}
}
