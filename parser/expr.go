package parser

import (
	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/lexer"
)

// --- Boolean expressions ---
//
// bExp    := bOrExp
// bOrExp  := bAndExp (('or'|'xor'|'nor'|'xnor'|'nand') bAndExp)*
// bAndExp := bCmpExp ('and' bCmpExp)*
// bCmpExp := 'true' | 'false' | 'not' bCmpExp | '(' bExp ')' | aExp cmp aExp
// cmp     := '<' | '<=' | '=' | '>=' | '>' | '<>
func (p *Parser) parseBExp() (ast.BExp, error) { return p.parseBOr() }

func (p *Parser) parseBOr() (ast.BExp, error) {
	l, err := p.parseBAnd()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.LogicOp
		switch p.cur().Kind {
		case lexer.Or:
			op = ast.Or
		case lexer.Xor:
			op = ast.Xor
		case lexer.Nor:
			op = ast.Nor
		case lexer.Xnor:
			op = ast.Xnor
		case lexer.Nand:
			op = ast.Nand
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseBAnd()
		if err != nil {
			return nil, err
		}
		l = p.tree.BinLogic(op, l, r)
	}
}

func (p *Parser) parseBAnd() (ast.BExp, error) {
	l, err := p.parseBCmp()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.And) {
		p.advance()
		r, err := p.parseBCmp()
		if err != nil {
			return nil, err
		}
		l = p.tree.BinLogic(ast.And, l, r)
	}
	return l, nil
}

func (p *Parser) parseBCmp() (ast.BExp, error) {
	switch p.cur().Kind {
	case lexer.True:
		p.advance()
		return p.tree.BoolLit(true), nil
	case lexer.False:
		p.advance()
		return p.tree.BoolLit(false), nil
	case lexer.Not:
		p.advance()
		x, err := p.parseBCmp()
		if err != nil {
			return nil, err
		}
		return p.tree.Not(x), nil
	case lexer.LParen:
		// Could be a parenthesized BExp or an AExp beginning a
		// comparison (e.g. "(x + 1) < y"); try BExp first, and fall
		// back to an arithmetic comparison if that doesn't parse.
		save := p.pos
		p.advance()
		if b, err := p.parseBExp(); err == nil {
			if _, err := p.expect(lexer.RParen); err == nil {
				return b, nil
			}
		}
		p.pos = save
	}

	l, err := p.parseAExp()
	if err != nil {
		return nil, err
	}
	var op ast.CompareOp
	switch p.cur().Kind {
	case lexer.Lt:
		op = ast.Lt
	case lexer.Leq:
		op = ast.Leq
	case lexer.Eq:
		op = ast.Eq
	case lexer.Geq:
		op = ast.Geq
	case lexer.Gt:
		op = ast.Gt
	case lexer.Neq:
		op = ast.Neq
	default:
		return nil, p.errorf("expected a comparison operator, found %s", p.cur().Kind)
	}
	p.advance()
	r, err := p.parseAExp()
	if err != nil {
		return nil, err
	}
	return p.tree.Compare(op, l, r), nil
}

// --- Arithmetic expressions ---
//
// aExp     := addExp
// addExp   := mulExp (('+'|'-') mulExp)*
// mulExp   := powExp (('*'|'/'|'%') powExp)*
// powExp   := unary ('^' powExp)?      -- right-associative
// unary    := ('-'|'+') unary | atom
// atom     := number | ident | '(' aExp ')'
func (p *Parser) parseAExp() (ast.AExp, error) { return p.parseAdd() }

func (p *Parser) parseAdd() (ast.AExp, error) {
	l, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.ArithOp
		switch p.cur().Kind {
		case lexer.Plus:
			op = ast.Add
		case lexer.Minus:
			op = ast.Sub
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		l = p.tree.BinArith(op, l, r)
	}
}

func (p *Parser) parseMul() (ast.AExp, error) {
	l, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.ArithOp
		switch p.cur().Kind {
		case lexer.Star:
			op = ast.Mul
		case lexer.Slash:
			op = ast.Div
		case lexer.Percent:
			op = ast.Rem
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		l = p.tree.BinArith(op, l, r)
	}
}

func (p *Parser) parsePow() (ast.AExp, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.Caret) {
		p.advance()
		r, err := p.parsePow() // right-associative
		if err != nil {
			return nil, err
		}
		return p.tree.BinArith(ast.Pow, l, r), nil
	}
	return l, nil
}

func (p *Parser) parseUnary() (ast.AExp, error) {
	if p.at(lexer.Minus) {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.tree.Neg(x), nil
	}
	if p.at(lexer.Plus) {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.tree.Id(x), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.AExp, error) {
	switch p.cur().Kind {
	case lexer.Num:
		t := p.advance()
		return p.tree.Num(t.Num), nil
	case lexer.Ident:
		t := p.advance()
		return p.tree.Var(t.Text), nil
	case lexer.LParen:
		p.advance()
		x, err := p.parseAExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, p.errorf("expected a number, identifier or '(', found %s", p.cur().Kind)
	}
}
