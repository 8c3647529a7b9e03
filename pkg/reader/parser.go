package reader

import (
	"fmt"

	"github.com/dlogic/argue/pkg/logic"
)

type parser struct {
	lex  *lexer
	cur  token
}

// Read parses s into a Proposition, or returns a descriptive error if s is
// not well-formed.  Grammar (lowest to highest precedence): <->/↔, ->/→,
// \//∨/or, /\/∧/and, unary ¬/!/not, parenthesised sub-expressions, and the
// atoms true/⊤, false/⊥, and bare identifiers.
func Read(s string) (logic.Proposition, error) {
	p := &parser{lex: newLexer(s)}

	if err := p.advance(); err != nil {
		return logic.Proposition{}, err
	}

	prop, err := p.parseEquiv()
	if err != nil {
		return logic.Proposition{}, err
	}

	if p.cur.kind != tokenEOF {
		return logic.Proposition{}, fmt.Errorf("reader: unexpected trailing input at position %d", p.cur.pos)
	}

	return prop, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}

	p.cur = t

	return nil
}

func (p *parser) expect(k tokenKind) error {
	if p.cur.kind != k {
		return fmt.Errorf("reader: unexpected token %q at position %d", p.cur.text, p.cur.pos)
	}

	return p.advance()
}

func (p *parser) parseEquiv() (logic.Proposition, error) {
	left, err := p.parseImplies()
	if err != nil {
		return logic.Proposition{}, err
	}

	for p.cur.kind == tokenEquiv {
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		right, err := p.parseImplies()
		if err != nil {
			return logic.Proposition{}, err
		}

		left = logic.Equiv(left, right)
	}

	return left, nil
}

func (p *parser) parseImplies() (logic.Proposition, error) {
	left, err := p.parseOr()
	if err != nil {
		return logic.Proposition{}, err
	}

	if p.cur.kind != tokenImplies {
		return left, nil
	}

	if err := p.advance(); err != nil {
		return logic.Proposition{}, err
	}

	// Right-associative: a -> b -> c parses as a -> (b -> c).
	right, err := p.parseImplies()
	if err != nil {
		return logic.Proposition{}, err
	}

	return logic.Implies(left, right), nil
}

func (p *parser) parseOr() (logic.Proposition, error) {
	left, err := p.parseAnd()
	if err != nil {
		return logic.Proposition{}, err
	}

	for p.cur.kind == tokenOr {
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		right, err := p.parseAnd()
		if err != nil {
			return logic.Proposition{}, err
		}

		left = logic.Or(left, right)
	}

	return left, nil
}

func (p *parser) parseAnd() (logic.Proposition, error) {
	left, err := p.parseUnary()
	if err != nil {
		return logic.Proposition{}, err
	}

	for p.cur.kind == tokenAnd {
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		right, err := p.parseUnary()
		if err != nil {
			return logic.Proposition{}, err
		}

		left = logic.And(left, right)
	}

	return left, nil
}

func (p *parser) parseUnary() (logic.Proposition, error) {
	if p.cur.kind == tokenNot {
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		inner, err := p.parseUnary()
		if err != nil {
			return logic.Proposition{}, err
		}

		return logic.Not(inner), nil
	}

	return p.parseAtom()
}

func (p *parser) parseAtom() (logic.Proposition, error) {
	switch p.cur.kind {
	case tokenTrue:
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		return logic.True, nil
	case tokenFalse:
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		return logic.False, nil
	case tokenIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		return logic.Variable(logic.Atom(name)), nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return logic.Proposition{}, err
		}

		inner, err := p.parseEquiv()
		if err != nil {
			return logic.Proposition{}, err
		}

		if err := p.expect(tokenRParen); err != nil {
			return logic.Proposition{}, err
		}

		return inner, nil
	default:
		return logic.Proposition{}, fmt.Errorf("reader: unexpected token %q at position %d", p.cur.text, p.cur.pos)
	}
}
