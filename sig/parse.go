package sig

import (
	"github.com/wippyai/fnptr"
	"github.com/wippyai/fnptr/abi"
	"github.com/wippyai/fnptr/errors"
	"github.com/wippyai/fnptr/sig/internal/token"
)

// Parse reads the textual signature form:
//
//	[unsafe] [extern ["<convention>"]] func(T0, T1, ...) [R]
//
// A bare extern defaults to the "c" convention. Signatures above
// fnptr.MaxArity arguments are rejected.
func Parse(input string) (Signature, error) {
	p := &parser{toks: token.Tokenize(input)}
	return p.parse()
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) errPos() int {
	if p.pos < len(p.toks) {
		return p.toks[p.pos].Pos
	}
	if n := len(p.toks); n > 0 {
		return p.toks[n-1].Pos + len(p.toks[n-1].Value)
	}
	return 0
}

func (p *parser) parse() (Signature, error) {
	s := Signature{Safe: true, Convention: abi.Go}

	t, ok := p.peek()
	if !ok {
		return Signature{}, errors.InvalidSignature(0, "empty signature")
	}

	if t.Type == token.Ident && t.Value == "unsafe" {
		s.Safe = false
		p.pos++
		t, ok = p.peek()
		if !ok {
			return Signature{}, errors.InvalidSignature(p.errPos(), "expected func after unsafe")
		}
	}

	if t.Type == token.Ident && t.Value == "extern" {
		p.pos++
		s.Convention = abi.C // bare extern
		if t2, ok2 := p.peek(); ok2 && t2.Type == token.String {
			c, err := abi.Parse(t2.Value)
			if err != nil {
				return Signature{}, errors.New(errors.PhaseParse, errors.KindUnknownConvention).
					Pos(t2.Pos).
					Convention(t2.Value).
					Detail("not in the supported convention set").
					Build()
			}
			s.Convention = c
			p.pos++
		}
	}

	t, ok = p.next()
	if !ok || t.Type != token.Ident || t.Value != "func" {
		return Signature{}, errors.InvalidSignature(p.errPos(), "expected func keyword")
	}

	t, ok = p.next()
	if !ok || t.Type != token.LParen {
		return Signature{}, errors.InvalidSignature(p.errPos(), "expected '(' after func")
	}

	for {
		t, ok = p.next()
		if !ok {
			return Signature{}, errors.InvalidSignature(p.errPos(), "unterminated argument list")
		}
		if t.Type == token.RParen {
			break
		}
		if t.Type != token.Ident {
			return Signature{}, errors.InvalidSignature(t.Pos, "expected argument type, got "+t.Type.String())
		}
		s.Args = append(s.Args, t.Value)

		t, ok = p.next()
		if !ok {
			return Signature{}, errors.InvalidSignature(p.errPos(), "unterminated argument list")
		}
		if t.Type == token.RParen {
			break
		}
		if t.Type != token.Comma {
			return Signature{}, errors.InvalidSignature(t.Pos, "expected ',' or ')', got "+t.Type.String())
		}
	}

	if len(s.Args) > fnptr.MaxArity {
		return Signature{}, errors.ArityCeiling(errors.PhaseParse, len(s.Args), fnptr.MaxArity)
	}

	if t, ok = p.next(); ok {
		if t.Type != token.Ident {
			return Signature{}, errors.InvalidSignature(t.Pos, "expected return type, got "+t.Type.String())
		}
		s.Return = t.Value
	}

	if t, ok = p.next(); ok {
		return Signature{}, errors.InvalidSignature(t.Pos, "unexpected trailing "+t.Type.String())
	}

	return s, nil
}
