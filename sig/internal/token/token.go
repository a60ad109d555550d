package token

import "unicode"

type Type int

const (
	LParen Type = iota
	RParen
	Comma
	Ident
	String
	Invalid
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case Ident:
		return "identifier"
	case String:
		return "string"
	}
	return "invalid"
}

type Token struct {
	Value string
	Type  Type
	Pos   int
}

func isIdentRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	// Type names may be pointers, slices, arrays, or qualified.
	case '_', '.', '*', '[', ']':
		return true
	}
	return false
}

func Tokenize(input string) []Token {
	var tokens []Token
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsSpace(r) {
			continue
		}

		switch r {
		case '(':
			tokens = append(tokens, Token{Type: LParen, Value: "(", Pos: i})
			continue
		case ')':
			tokens = append(tokens, Token{Type: RParen, Value: ")", Pos: i})
			continue
		case ',':
			tokens = append(tokens, Token{Type: Comma, Value: ",", Pos: i})
			continue
		}

		// Quoted convention name
		if r == '"' {
			start := i
			i++
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			if i >= len(runes) {
				tokens = append(tokens, Token{Type: Invalid, Value: string(runes[start:]), Pos: start})
				return tokens
			}
			tokens = append(tokens, Token{Type: String, Value: string(runes[start+1 : i]), Pos: start})
			continue
		}

		if isIdentRune(r) {
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: Ident, Value: string(runes[start:i]), Pos: start})
			i--
			continue
		}

		tokens = append(tokens, Token{Type: Invalid, Value: string(r), Pos: i})
	}

	return tokens
}
