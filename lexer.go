package humandur

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokenNumber tokenKind = iota
	tokenWord
)

// token is a single lexed construct: a signed numeric literal or a word.
// Tokens are transient and never outlive the Parse call that produced
// them.
type token struct {
	kind tokenKind

	// Number fields. The literal's value is
	// sign * mantissa * 10^(exponent-fracDigits).
	neg        bool
	mantissa   uint64
	fracDigits int
	exponent   int

	// Word field.
	word string
}

// rawExponentCap saturates the value accumulated from explicit exponent
// digits. Scanning stays linear in the digit count; any saturated value is
// far outside maxEffectiveExponent and fails the range check downstream,
// so no exponentiation is ever attempted for it.
const rawExponentCap = 1 << 16

// lexer scans input left to right, emitting number and word tokens on
// demand and skipping every character that does not begin one. It is
// single-use and not restartable.
type lexer struct {
	input string
	pos   int
}

// next returns the next token, or ok=false at end of input. The only
// lexing error is a numeric literal whose digits overflow the fixed-width
// mantissa; such input fails the whole parse rather than being silently
// truncated.
func (l *lexer) next() (tok token, ok bool, err error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case isDigit(l.input[l.pos]):
			return l.scanNumber(false)
		case r == '-' || r == '+':
			// A sign starts a number only when directly adjacent to a
			// digit ("-15 seconds" yes, "- 15 seconds" no).
			if l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
				l.pos++
				return l.scanNumber(r == '-')
			}
			l.pos += size
		case unicode.IsLetter(r):
			return l.scanWord(), true, nil
		default:
			l.pos += size
		}
	}
	return token{}, false, nil
}

func (l *lexer) scanNumber(neg bool) (token, bool, error) {
	tok := token{kind: tokenNumber, neg: neg}
	start := l.pos

	if err := l.scanDigits(&tok.mantissa); err != nil {
		return token{}, false, fmt.Errorf("%w %q", err, l.input[start:l.pos+1])
	}

	// A decimal point only belongs to the number when digits follow it.
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		l.pos++
		fracStart := l.pos
		if err := l.scanDigits(&tok.mantissa); err != nil {
			return token{}, false, fmt.Errorf("%w %q", err, l.input[start:l.pos+1])
		}
		tok.fracDigits = l.pos - fracStart
	}

	l.scanExponent(&tok)
	return tok, true, nil
}

// scanDigits folds a digit run into x, failing on uint64 overflow. This
// caps recognized literals at 20 significant digits regardless of input
// length.
func (l *lexer) scanDigits(x *uint64) error {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		d := uint64(l.input[l.pos] - '0')
		if *x > (math.MaxUint64-d)/10 {
			return ErrMalformedNumber
		}
		*x = *x*10 + d
		l.pos++
	}
	return nil
}

// scanExponent consumes an e/E suffix with optional sign and digits. An
// e/E not followed by digits is left in place: it begins the next word
// ("12 seconds" vs "12e2 seconds" vs "12 elephants").
func (l *lexer) scanExponent(tok *token) {
	if l.pos >= len(l.input) || (l.input[l.pos] != 'e' && l.input[l.pos] != 'E') {
		return
	}
	i := l.pos + 1
	neg := false
	if i < len(l.input) && (l.input[i] == '+' || l.input[i] == '-') {
		neg = l.input[i] == '-'
		i++
	}
	if i >= len(l.input) || !isDigit(l.input[i]) {
		return
	}
	exp := 0
	for ; i < len(l.input) && isDigit(l.input[i]); i++ {
		if exp < rawExponentCap {
			exp = exp*10 + int(l.input[i]-'0')
		}
	}
	if neg {
		exp = -exp
	}
	tok.exponent = exp
	l.pos = i
}

// scanWord consumes a maximal run of letters.
func (l *lexer) scanWord() token {
	start := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		l.pos += size
	}
	return token{kind: tokenWord, word: l.input[start:l.pos]}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
