package humandur

import "fmt"

// quantity is one signed value/unit pair recognized from the input.
type quantity struct {
	neg        bool
	mantissa   uint64
	fracDigits int
	exponent   int
	unit       Unit
}

// quantities pairs each number token with the unit word that follows it,
// pulling tokens on demand. A number with no trailing unit word defaults
// to seconds (the systemd.time convention for bare values); a word with no
// preceding number is ignorable noise. A number paired with a word that is
// not in the unit table fails the parse.
type quantities struct {
	lex        *lexer
	pending    token
	hasPending bool
}

func (q *quantities) next() (quantity, bool, error) {
	for {
		var num token
		if q.hasPending {
			num = q.pending
			q.hasPending = false
		} else {
			tok, ok, err := q.lex.next()
			if err != nil || !ok {
				return quantity{}, false, err
			}
			if tok.kind != tokenNumber {
				continue
			}
			num = tok
		}

		qty := quantity{
			neg:        num.neg,
			mantissa:   num.mantissa,
			fracDigits: num.fracDigits,
			exponent:   num.exponent,
			unit:       unitSecond,
		}

		tok, ok, err := q.lex.next()
		if err != nil {
			return quantity{}, false, err
		}
		switch {
		case !ok:
			// Last value in the input, no unit: seconds.
		case tok.kind == tokenNumber:
			// Two values in a row; the first is seconds, the second
			// starts the next pairing.
			q.pending = tok
			q.hasPending = true
		default:
			u, found := lookupUnit(tok.word)
			if !found {
				return quantity{}, false, fmt.Errorf("%w %q", ErrUnknownUnit, tok.word)
			}
			qty.unit = u
		}
		return qty, true, nil
	}
}
