package humandur

import (
	"fmt"
	"math/bits"
)

const nanosPerSecond = 1_000_000_000

// maxEffectiveExponent bounds the net power-of-ten scaling applied to any
// single quantity (explicit exponent minus fractional digits). The bound
// is checked before any exponentiation, so a crafted exponent costs
// nothing beyond scanning its digits.
const maxEffectiveExponent = 18

var pow10 = [maxEffectiveExponent + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// sum is one side (added or subtracted) of the running total.
type sum struct {
	secs  uint64
	nanos uint32 // always < nanosPerSecond
}

func (s *sum) add(secs uint64, nanos uint32) error {
	n := s.nanos + nanos
	var carry uint64
	if n >= nanosPerSecond {
		n -= nanosPerSecond
		carry = 1
	}
	total, c := bits.Add64(s.secs, secs, carry)
	if c != 0 {
		return ErrOverflow
	}
	s.secs, s.nanos = total, n
	return nil
}

// accumulator folds quantities into positive and negative running sums.
// The sides stay separate so a negative quantity may appear anywhere in
// the input; only a negative final total is an error.
type accumulator struct {
	pos sum
	neg sum
}

// apply converts one quantity into an exact nanosecond contribution using
// fixed-width checked arithmetic and adds it to the matching side.
func (a *accumulator) apply(q quantity) error {
	eEff := q.exponent - q.fracDigits
	if eEff < -maxEffectiveExponent || eEff > maxEffectiveExponent {
		return fmt.Errorf("%w: effective exponent %d exceeds ±%d",
			ErrExponentRange, eEff, maxEffectiveExponent)
	}

	// contribution = mantissa * unit scale * 10^eEff, held in 128 bits.
	hi, lo := bits.Mul64(q.mantissa, unitNanos[q.unit])
	switch {
	case eEff > 0:
		var ok bool
		hi, lo, ok = mul128(hi, lo, pow10[eEff])
		if !ok {
			return ErrOverflow
		}
	case eEff < 0:
		// Truncating division: decimals round down to the nanosecond.
		hi, lo = div128(hi, lo, pow10[-eEff])
	}

	// The seconds part must fit in 64 bits.
	if hi >= nanosPerSecond {
		return ErrOverflow
	}
	secs, nanos := bits.Div64(hi, lo, nanosPerSecond)

	side := &a.pos
	if q.neg {
		side = &a.neg
	}
	return side.add(secs, uint32(nanos))
}

// total reduces the two sides to the final duration.
func (a *accumulator) total() (Duration, error) {
	if a.neg.secs > a.pos.secs ||
		(a.neg.secs == a.pos.secs && a.neg.nanos > a.pos.nanos) {
		return Duration{}, ErrUnderflow
	}
	secs := a.pos.secs - a.neg.secs
	nanos := int64(a.pos.nanos) - int64(a.neg.nanos)
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Duration{Seconds: secs, Nanos: uint32(nanos)}, nil
}

// mul128 multiplies the 128-bit value hi:lo by m, reporting whether the
// product still fits in 128 bits.
func mul128(hi, lo, m uint64) (uint64, uint64, bool) {
	h1, l1 := bits.Mul64(lo, m)
	h2, l2 := bits.Mul64(hi, m)
	if h2 != 0 {
		return 0, 0, false
	}
	nh, carry := bits.Add64(h1, l2, 0)
	if carry != 0 {
		return 0, 0, false
	}
	return nh, l1, true
}

// div128 divides the 128-bit value hi:lo by d, truncating toward zero.
func div128(hi, lo, d uint64) (uint64, uint64) {
	qhi := hi / d
	qlo, _ := bits.Div64(hi%d, lo, d)
	return qhi, qlo
}
