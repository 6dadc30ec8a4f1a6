// Package humandur converts free-form human-written text into an exact
// duration. The grammar extends the systemd.time time-span syntax: signed
// quantities, decimals, bounded scientific notation, and unit words with
// synonyms, interspersed with arbitrary ignorable text.
//
//	d, err := humandur.Parse("Duration: 1 hour, 15 minutes and 29 seconds")
//	// d == humandur.Duration{Seconds: 4529}
//
// A quantity is an optionally signed value followed by an optional unit
// word; a value without a unit means seconds. Quantities may appear in any
// order and repeat, and everything between them is ignored, so
// "1 day -1 hour" and ".:[[15]][seconds]" both parse. Words without a
// value attached are noise; a value paired with an unrecognized word fails
// the parse.
//
// Accepted units (case-insensitive, except that a bare "m" is minutes and
// a bare "M" is months): ns/nanosecond, us/µs/microsecond,
// ms/millisecond, s/sec/second, m/min/minute, h/hr/hour, d/day, w/wk/week,
// M/mo/month (a fixed 30 days), and y/yr/year (a fixed 365.25 days),
// with plurals.
//
// All arithmetic is fixed-width, exact, and overflow-checked: decimals are
// scaled through nanosecond-resolution integers (never floating point,
// rounding down to the nanosecond), numeric literals are capped at 20
// significant digits, and the effective power-of-ten exponent of any
// quantity is bounded to ±18 before exponentiation. The bounds make the
// cost of a parse linear in the input length no matter what the input
// asks for.
package humandur

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Duration is an exact non-negative span of time: whole seconds plus a
// sub-second nanosecond remainder. Unlike time.Duration it covers the
// full uint64 seconds range.
type Duration struct {
	Seconds uint64
	Nanos   uint32 // always < 1e9
}

// Parse converts text into a Duration. Input with no recognizable
// quantities yields a zero duration; malformed numbers, unknown units
// paired with a value, out-of-range exponents, and totals outside the
// representable range return an error matching one of the package's
// sentinel errors. Parse has no side effects and retains no state.
func Parse(input string) (Duration, error) {
	qs := quantities{lex: &lexer{input: input}}
	var acc accumulator
	for {
		q, ok, err := qs.next()
		if err != nil {
			return Duration{}, err
		}
		if !ok {
			break
		}
		if err := acc.apply(q); err != nil {
			return Duration{}, err
		}
	}
	return acc.total()
}

// Std converts d to the standard library representation. ok is false when
// d exceeds time.Duration's int64-nanosecond range.
func (d Duration) Std() (time.Duration, bool) {
	if d.Seconds > math.MaxInt64/nanosPerSecond {
		return 0, false
	}
	n := int64(d.Seconds)*nanosPerSecond + int64(d.Nanos)
	if n < 0 {
		return 0, false
	}
	return time.Duration(n), true
}

// FromStd converts a standard library duration. Negative durations are
// rejected with ErrUnderflow.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrUnderflow
	}
	return Duration{
		Seconds: uint64(d / time.Second),
		Nanos:   uint32(d % time.Second),
	}, nil
}

// String renders the duration as decimal seconds, e.g. "82800s" or
// "10886.4s".
func (d Duration) String() string {
	if d.Nanos == 0 {
		return fmt.Sprintf("%ds", d.Seconds)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", d.Nanos), "0")
	return fmt.Sprintf("%d.%ss", d.Seconds, frac)
}
