package humandur

import "errors"

// Parse errors. Every error is fatal to the Parse call that produced it;
// there is no partial result. Callers can match with errors.Is.
var (
	// ErrUnknownUnit reports a value paired with a word that is not in
	// the unit table.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrOverflow reports a quantity, or the running total, beyond the
	// representable range of Duration.
	ErrOverflow = errors.New("duration overflow")

	// ErrUnderflow reports a total that would be negative; durations are
	// non-negative.
	ErrUnderflow = errors.New("duration underflow")

	// ErrExponentRange reports an effective power-of-ten exponent outside
	// the fixed safe bound (see maxEffectiveExponent).
	ErrExponentRange = errors.New("exponent out of range")

	// ErrMalformedNumber reports a numeric literal with more significant
	// digits than fit the fixed-width representation.
	ErrMalformedNumber = errors.New("malformed number")
)
