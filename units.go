package humandur

import "strings"

// Unit identifies a recognized time unit.
type Unit uint8

const (
	unitNanosecond Unit = iota
	unitMicrosecond
	unitMillisecond
	unitSecond
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

// unitNanos holds each unit's exact scale in nanoseconds. Months are a
// fixed 30 days and years a fixed 365.25 days; calendar-aware lengths are
// out of scope.
var unitNanos = [...]uint64{
	unitNanosecond:  1,
	unitMicrosecond: 1_000,
	unitMillisecond: 1_000_000,
	unitSecond:      1_000_000_000,
	unitMinute:      60_000_000_000,
	unitHour:        3_600_000_000_000,
	unitDay:         86_400_000_000_000,
	unitWeek:        604_800_000_000_000,
	unitMonth:       2_592_000_000_000_000,
	unitYear:        31_557_600_000_000_000,
}

// units maps lower-cased unit spellings to their Unit. The bare letters
// "m" and "M" are resolved in lookupUnit before case folding, since that
// pair is the only case-sensitive distinction (minute vs. month).
var units = map[string]Unit{
	"ns":           unitNanosecond,
	"nsec":         unitNanosecond,
	"nanosecond":   unitNanosecond,
	"nanoseconds":  unitNanosecond,
	"us":           unitMicrosecond,
	"µs":           unitMicrosecond, // U+00B5 micro sign
	"μs":           unitMicrosecond, // U+03BC Greek mu
	"usec":         unitMicrosecond,
	"microsecond":  unitMicrosecond,
	"microseconds": unitMicrosecond,
	"ms":           unitMillisecond,
	"msec":         unitMillisecond,
	"millisecond":  unitMillisecond,
	"milliseconds": unitMillisecond,
	"s":            unitSecond,
	"sec":          unitSecond,
	"secs":         unitSecond,
	"second":       unitSecond,
	"seconds":      unitSecond,
	"min":          unitMinute,
	"mins":         unitMinute,
	"minute":       unitMinute,
	"minutes":      unitMinute,
	"h":            unitHour,
	"hr":           unitHour,
	"hrs":          unitHour,
	"hour":         unitHour,
	"hours":        unitHour,
	"d":            unitDay,
	"day":          unitDay,
	"days":         unitDay,
	"w":            unitWeek,
	"wk":           unitWeek,
	"week":         unitWeek,
	"weeks":        unitWeek,
	"mo":           unitMonth,
	"month":        unitMonth,
	"months":       unitMonth,
	"y":            unitYear,
	"yr":           unitYear,
	"yrs":          unitYear,
	"year":         unitYear,
	"years":        unitYear,
}

// lookupUnit resolves a unit word to its Unit. Matching is
// case-insensitive except for the bare "m" (minute) and "M" (month).
func lookupUnit(word string) (Unit, bool) {
	switch word {
	case "m":
		return unitMinute, true
	case "M":
		return unitMonth, true
	}
	u, ok := units[strings.ToLower(word)]
	return u, ok
}
