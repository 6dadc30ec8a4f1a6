package humandur

import (
	"errors"
	"testing"
)

// collect drains the lexer into a slice for comparison.
func collect(t *testing.T, input string) ([]token, error) {
	t.Helper()
	l := &lexer{input: input}
	var tokens []token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return tokens, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "noise only",
			input: ".:++++]][][[]- ",
			want:  nil,
		},
		{
			name:  "integer",
			input: "90",
			want:  []token{{kind: tokenNumber, mantissa: 90}},
		},
		{
			name:  "negative integer",
			input: "-15",
			want:  []token{{kind: tokenNumber, neg: true, mantissa: 15}},
		},
		{
			name:  "positive sign",
			input: "+15",
			want:  []token{{kind: tokenNumber, mantissa: 15}},
		},
		{
			name:  "detached sign is noise",
			input: "- 15",
			want:  []token{{kind: tokenNumber, mantissa: 15}},
		},
		{
			name:  "decimal",
			input: "1.07",
			want:  []token{{kind: tokenNumber, mantissa: 107, fracDigits: 2}},
		},
		{
			name:  "trailing dot is noise",
			input: "15.",
			want:  []token{{kind: tokenNumber, mantissa: 15}},
		},
		{
			name:  "leading dot is noise",
			input: ".5",
			want:  []token{{kind: tokenNumber, mantissa: 5}},
		},
		{
			name:  "exponent",
			input: "1.26e-1",
			want:  []token{{kind: tokenNumber, mantissa: 126, fracDigits: 2, exponent: -1}},
		},
		{
			name:  "exponent with plus",
			input: "2e+5",
			want:  []token{{kind: tokenNumber, mantissa: 2, exponent: 5}},
		},
		{
			name:  "uppercase exponent",
			input: "2E5",
			want:  []token{{kind: tokenNumber, mantissa: 2, exponent: 5}},
		},
		{
			name:  "e starts a word when no digits follow",
			input: "12eggs",
			want: []token{
				{kind: tokenNumber, mantissa: 12},
				{kind: tokenWord, word: "eggs"},
			},
		},
		{
			name:  "trailing e is a word",
			input: "12e",
			want: []token{
				{kind: tokenNumber, mantissa: 12},
				{kind: tokenWord, word: "e"},
			},
		},
		{
			name:  "number and unit word",
			input: "15 seconds",
			want: []token{
				{kind: tokenNumber, mantissa: 15},
				{kind: tokenWord, word: "seconds"},
			},
		},
		{
			name:  "junk between number and word",
			input: "15[]][seconds]",
			want: []token{
				{kind: tokenNumber, mantissa: 15},
				{kind: tokenWord, word: "seconds"},
			},
		},
		{
			name:  "unspaced pairs",
			input: "1min10seconds",
			want: []token{
				{kind: tokenNumber, mantissa: 1},
				{kind: tokenWord, word: "min"},
				{kind: tokenNumber, mantissa: 10},
				{kind: tokenWord, word: "seconds"},
			},
		},
		{
			name:  "unicode unit word",
			input: "5µs",
			want: []token{
				{kind: tokenNumber, mantissa: 5},
				{kind: tokenWord, word: "µs"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, tt.input)
			if err != nil {
				t.Fatalf("lex(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("lex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lex(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexerMantissaOverflow(t *testing.T) {
	// 21+ significant digits cannot fit the fixed-width mantissa; the
	// lexer must fail rather than truncate.
	inputs := []string{
		"123456789012345678901234567890",
		"18446744073709551616", // uint64 max + 1
		"1.2345678901234567890123456789",
	}
	for _, input := range inputs {
		if _, err := collect(t, input); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("lex(%q) error = %v, want ErrMalformedNumber", input, err)
		}
	}

	// Leading zeros carry no magnitude and stay within bounds.
	got, err := collect(t, "000000000000000000000042")
	if err != nil || len(got) != 1 || got[0].mantissa != 42 {
		t.Errorf("lex(leading zeros) = %+v, %v; want mantissa 42", got, err)
	}
}

func TestLexerExponentScanIsBounded(t *testing.T) {
	// An absurd exponent is scanned in one linear pass and saturates
	// instead of overflowing; the range check rejects it later.
	got, err := collect(t, "1e11232345982734592837498234")
	if err != nil || len(got) != 1 {
		t.Fatalf("lex() = %+v, %v; want a single number token", got, err)
	}
	if got[0].exponent < maxEffectiveExponent+1 {
		t.Errorf("exponent = %d, want a value beyond the ±%d bound", got[0].exponent, maxEffectiveExponent)
	}
}
