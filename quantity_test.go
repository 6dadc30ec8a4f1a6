package humandur

import (
	"errors"
	"testing"
)

func collectQuantities(t *testing.T, input string) ([]quantity, error) {
	t.Helper()
	qs := quantities{lex: &lexer{input: input}}
	var out []quantity
	for {
		q, ok, err := qs.next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, q)
	}
}

func TestQuantities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []quantity
	}{
		{
			name:  "value with unit",
			input: "15 minutes",
			want:  []quantity{{mantissa: 15, unit: unitMinute}},
		},
		{
			name:  "bare value is seconds",
			input: "90",
			want:  []quantity{{mantissa: 90, unit: unitSecond}},
		},
		{
			name:  "consecutive values each default to seconds",
			input: "16 17 seconds",
			want: []quantity{
				{mantissa: 16, unit: unitSecond},
				{mantissa: 17, unit: unitSecond},
			},
		},
		{
			name:  "leading word is noise",
			input: "year15",
			want:  []quantity{{mantissa: 15, unit: unitSecond}},
		},
		{
			name:  "dangling word after pair is noise",
			input: "16 min seconds",
			want:  []quantity{{mantissa: 16, unit: unitMinute}},
		},
		{
			name:  "sign binds to its own quantity",
			input: "1 day -1 hour",
			want: []quantity{
				{mantissa: 1, unit: unitDay},
				{neg: true, mantissa: 1, unit: unitHour},
			},
		},
		{
			name:  "words only",
			input: "no duration here",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectQuantities(t, tt.input)
			if err != nil {
				t.Fatalf("quantities(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("quantities(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("quantities(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuantitiesUnknownUnit(t *testing.T) {
	_, err := collectQuantities(t, "16 sdfwe")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("error = %v, want ErrUnknownUnit", err)
	}
}
