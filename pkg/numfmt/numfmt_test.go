package numfmt

import (
	"testing"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    Pattern
	}{
		{"0.#", Pattern{Source: "0.#", MinInteger: 1, MaxFraction: 1}},
		{"0.##", Pattern{Source: "0.##", MinInteger: 1, MaxFraction: 2}},
		{"0.00", Pattern{Source: "0.00", MinInteger: 1, MinFraction: 2, MaxFraction: 2}},
		{"#,##0.0#", Pattern{Source: "#,##0.0#", MinInteger: 1, MinFraction: 1, MaxFraction: 2, Grouping: true}},
		{"0", Pattern{Source: "0", MinInteger: 1}},
		{"#", Pattern{Source: "#", MinInteger: 1}},
		{"0.0%", Pattern{Source: "0.0%", Suffix: "%", MinInteger: 1, MinFraction: 1, MaxFraction: 1, Percent: true}},
		{"$0.00", Pattern{Source: "$0.00", Prefix: "$", MinInteger: 1, MinFraction: 2, MaxFraction: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{"", "abc", "0.0.0", "0.#0", "0.0,0"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := Parse(pattern)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("Parse(%q) error = %v, want INVALID_ARGUMENT", pattern, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		pattern string
		value   float64
		want    string
	}{
		{"0.#", 1234.5, "1234.5"},
		{"0.#", 7, "7"},
		{"0.##", 2.25, "2.25"},
		{"0.##", 3500000, "3500000"},
		{"0.00", 1.5, "1.50"},
		{"#,##0.00", 1234.5, "1,234.50"},
		{"0.0%", 0.25, "25.0%"},
		{"$0.00", 3, "$3.00"},
		{"0.#", -2.5, "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := New(tt.pattern)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.pattern, err)
			}
			if got := f.Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) with %q = %q, want %q", tt.value, tt.pattern, got, tt.want)
			}
		})
	}
}
