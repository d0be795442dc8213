// Package numfmt formats numbers with DecimalFormat-style patterns such as
// "0.#", "0.00", "#,##0.##" or "0.0%".
//
// A pattern is split into an optional literal prefix, a numeric body and an
// optional literal suffix. In the body, '0' marks a required digit and '#' an
// optional one; a ',' in the integer part enables digit grouping and a '.'
// separates the fraction. A '%' anywhere outside the body multiplies the value
// by 100. Rendering is delegated to golang.org/x/text/number.
//
// A [Formatter] holds a message printer and is not safe for concurrent use.
// Build one per render.
package numfmt

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// Pattern is a parsed decimal format.
type Pattern struct {
	Source         string
	Prefix, Suffix string
	MinInteger     int
	MinFraction    int
	MaxFraction    int
	Grouping       bool
	Percent        bool
}

// Parse parses a DecimalFormat pattern.
func Parse(pattern string) (Pattern, error) {
	if pattern == "" {
		return Pattern{}, errors.Invalid("decimal format cannot be empty")
	}

	start := strings.IndexAny(pattern, "#0,.")
	if start < 0 {
		return Pattern{}, errors.Invalid("decimal format %q has no digit placeholders", pattern)
	}
	end := start
	for end < len(pattern) && strings.IndexByte("#0,.", pattern[end]) >= 0 {
		end++
	}

	p := Pattern{
		Source: pattern,
		Prefix: pattern[:start],
		Suffix: pattern[end:],
	}
	p.Percent = strings.Contains(p.Prefix, "%") || strings.Contains(p.Suffix, "%")

	body := pattern[start:end]
	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if hasDot && strings.Contains(fracPart, ".") {
		return Pattern{}, errors.Invalid("decimal format %q has more than one decimal point", pattern)
	}
	if strings.Contains(fracPart, ",") {
		return Pattern{}, errors.Invalid("decimal format %q groups fraction digits", pattern)
	}

	p.Grouping = strings.Contains(intPart, ",")
	p.MinInteger = strings.Count(intPart, "0")
	if p.MinInteger == 0 && !hasDot {
		p.MinInteger = 1
	}

	sawOptional := false
	for _, r := range fracPart {
		switch r {
		case '0':
			if sawOptional {
				return Pattern{}, errors.Invalid("decimal format %q has '0' after '#' in the fraction", pattern)
			}
			p.MinFraction++
			p.MaxFraction++
		case '#':
			sawOptional = true
			p.MaxFraction++
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Formatter renders numbers with a fixed pattern.
type Formatter struct {
	pattern Pattern
	printer *message.Printer
	opts    []number.Option
}

// New parses pattern and returns a Formatter for it.
func New(pattern string) (*Formatter, error) {
	p, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return NewFromPattern(p), nil
}

// NewFromPattern returns a Formatter for an already parsed pattern.
func NewFromPattern(p Pattern) *Formatter {
	opts := []number.Option{
		number.MinIntegerDigits(p.MinInteger),
		number.MinFractionDigits(p.MinFraction),
		number.MaxFractionDigits(p.MaxFraction),
	}
	if !p.Grouping {
		opts = append(opts, number.NoSeparator())
	}
	return &Formatter{
		pattern: p,
		printer: message.NewPrinter(language.English),
		opts:    opts,
	}
}

// Pattern returns the parsed pattern.
func (f *Formatter) Pattern() Pattern { return f.pattern }

// Format renders v. NaN and infinities are rendered as "NaN", "∞" and "-∞".
func (f *Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return f.pattern.Prefix + "∞" + f.pattern.Suffix
	case math.IsInf(v, -1):
		return "-" + f.pattern.Prefix + "∞" + f.pattern.Suffix
	}
	if f.pattern.Percent {
		v *= 100
	}
	neg := v < 0
	s := f.printer.Sprint(number.Decimal(math.Abs(v), f.opts...))
	if neg && strings.Trim(s, "0.,") != "" {
		s = "-" + s
	}
	return f.pattern.Prefix + s + f.pattern.Suffix
}
