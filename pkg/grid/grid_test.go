package grid

import (
	"math"
	"testing"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

func ptr(v float64) *float64 { return &v }

func TestComputeBounds(t *testing.T) {
	cells := []Cell{
		{Col: 0, Row: 0, Value: 4, Valid: true},
		{Col: 1, Row: 0, Value: -2, Valid: true},
		{Col: 0, Row: 1, Value: 100, Valid: false},
		{Col: 1, Row: 1, Value: 9, Valid: true},
	}

	tests := []struct {
		name         string
		lower, upper *float64
		want         Bounds
	}{
		{"data only", nil, nil, Bounds{Min: -2, Max: 9}},
		{"lower clamp", ptr(0), nil, Bounds{Min: 0, Max: 9, MinClamped: true}},
		{"upper clamp", nil, ptr(5), Bounds{Min: -2, Max: 5, MaxClamped: true}},
		{"both clamps", ptr(1), ptr(2), Bounds{Min: 1, Max: 2, MinClamped: true, MaxClamped: true}},
		{"lower above data", ptr(20), nil, Bounds{Min: 20, Max: 20, MinClamped: true}},
		{"upper below data", nil, ptr(-10), Bounds{Min: -10, Max: -10, MaxClamped: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBounds(cells, tt.lower, tt.upper)
			if err != nil {
				t.Fatalf("ComputeBounds() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeBoundsNegativeData(t *testing.T) {
	// All-negative data must not be confused with an unset maximum.
	cells := []Cell{{Value: -5, Valid: true}, {Value: -3, Valid: true}}
	got, err := ComputeBounds(cells, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Min != -5 || got.Max != -3 {
		t.Errorf("ComputeBounds() = %+v, want [-5, -3]", got)
	}
}

func TestComputeBoundsCollapsedFactor(t *testing.T) {
	cells := []Cell{{Value: 200, Valid: true}, {Value: 300, Valid: true}}
	b, err := ComputeBounds(cells, nil, ptr(100))
	if err != nil {
		t.Fatalf("ComputeBounds() error = %v", err)
	}
	if b.Min != 100 || b.Max != 100 || b.Range() != 0 {
		t.Fatalf("ComputeBounds() = %+v, want [100, 100]", b)
	}
	for _, c := range cells {
		if f := b.Factor(c.Value); f != 1 {
			t.Errorf("Factor(%v) = %v, want 1", c.Value, f)
		}
	}

	if b, err := ComputeBounds(nil, ptr(5), nil); err != nil || b.Min != 5 || b.Max != 5 {
		t.Errorf("lower bound without data = %+v, %v", b, err)
	}
}

func TestComputeBoundsErrors(t *testing.T) {
	if _, err := ComputeBounds(nil, ptr(3), ptr(1)); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("inverted bounds error = %v", err)
	}
	if _, err := ComputeBounds(nil, ptr(math.NaN()), nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("NaN bound error = %v", err)
	}
}

func TestComputeBoundsNoValues(t *testing.T) {
	got, err := ComputeBounds([]Cell{{Valid: false}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Min != 0 || got.Max != 0 {
		t.Errorf("ComputeBounds() = %+v, want zero range", got)
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		value  float64
		want   float64
	}{
		{"minimum", Bounds{Min: 10, Max: 20}, 10, 0},
		{"maximum", Bounds{Min: 10, Max: 20}, 20, 1},
		{"middle", Bounds{Min: 10, Max: 20}, 15, 0.5},
		{"zero range", Bounds{Min: 7, Max: 7}, 7, 1},
		{"below clamp", Bounds{Min: 10, Max: 20, MinClamped: true}, 2, 0},
		{"above clamp", Bounds{Min: 10, Max: 20, MaxClamped: true}, 99, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bounds.Factor(tt.value); got != tt.want {
				t.Errorf("Factor(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	got := Valid([]Cell{{Valid: true}, {Valid: false}, {Valid: true}})
	if len(got) != 2 {
		t.Errorf("len(Valid()) = %d, want 2", len(got))
	}
}
