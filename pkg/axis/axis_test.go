package axis

import (
	"math"
	"slices"
	"testing"
)

func TestAddAssignsDenseIndices(t *testing.T) {
	a := New[string]("Fruit")
	a.Add("apple", "Apple").Add("pear", "Pear").Add("plum", "Plum")

	tests := []struct {
		key  string
		want int
	}{
		{"apple", 0},
		{"pear", 1},
		{"plum", 2},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := a.IndexOf(tt.key)
			if !ok || got != tt.want {
				t.Errorf("IndexOf(%q) = %d, %v; want %d, true", tt.key, got, ok, tt.want)
			}
		})
	}
	if a.Count() != 3 {
		t.Errorf("Count() = %d, want 3", a.Count())
	}
}

func TestAddIsIdempotent(t *testing.T) {
	a := New[int]("Year")
	a.Add(2020, "first").Add(2021, "2021").Add(2020, "second")

	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}
	if i, _ := a.IndexOf(2020); i != 0 {
		t.Errorf("IndexOf(2020) = %d, want 0", i)
	}
	if l, _ := a.LabelOf(2020); l != "first" {
		t.Errorf("LabelOf(2020) = %q, want first label to win", l)
	}
}

func TestMissingKey(t *testing.T) {
	a := Strings("", "a")
	if _, ok := a.IndexOf("b"); ok {
		t.Error("IndexOf(absent) reported present")
	}
	if _, ok := a.LabelOf("b"); ok {
		t.Error("LabelOf(absent) reported present")
	}
	if a.Contains("b") {
		t.Error("Contains(absent) = true")
	}
}

func TestAddKeysUsesLabeler(t *testing.T) {
	a := New[int]("Hour").WithLabeler(func(h int) string {
		if h < 12 {
			return "am"
		}
		return "pm"
	})
	a.AddKeys(9, 15, 9)

	if got := a.Labels(); !slices.Equal(got, []string{"am", "pm"}) {
		t.Errorf("Labels() = %v", got)
	}

	b := New[int]("Default").AddKeys(7, 8)
	if got := b.Labels(); !slices.Equal(got, []string{"7", "8"}) {
		t.Errorf("default labels = %v", got)
	}
}

func TestInts(t *testing.T) {
	a := Ints("Year", 1949, 1952)
	if got := a.Labels(); !slices.Equal(got, []string{"1949", "1950", "1951", "1952"}) {
		t.Errorf("Labels() = %v", got)
	}
	if got := a.Keys(); !slices.Equal(got, []int{1949, 1950, 1951, 1952}) {
		t.Errorf("Keys() = %v", got)
	}
	if Ints("", 5, 4).Count() != 0 {
		t.Error("inverted range should be empty")
	}
}

func TestIntsAtMaxInt(t *testing.T) {
	a := Ints("", math.MaxInt-1, math.MaxInt)
	if got := a.Keys(); !slices.Equal(got, []int{math.MaxInt - 1, math.MaxInt}) {
		t.Errorf("Keys() = %v", got)
	}
	if got := Ints("", math.MaxInt, math.MaxInt).Count(); got != 1 {
		t.Errorf("single MaxInt entry: Count() = %d", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := Strings("T", "x", "y")
	labels := a.Labels()
	labels[0] = "mutated"
	if l, _ := a.LabelOf("x"); l != "x" {
		t.Errorf("Labels() exposed internal slice, LabelOf = %q", l)
	}
	if a.Title() != "T" {
		t.Errorf("Title() = %q", a.Title())
	}
	a.SetTitle("U")
	if a.Title() != "U" {
		t.Errorf("SetTitle did not apply, Title() = %q", a.Title())
	}
}
