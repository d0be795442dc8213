package fonts

import (
	"sync"
	"testing"

	"github.com/matzehuels/heatgrid/pkg/layout"
)

var label = layout.Font{Family: FamilySans, Size: 20}

func TestMeasureEmpty(t *testing.T) {
	w, h := NewRegistry().Measure("", label)
	if w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%d, %d), want (0, 0)", w, h)
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	r := NewRegistry()
	w1, h1 := r.Measure("Jan", label)
	w2, h2 := r.Measure("January", label)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(Jan) = (%d, %d)", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text measured narrower: %d <= %d", w2, w1)
	}
	if h1 != h2 {
		t.Errorf("line height differs: %d != %d", h1, h2)
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	r := NewRegistry()
	w1, h1 := r.Measure("Heatmap", label)
	w2, h2 := r.Measure("Heatmap", layout.Font{Family: FamilySans, Size: 40})
	if w2 <= w1 || h2 <= h1 {
		t.Errorf("size 40 = (%d, %d), size 20 = (%d, %d)", w2, h2, w1, h1)
	}
}

func TestMonoIsFixedWidth(t *testing.T) {
	r := NewRegistry()
	mono := layout.Font{Family: "mono", Size: 12}
	wi, _ := r.Measure("iiii", mono)
	wm, _ := r.Measure("MMMM", mono)
	if wi != wm {
		t.Errorf("mono widths differ: %d != %d", wi, wm)
	}
}

func TestMeasureConcurrent(t *testing.T) {
	r := NewRegistry()
	want, _ := r.Measure("2024", label)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := r.Measure("2024", label); got != want {
				t.Errorf("concurrent Measure = %d, want %d", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestNewFace(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewFace(layout.Font{Size: 0}); err == nil {
		t.Error("NewFace(size 0) should fail")
	}
	face, err := r.NewFace(layout.Font{Family: FamilySans, Size: 14, Bold: true})
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if face.Metrics().Height <= 0 {
		t.Error("face has no line height")
	}
}

func TestTTFBase64Cached(t *testing.T) {
	a := TTFBase64(FamilySans, false)
	b := TTFBase64("anything", false)
	if a == "" || a != b {
		t.Error("TTFBase64 should fall back to Go Regular and cache")
	}
	if TTFBase64(FamilyMono, true) == a {
		t.Error("mono bold should differ from regular")
	}
}
