package density

import (
	"testing"

	"github.com/hlapepclust/peptigram/match"
)

func TestCoverage(t *testing.T) {
	occs := []match.Occurrence{
		{Start: 1, End: 3},
		{Start: 2, End: 4},
		{Start: 8, End: 8},
	}
	cov := Coverage(occs, 8)
	expected := []float64{1, 2, 2, 1, 0, 0, 0, 1}
	if len(cov) != len(expected) {
		t.Fatalf("expected length %d, got %d", len(expected), len(cov))
	}
	for i := range expected {
		if cov[i] != expected[i] {
			t.Error("wrong coverage at position", i+1, cov[i], expected[i])
		}
	}
}

func TestCoverageEmpty(t *testing.T) {
	cov := Coverage(nil, 5)
	for i := range cov {
		if cov[i] != 0 {
			t.Error("expected zero coverage with no occurrences", cov)
		}
	}
}

func TestSmooth(t *testing.T) {
	cov := []float64{0, 0, 3, 0, 0}
	sm := Smooth(cov, 3)
	expected := []float64{0, 1, 1, 1, 0}
	for i := range expected {
		if sm[i] != expected[i] {
			t.Error("wrong smoothed value at", i, sm[i], expected[i])
		}
	}
}

func TestSmoothSmallWindow(t *testing.T) {
	cov := []float64{1, 2, 3}
	sm := Smooth(cov, 1)
	for i := range cov {
		if sm[i] != cov[i] {
			t.Error("window 1 should return the input unchanged", sm)
		}
	}
}

func TestPeakWindow(t *testing.T) {
	cov := []float64{0, 1, 4, 4, 4, 1, 0, 0}
	start, mean := PeakWindow(cov, 3)
	if start != 3 {
		t.Error("expected peak window starting at residue 3, got", start)
	}
	if mean != 4 {
		t.Error("expected peak mean 4, got", mean)
	}
}

func TestPeakWindowWiderThanProtein(t *testing.T) {
	cov := []float64{2, 4}
	start, mean := PeakWindow(cov, 10)
	if start != 1 || mean != 3 {
		t.Error("expected clamped full-length window", start, mean)
	}
}

func TestPeakWindowEmpty(t *testing.T) {
	start, mean := PeakWindow(nil, 5)
	if start != 0 || mean != 0 {
		t.Error("expected zero values for empty coverage", start, mean)
	}
}
