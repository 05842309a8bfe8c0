// Package density summarizes how heavily each protein residue is covered
// by peptide occurrences, and finds the densest window of a protein.
package density

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hlapepclust/peptigram/match"
)

// Coverage counts, for each residue of a protein, how many occurrences
// cover that position. Positions outside the protein are ignored.
func Coverage(occs []match.Occurrence, proteinLen int) []float64 {
	cov := make([]float64, proteinLen)
	for _, o := range occs {
		for p := o.Start; p <= o.End && p <= proteinLen; p++ {
			if p >= 1 {
				cov[p-1]++
			}
		}
	}
	return cov
}

// Smooth returns a centered sliding-window mean of cov. The window is
// truncated at the ends of the protein. A window below 2 returns a copy.
func Smooth(cov []float64, window int) []float64 {
	ans := make([]float64, len(cov))
	if window < 2 {
		copy(ans, cov)
		return ans
	}
	half := window / 2
	for i := range cov {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(cov) {
			hi = len(cov)
		}
		ans[i] = stat.Mean(cov[lo:hi], nil)
	}
	return ans
}

// PeakWindow finds the window of the given width with the highest mean
// coverage, the candidate region for a core peptide. It returns the 1-based
// start of the window and its mean. The window is clamped to the protein
// length; empty coverage yields (0, 0).
func PeakWindow(cov []float64, window int) (start int, mean float64) {
	if len(cov) == 0 || window < 1 {
		return 0, 0
	}
	if window > len(cov) {
		window = len(cov)
	}

	start = 1
	mean = stat.Mean(cov[:window], nil)
	for i := 1; i+window <= len(cov); i++ {
		m := stat.Mean(cov[i:i+window], nil)
		if m > mean {
			mean = m
			start = i + 1
		}
	}
	return start, mean
}
