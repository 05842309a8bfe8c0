// Package match locates peptides within protein sequences, tolerating a
// fixed number of amino acid substitutions.
package match

import (
	"fmt"
	"sort"
)

// Occurrence is a single approximate match of a peptide within a protein.
// Start and End are 1-based inclusive residue positions.
type Occurrence struct {
	Peptide     string
	Start       int
	End         int
	Mismatches  int
	MatchedText string
}

// FindOccurrences scans protein with a sliding window the length of peptide
// and reports every window whose Hamming distance to the peptide is within
// budget. Overlapping hits are all retained. A peptide longer than the
// protein yields no occurrences. Only substitutions are tolerated, so the
// matched text is always the same length as the peptide.
func FindOccurrences(peptide, protein string, budget int) ([]Occurrence, error) {
	if budget < 0 {
		return nil, fmt.Errorf("mismatch budget must be non-negative, got %d", budget)
	}
	return findOccurrences(peptide, protein, budget), nil
}

func findOccurrences(peptide, protein string, budget int) []Occurrence {
	pl := len(peptide)
	if pl == 0 || len(protein) < pl {
		return nil
	}

	var ans []Occurrence
window:
	for i := 0; i <= len(protein)-pl; i++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if protein[i+j] != peptide[j] {
				mm++
				if mm > budget {
					continue window
				}
			}
		}
		ans = append(ans, Occurrence{
			Peptide:     peptide,
			Start:       i + 1,
			End:         i + pl,
			Mismatches:  mm,
			MatchedText: protein[i : i+pl],
		})
	}
	return ans
}

// Aggregate runs FindOccurrences for every peptide against the protein and
// returns the union sorted by start position, breaking ties with shorter
// matches first. Row packing relies on this ordering, so longer matches do
// not block earlier slots. Matches from different peptides on the same span
// are kept as distinct occurrences.
func Aggregate(peptides []string, protein string, budget int) ([]Occurrence, error) {
	if budget < 0 {
		return nil, fmt.Errorf("mismatch budget must be non-negative, got %d", budget)
	}

	var all []Occurrence
	for i := range peptides {
		all = append(all, findOccurrences(peptides[i], protein, budget)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return all[i].End-all[i].Start < all[j].End-all[j].Start
	})
	return all, nil
}
