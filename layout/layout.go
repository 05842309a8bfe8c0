// Package layout arranges peptide occurrences into a fixed number of
// display rows for plotting.
package layout

import (
	"fmt"

	"github.com/hlapepclust/peptigram/match"
)

// Config controls row packing. MinGap is the number of residues required
// between consecutive occurrences sharing a row.
type Config struct {
	MaxRows int
	MinGap  int
}

// DefaultConfig gives the compact two row layout.
var DefaultConfig = Config{MaxRows: 2, MinGap: 10}

// Pack assigns each occurrence to a display row using greedy first fit.
// Occurrences must already be sorted the way match.Aggregate sorts them:
// by start, shorter spans first. An occurrence goes to the lowest row with
// MinGap residues of clearance; if every row is busy it is forced onto the
// row that frees up soonest, accepting visual overlap rather than growing
// the row count or dropping the match. The result always has exactly
// c.MaxRows rows and every input occurrence is placed in exactly one row.
func Pack(occs []match.Occurrence, c Config) ([][]match.Occurrence, error) {
	if c.MaxRows <= 0 {
		return nil, fmt.Errorf("maxRows must be positive, got %d", c.MaxRows)
	}

	rows := make([][]match.Occurrence, c.MaxRows)
	rowEnd := make([]int, c.MaxRows) // 0-based end of last occurrence per row

	var assigned bool
	var start, end int
	for _, o := range occs {
		start = o.Start - 1
		end = o.End - 1

		assigned = false
		for r := 0; r < c.MaxRows; r++ {
			if start > rowEnd[r]+c.MinGap {
				rows[r] = append(rows[r], o)
				rowEnd[r] = end
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}

		// All rows are busy near this position. Overflow onto the row
		// ending soonest and keep its end watermark monotonic.
		best := 0
		for r := 1; r < c.MaxRows; r++ {
			if rowEnd[r] < rowEnd[best] {
				best = r
			}
		}
		rows[best] = append(rows[best], o)
		if end > rowEnd[best] {
			rowEnd[best] = end
		}
	}

	return rows, nil
}
