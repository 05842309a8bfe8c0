package layout

import (
	"strings"
	"testing"

	"github.com/hlapepclust/peptigram/match"
)

func occ(start, end int) match.Occurrence {
	return match.Occurrence{Peptide: "PEP", Start: start, End: end}
}

func TestPackBasic(t *testing.T) {
	occs := []match.Occurrence{occ(1, 4), occ(2, 5), occ(50, 53)}
	rows, err := Pack(occs, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// First occurrence overflows onto row 0 (all watermarks at the
	// sentinel), second onto row 1, third clears row 0's gap.
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatal("wrong row occupancy", rows)
	}
	if rows[0][0].Start != 1 || rows[1][0].Start != 2 || rows[0][1].Start != 50 {
		t.Error("wrong row assignment", rows)
	}
}

func TestPackCompleteness(t *testing.T) {
	occs := []match.Occurrence{
		occ(1, 9), occ(3, 11), occ(5, 13), occ(7, 15),
		occ(30, 38), occ(60, 68), occ(61, 69),
	}
	rows, err := Pack(occs, Config{MaxRows: 3, MinGap: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	total := 0
	seen := make(map[match.Occurrence]int)
	for r := range rows {
		total += len(rows[r])
		for _, o := range rows[r] {
			seen[o]++
		}
	}
	if total != len(occs) {
		t.Errorf("expected %d placed occurrences, got %d", len(occs), total)
	}
	for _, o := range occs {
		if seen[o] != 1 {
			t.Error("occurrence not placed exactly once", o, seen[o])
		}
	}
}

func TestPackRowsOrderedByStart(t *testing.T) {
	occs := []match.Occurrence{
		occ(1, 5), occ(2, 6), occ(3, 7), occ(40, 44), occ(41, 45), occ(80, 84),
	}
	rows, err := Pack(occs, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	for r := range rows {
		for i := 1; i < len(rows[r]); i++ {
			if rows[r][i].Start < rows[r][i-1].Start {
				t.Error("row not ordered by start", r, rows[r])
			}
		}
	}
}

func TestPackSingleRowOverflow(t *testing.T) {
	// One row forces every occurrence into it, overlap and all.
	occs := []match.Occurrence{occ(1, 10), occ(2, 11), occ(3, 12)}
	rows, err := Pack(occs, Config{MaxRows: 1, MinGap: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Error("expected all occurrences forced onto the single row", rows)
	}
}

func TestPackGapRule(t *testing.T) {
	// End of first occurrence is 10 (0-based 9); a start of 21 (0-based 20)
	// clears 9+10, a start of 20 (0-based 19) does not.
	first := occ(1, 10)

	rows, err := Pack([]match.Occurrence{first, occ(21, 30)}, Config{MaxRows: 2, MinGap: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows[0]) != 2 {
		t.Error("start 21 should share row 0 with an occurrence ending at 10", rows)
	}

	rows, err = Pack([]match.Occurrence{first, occ(20, 29)}, Config{MaxRows: 2, MinGap: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows[0]) != 1 || len(rows[1]) != 1 {
		t.Error("start 20 should be pushed to row 1", rows)
	}
}

func TestPackZeroMaxRows(t *testing.T) {
	_, err := Pack([]match.Occurrence{occ(1, 5)}, Config{MaxRows: 0, MinGap: 10})
	if err == nil {
		t.Fatal("expected configuration error for maxRows = 0")
	}
	if !strings.Contains(err.Error(), "maxRows") {
		t.Error("error should name the offending parameter:", err)
	}
}

func TestPackEmptyInput(t *testing.T) {
	rows, err := Pack(nil, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || len(rows[0]) != 0 || len(rows[1]) != 0 {
		t.Error("expected empty rows for empty input", rows)
	}
}
