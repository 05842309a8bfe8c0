// Package seqio loads protein FASTA files and peptide lists into memory.
package seqio

import (
	"log"
	"strings"

	"github.com/vertgenlab/gonomics/fileio"
)

// Protein is a named amino acid sequence.
type Protein struct {
	Name string
	Seq  string
}

// ReadProteins reads a protein FASTA file, preserving record order. The
// record name is the first whitespace-delimited token of the header line.
// Multi-line records are concatenated. Gzipped input is handled by fileio.
func ReadProteins(filename string) []Protein {
	lines := fileio.Read(filename)

	var ans []Protein
	var curr *Protein
	buf := new(strings.Builder)
	for _, line := range lines {
		if strings.HasPrefix(line, ">") {
			if curr != nil {
				curr.Seq = buf.String()
				ans = append(ans, *curr)
				buf.Reset()
			}
			name := strings.Fields(line[1:])
			if len(name) == 0 {
				log.Fatalf("ERROR: unnamed fasta record in %s", filename)
			}
			curr = &Protein{Name: name[0]}
			continue
		}
		if curr == nil {
			log.Fatalf("ERROR: %s does not begin with a fasta header", filename)
		}
		buf.WriteString(strings.TrimSpace(line))
	}
	if curr != nil {
		curr.Seq = buf.String()
		ans = append(ans, *curr)
	}
	return ans
}

// ReadPeptides reads a peptide list, one sequence per line. Blank lines are
// skipped and surrounding whitespace is trimmed.
func ReadPeptides(filename string) []string {
	lines := fileio.Read(filename)

	var ans []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			ans = append(ans, line)
		}
	}
	return ans
}
