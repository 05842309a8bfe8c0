package seqio

import "testing"

func TestReadProteins(t *testing.T) {
	proteins := ReadProteins("testdata/proteins.fa")
	if len(proteins) != 2 {
		t.Fatalf("expected 2 records, got %d", len(proteins))
	}
	if proteins[0].Name != "sp|P01308|INS_HUMAN" {
		t.Error("record name should be the first header token, got", proteins[0].Name)
	}
	if proteins[0].Seq != "MALWMRLLPLLALLALWGPDPAAAFVNQHLCGSHLVEALYLVCGERGFFYTPKT" {
		t.Error("multi-line record not concatenated", proteins[0].Seq)
	}
	if proteins[1].Name != "short" || proteins[1].Seq != "MKVLATG" {
		t.Error("wrong second record", proteins[1])
	}
}

func TestReadPeptides(t *testing.T) {
	peptides := ReadPeptides("testdata/peptides.txt")
	expected := []string{"KVL", "FVNQHLCGSHLV", "GERGFFYTPKT"}
	if len(peptides) != len(expected) {
		t.Fatalf("expected %d peptides, got %d", len(expected), len(peptides))
	}
	for i := range expected {
		if peptides[i] != expected[i] {
			t.Error("wrong peptide", i, peptides[i])
		}
	}
}
