package snp_test

import (
	"os"
	"strings"
	"testing"

	"github.com/puethe/gubbins/pkg/alignment"
	"github.com/puethe/gubbins/pkg/seq/common"
	"github.com/puethe/gubbins/pkg/snp"
)

func alnHelp(t *testing.T, s string) *alignment.Alignment {
	t.Helper()
	aln, err := alignment.Read(strings.NewReader(s))
	if err != nil {
		t.Fatal("reading alignment:", err)
	}
	return aln
}

// fasta glues sequences into fasta text with names s0, s1, ...
func fasta(seqs ...string) string {
	var b strings.Builder
	for i, s := range seqs {
		b.WriteString(">s")
		b.WriteByte(byte('0' + i))
		b.WriteByte('\n')
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestAllIdentical(t *testing.T) {
	aln := alnHelp(t, fasta("ACGTACGT", "ACGTACGT", "ACGTACGT"))
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 0 {
		t.Fatal("identical sequences: wanted 0 sites, got", len(rs.Sites))
	}
	if rs.GenomeLength != 8 || rs.NSamples() != 3 {
		t.Fatalf("result shape wrong: %d x %d", rs.NSamples(), rs.GenomeLength)
	}
}

// One changed character must mean exactly one more site.
func TestSingleDifference(t *testing.T) {
	aln := alnHelp(t, fasta("ACGTACGT", "ACGTACGT", "ACGAACGT"))
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 1 {
		t.Fatal("wanted 1 site, got", len(rs.Sites))
	}
	site := rs.Sites[0]
	if site.Pos != 4 {
		t.Fatal("site position wanted 4, got", site.Pos)
	}
	if site.RefBase != 'T' {
		t.Fatalf("ref base wanted T, got %c", site.RefBase)
	}
	if string(site.Calls) != "TTA" {
		t.Fatalf("calls wanted TTA, got %q", site.Calls)
	}
}

// Sites come out ordered by position, with calls in alignment order.
func TestSiteOrdering(t *testing.T) {
	aln := alnHelp(t, fasta("AAAA", "AATA", "CAAA"))
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 2 {
		t.Fatal("wanted 2 sites, got", len(rs.Sites))
	}
	if rs.Sites[0].Pos != 1 || rs.Sites[1].Pos != 3 {
		t.Fatalf("positions wanted 1,3 got %d,%d", rs.Sites[0].Pos, rs.Sites[1].Pos)
	}
	if string(rs.Sites[0].Calls) != "AAC" || string(rs.Sites[1].Calls) != "ATA" {
		t.Fatalf("calls wrong: %q %q", rs.Sites[0].Calls, rs.Sites[1].Calls)
	}
}

// Gaps and case are ordinary characters. A gap against a base is a
// SNP; so is 'a' against 'A'.
func TestLiteralInequality(t *testing.T) {
	aln := alnHelp(t, fasta("A-GT", "AAGt", "AAGT"))
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 2 {
		t.Fatal("wanted 2 sites, got", len(rs.Sites))
	}
	if string(rs.Sites[0].Calls) != "-AA" {
		t.Fatalf("gap calls wrong: %q", rs.Sites[0].Calls)
	}
	if string(rs.Sites[1].Calls) != "TtT" {
		t.Fatalf("case calls wrong: %q", rs.Sites[1].Calls)
	}
}

// A lone sequence cannot disagree with itself.
func TestSingleSample(t *testing.T) {
	aln := alnHelp(t, fasta("ACGT"))
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 0 {
		t.Fatal("single sample: wanted 0 sites, got", len(rs.Sites))
	}
}

func TestZeroColumns(t *testing.T) {
	aln := alnHelp(t, ">a\n>b\n")
	rs := snp.Detect(aln, nil)
	if len(rs.Sites) != 0 || rs.GenomeLength != 0 {
		t.Fatal("zero columns: wanted an empty result set")
	}
}

func TestProgressCallback(t *testing.T) {
	aln := alnHelp(t, fasta("ACGT", "ACGT"))
	var calls, last int
	opts := &snp.Options{Progress: func(done, total int) {
		calls++
		last = done
		if total != 4 {
			t.Fatal("total wanted 4, got", total)
		}
	}}
	snp.Detect(aln, opts)
	if calls != 4 || last != 4 {
		t.Fatalf("progress called %d times, last %d", calls, last)
	}
}

func TestCountSNPs(t *testing.T) {
	fname, err := common.WrtTemp(fasta("ACGTACGT", "ACGTACGT", "ACGAACGT"))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	ref, err := alignment.BuildReference(fname)
	if err != nil {
		t.Fatal(err)
	}
	n, err := snp.CountSNPs(ref, fname)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatal("wanted 1 snp, got", n)
	}

	if _, err := snp.CountSNPs(ref[:3], fname); err == nil {
		t.Fatal("short reference must be an error")
	}
}
