// Package snp scans an alignment column by column and picks out the
// variant sites. Classification is on raw characters: gaps and
// ambiguity codes are symbols like any other, upper and lower case
// are different. If a column is not all one symbol, it is a SNP.
package snp

import (
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/puethe/gubbins/pkg/alignment"
)

// Site is one variant column.
type Site struct {
	Pos     int    // 1-based position in the genome
	RefBase byte   // reference base at that position
	Calls   []byte // one call per sample, in alignment order
}

// ResultSet is everything the output formats need. Sample order and
// site order are fixed here; the formatters never re-derive them.
type ResultSet struct {
	GenomeLength int
	SampleNames  []string
	Sites        []Site // ordered by ascending position
}

// NSamples is the number of samples the calls refer to.
func (rs *ResultSet) NSamples() int { return len(rs.SampleNames) }

// Options holds the few knobs the scan has.
type Options struct {
	// Progress, if set, is called after every column with the number
	// of columns done and the total.
	Progress func(done, total int)
}

const maxSym = 256

// Detect scans aln and returns its variant sites. The reference is
// the first row, as convention dictates. aln is not modified.
func Detect(aln *alignment.Alignment, opts *Options) *ResultSet {
	return detect(aln, aln.Reference(), opts)
}

// detect does the work. ref only provides the reported reference
// bases. Whether a column is a SNP depends on the column alone.
func detect(aln *alignment.Alignment, ref []byte, opts *Options) *ResultSet {
	glen := aln.GenomeLength()
	recs := aln.Records()
	nseq := len(recs)
	rs := &ResultSet{GenomeLength: glen, SampleNames: aln.SampleNames()}

	// Tally how many of each symbol appear at each site, the same
	// trick as usage counting in sequence entropy code. A column is
	// invariant exactly when one symbol accounts for every row.
	var symUsed [maxSym]bool
	for _, r := range recs {
		for _, c := range r.Bases {
			symUsed[c] = true
		}
	}
	var mapping [maxSym]uint8
	nsym := 0
	for i, used := range symUsed {
		if used {
			mapping[i] = uint8(nsym)
			nsym++
		}
	}
	if nsym == 0 { // zero length genome, nothing to scan
		return rs
	}
	counts := matrix.NewFMatrix2d(nsym, glen)
	for _, r := range recs {
		for i, c := range r.Bases {
			counts.Mat[mapping[c]][i]++
		}
	}

	want := float32(nseq)
	for p := 0; p < glen; p++ {
		if counts.Mat[mapping[recs[0].Bases[p]]][p] != want {
			calls := make([]byte, nseq)
			for j, r := range recs {
				calls[j] = r.Bases[p]
			}
			rs.Sites = append(rs.Sites, Site{Pos: p + 1, RefBase: ref[p], Calls: calls})
		}
		if opts != nil && opts.Progress != nil {
			opts.Progress(p+1, glen)
		}
	}
	return rs
}

// CountSNPs reads the alignment in path and says how many variant
// sites it has, reported against a caller supplied reference.
func CountSNPs(refseq []byte, path string) (int, error) {
	aln, err := alignment.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(refseq) != aln.GenomeLength() {
		return 0, fmt.Errorf("reference is %d long, alignment in %s has %d columns",
			len(refseq), path, aln.GenomeLength())
	}
	rs := detect(aln, refseq, nil)
	return len(rs.Sites), nil
}
