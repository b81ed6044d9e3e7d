// Package alignment turns a fasta file into a fixed width matrix of
// sequences. All the validation lives here: every record must be the
// same length, and a file with no records is refused. Downstream code
// can then trust the shape and never check again.
package alignment

import (
	"fmt"
	"io"

	"github.com/puethe/gubbins/pkg/seq"
	"github.com/puethe/gubbins/pkg/zwrap"
)

// Record is one named row of the alignment.
type Record struct {
	Name  string
	Bases []byte
}

// Alignment is sample_count rows of genome_length columns. The first
// row is, by convention, the reference. Read only after construction.
type Alignment struct {
	records []Record
	glen    int
}

// LengthMismatch says a record does not agree with the first record's
// length, so the input was not an alignment at all.
type LengthMismatch struct {
	Ndx  int    // index of the offending record
	Name string // its name, for the error message
	Got  int
	Want int
}

func (e *LengthMismatch) Error() string {
	return fmt.Sprintf(
		"sequence lengths are not the same. First sequence is %d long, but sequence %d (%s) is %d",
		e.Want, e.Ndx, e.Name, e.Got)
}

// New builds an Alignment from already-read sequences, checking that
// they really are aligned.
func New(seqgrp *seq.SeqGrp) (*Alignment, error) {
	slc := seqgrp.SeqSlc()
	if len(slc) == 0 {
		return nil, seq.ErrNoSequences
	}
	glen := slc[0].Len()
	recs := make([]Record, 0, len(slc))
	for i, s := range slc {
		if s.Len() != glen {
			return nil, &LengthMismatch{Ndx: i, Name: s.Name(), Got: s.Len(), Want: glen}
		}
		recs = append(recs, Record{Name: s.Name(), Bases: s.Bases()})
	}
	return &Alignment{records: recs, glen: glen}, nil
}

// Read parses an alignment from a decompressed byte stream.
func Read(rdr io.Reader) (*Alignment, error) {
	seqgrp := new(seq.SeqGrp)
	if err := seq.ReadFasta(rdr, seqgrp); err != nil {
		return nil, err
	}
	return New(seqgrp)
}

// ReadFile parses an alignment from a file, gzipped or not.
func ReadFile(path string) (*Alignment, error) {
	fp, err := zwrap.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	aln, err := Read(fp)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return aln, nil
}

// GenomeLength is the number of columns.
func (aln *Alignment) GenomeLength() int { return aln.glen }

// NSamples is the number of rows.
func (aln *Alignment) NSamples() int { return len(aln.records) }

// Records returns the rows in the order they appeared in the file.
func (aln *Alignment) Records() []Record { return aln.records }

// SampleNames returns the names in first-seen order. Output formats
// depend on this order, so it is never sorted.
func (aln *Alignment) SampleNames() []string {
	names := make([]string, len(aln.records))
	for i, r := range aln.records {
		names[i] = r.Name
	}
	return names
}

// Reference returns the bases of the first record as a fresh copy, so
// no caller can corrupt the alignment through it.
func (aln *Alignment) Reference() []byte {
	ref := make([]byte, aln.glen)
	copy(ref, aln.records[0].Bases)
	return ref
}

// GenomeLength reports the column count of the alignment in a file.
func GenomeLength(path string) (int, error) {
	aln, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	return aln.GenomeLength(), nil
}

// BuildReference reads a file and returns its reference sequence,
// the first record's bases, unmodified.
func BuildReference(path string) ([]byte, error) {
	aln, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return aln.Reference(), nil
}

// SampleNames returns the first n sample names from a file.
func SampleNames(path string, n int) ([]string, error) {
	aln, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if n > aln.NSamples() {
		return nil, fmt.Errorf("%s: asked for %d sample names, file has %d",
			path, n, aln.NSamples())
	}
	return aln.SampleNames()[:n], nil
}
