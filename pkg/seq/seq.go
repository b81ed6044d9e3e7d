// Package seq reads sequences, which begin their lives in fasta
// format: a ">" comment line followed by one or more lines of
// sequence characters. A record's bases may be split across any
// number of lines; we join them and throw away the white space.
package seq

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// seq is one named sequence.
type seq struct {
	cmmt string
	seq  []byte
}

// Cmmt returns the comment without the leading ">".
func (s seq) Cmmt() string { return s.cmmt }

// Bases returns the sequence as the original byte slice.
func (s seq) Bases() []byte { return s.seq }

// Len is the number of bases.
func (s seq) Len() int { return len(s.seq) }

// Name returns the first word of the comment, which is what people
// use as a sample identifier. It can be empty if the comment was.
func (s seq) Name() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// SeqGrp is a group of sequences in the order they were read.
type SeqGrp struct {
	seqs []seq
}

// NSeq returns the number of sequences.
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences.
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Names returns the sample names in the order the sequences
// appeared. The order matters downstream, so do not sort it.
func (seqgrp *SeqGrp) Names() []string {
	names := make([]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		names[i] = s.Name()
	}
	return names
}

// Readfile takes a filename and reads sequences from it.
// An empty filename means stdin.
func Readfile(fname string) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	var err error
	var fp io.ReadCloser // don't use a file. It could be stdin.

	if fname != "" {
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	} else {
		fp = os.Stdin
	}
	defer fp.Close()

	if err := ReadFasta(fp, seqgrp); err != nil {
		return nil, err
	}
	return seqgrp, nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If prefix
// is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		f := seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
