// Reader for fasta format files.

package seq

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

// ErrNoSequences means the input had no fasta records at all.
var ErrNoSequences = errors.New("no sequences found")

type item struct {
	data     []byte
	complete bool
	eof      bool
}

type lexer struct {
	input    []byte
	ichan    chan *item
	seqgrp   *SeqGrp
	rdr      io.Reader
	itempool sync.Pool
	cmmt     string // partial comment
	seq      []byte // partial sequence
	pending  bool   // a comment has been finished, but not its sequence
	term     byte
	err      error
}

const defaultReadSize = 512

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing, to push buffer
// boundaries through the middle of records.
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends an item to channel, ichan.
// An item is terminated by l.term, or the end of the buffer or
// end of input.
func (l *lexer) next() {
	l.itempool.New = newItem
	for {
		item := l.itempool.Get().(*item)
		item.eof = false
		if len(l.input) == 0 {
			l.input = make([]byte, rdsize)
			// ReadFull, not Read. A gzip reader hands back short
			// reads in the middle of a stream and we must not
			// mistake those for the end of the file.
			n, err := io.ReadFull(l.rdr, l.input)
			if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
				l.err = err // signal that a real error occurred.
				n = 0
			}
			if n == 0 {
				item.data = nil
				item.complete = true
				item.eof = true
				l.ichan <- item // we have to flush
				close(l.ichan)
				return
			}
			if n < rdsize { //        Short read means end of input.
				l.input[n] = l.term // Add terminator
				l.input = l.input[:n+1]
			}
		}

		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever we have in the buffer.
			item.complete = false
		} else { //                                We did find a terminator
			newlInput := l.input[ndx+1:] //        Advance pointer
			item.data = l.input[:ndx]    //
			item.complete = true         //
			l.input = newlInput          //        Set up for next loop
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// removeWhite throws out white space, so wrapped sequence lines are
// joined and stray blanks or carriage returns disappear.
func removeWhite(s []byte) []byte {
	f := bytes.Fields(s)
	return bytes.Join(f, nil)
}

// trimCmmt tidies a finished comment. Only the first comment in a
// file still carries its ">"; later ones lose it as a terminator.
func trimCmmt(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, "> \t"))
}

// endseq finishes the record being built and stores it.
func (l *lexer) endseq() {
	l.seqgrp.seqs = append(l.seqgrp.seqs, seq{cmmt: l.cmmt, seq: l.seq})
	l.cmmt = ""
	l.seq = nil
	l.pending = false
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	if item == nil || l.err != nil {
		return nil
	}
	defer l.itempool.Put(item)
	if item.eof {
		if l.pending { // the file ended inside this record
			l.endseq()
		}
		return nil
	}

	l.seq = append(l.seq, removeWhite(item.data)...)
	if item.complete {
		l.endseq()
		return gcmmt
	}
	return gseq
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	if item == nil || l.err != nil {
		return nil
	}
	defer l.itempool.Put(item)
	if item.eof {
		if l.cmmt != "" { // the file ended inside a comment line
			l.cmmt = trimCmmt(l.cmmt)
			l.endseq()
		}
		return nil
	}

	l.cmmt = l.cmmt + string(item.data)
	if item.complete {
		l.cmmt = trimCmmt(l.cmmt)
		l.pending = true
		return gseq
	}
	return gcmmt
}

// ReadFasta reads fasta formatted sequences from rdr into seqgrp.
// Records may be wrapped over any number of lines. A file with no
// sequences at all is an error, but zero length sequences are not.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), seqgrp: seqgrp, term: NL}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return l.err
	}
	if seqgrp.NSeq() == 0 {
		return ErrNoSequences
	}
	return nil
}
