// Package brokenio wraps a reader so i/o failures can be provoked on
// purpose. Typical use: you have a reader feeding a parser and want
// to see the parser's error path. You write
// rdr = brokenio.NewReader(rdr, n) and everything functions as
// before, until n bytes have gone through.
// Unlike throwing dice, failing at a fixed byte count makes the tests
// reproducible.
package brokenio

import (
	"errors"
	"io"
)

// ErrInjected is what Read returns once the budget is used up.
var ErrInjected = errors.New("injected read failure")

// Reader passes data through until failAfter bytes have been read,
// then fails every call.
type Reader struct {
	rdr       io.Reader
	failAfter int
	nByte     int
}

// NewReader wraps rdr so it breaks after failAfter bytes.
func NewReader(rdr io.Reader, failAfter int) *Reader {
	return &Reader{rdr: rdr, failAfter: failAfter}
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (int, error) {
	if r.nByte >= r.failAfter {
		return 0, ErrInjected
	}
	if want := r.failAfter - r.nByte; len(p) > want {
		p = p[:want]
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	return n, err
}
