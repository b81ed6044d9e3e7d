// Package zwrap opens alignment files so that callers see the same
// byte stream whether or not the file on disk was gzipped. Detection
// is done by just trying the decompressor, not by file suffix, so a
// misnamed file still works.
package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// Reader is a ReadCloser over the logical (decompressed) content.
type Reader struct {
	src  io.ReadCloser
	zrdr *gzip.Reader // nil when the source was not compressed
}

// Read reads from the decompressor if there is one, otherwise
// straight from the source.
func (r *Reader) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.src.Read(p)
}

// Compressed says whether a decompressor sits between the caller and
// the source.
func (r *Reader) Compressed() bool { return r.zrdr != nil }

// Close closes the decompressor, then the backing source.
func (r *Reader) Close() error {
	if r.zrdr == nil {
		return r.src.Close()
	}
	return errors.Join(r.zrdr.Close(), r.src.Close())
}

// ReadSeekCloser does not seem to be in the standard library.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe decides if the underlying stream is compressed and wraps
// it if so. You do lose something: whatever seeking the source could
// do, the result cannot. That is the price of reading through a
// decompressor.
func WrapMaybe(src ReadSeekCloser) (*Reader, error) {
	if zrdr, err := gzip.NewReader(src); err == nil {
		return &Reader{src: src, zrdr: zrdr}, nil
	}
	// Not gzip. The probe consumed some bytes, so rewind.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &Reader{src: src}, nil
}

// Open opens a file and transparently decompresses it.
func Open(path string) (*Reader, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return r, nil
}
