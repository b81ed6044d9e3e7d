// Counting sequences does not need the parser. A ">" at the start of
// a line is a record, so we just count those, which is much faster on
// big files. Plain files are memory mapped; compressed files have to
// be streamed through the decompressor.

package alignment

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/puethe/gubbins/pkg/zwrap"
)

// countMarkers counts record markers in buf. prev is the byte just
// before buf, so a marker straddling two buffers is not lost.
func countMarkers(buf []byte, prev byte) int {
	n := bytes.Count(buf, []byte("\n>"))
	if prev == '\n' && len(buf) > 0 && buf[0] == '>' {
		n++
	}
	return n
}

// byMmap maps the whole file and counts markers in one go.
func byMmap(fp *os.File) (int, error) {
	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() == 0 { // mapping zero bytes is an error on some systems
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return countMarkers(mm, '\n'), nil
}

// byReading is the fallback for streams that cannot be mapped.
func byReading(rdr io.Reader) (int, error) {
	const bsize = 64 * 1024
	buf := make([]byte, bsize)
	count := 0
	prev := byte('\n') // a marker at the very start counts
	for {
		n, err := rdr.Read(buf)
		if n > 0 {
			count += countMarkers(buf[:n], prev)
			prev = buf[n-1]
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// NumSequences reports how many records a file holds, without
// building the alignment.
func NumSequences(path string) (int, error) {
	fp, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	z, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return 0, err
	}
	defer z.Close()
	if !z.Compressed() {
		return byMmap(fp)
	}
	return byReading(z)
}
