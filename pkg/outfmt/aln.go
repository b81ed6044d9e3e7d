package outfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/puethe/gubbins/pkg/snp"
)

const cPerLine = 60

// WriteALN writes the original alignment restricted to its variant
// columns, one fasta record per sample, wrapped at 60 characters.
func WriteALN(w io.Writer, rs *snp.ResultSet) error {
	bw := bufio.NewWriter(w)
	calls := make([]byte, len(rs.Sites))
	for i, name := range rs.SampleNames {
		fmt.Fprintf(bw, ">%s\n", name)
		for j, site := range rs.Sites {
			calls[j] = site.Calls[i]
		}
		s := calls
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			bw.Write(s[:cPerLine])
			bw.WriteByte('\n')
		}
		bw.Write(s)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
