package outfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/puethe/gubbins/pkg/snp"
)

// WritePhylip writes the variant sites as a relaxed phylip
// alignment: a header with sample and site counts, then one line per
// sample. Relaxed means names keep their full length instead of the
// classic ten characters, with a tab before the calls.
func WritePhylip(w io.Writer, rs *snp.ResultSet) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", rs.NSamples(), len(rs.Sites))
	for i, name := range rs.SampleNames {
		bw.WriteString(name)
		bw.WriteByte('\t')
		for _, site := range rs.Sites {
			bw.WriteByte(site.Calls[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
