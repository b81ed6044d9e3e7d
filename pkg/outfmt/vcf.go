// Package outfmt serializes a set of SNP sites into the three
// conventional formats: VCF, relaxed phylip and a fasta alignment
// restricted to the variant columns. Each writer is a pure function
// of the result set, so the same sites always give the same bytes.
package outfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/puethe/gubbins/pkg/snp"
)

// altBases lists the distinct non-reference bases at a site, comma
// separated, in the order the samples first show them.
func altBases(site snp.Site) string {
	var seen [256]bool
	alts := make([]byte, 0, 8)
	for _, c := range site.Calls {
		if c == site.RefBase || seen[c] {
			continue
		}
		seen[c] = true
		if len(alts) > 0 {
			alts = append(alts, ',')
		}
		alts = append(alts, c)
	}
	return string(alts)
}

// WriteVCF writes one data row per variant site. Sample columns carry
// the sample's base at the site; the ALT column carries the bases
// seen that differ from the reference.
func WriteVCF(w io.Writer, rs *snp.ResultSet) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "##fileformat=VCFv4.1")
	bw.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT")
	for _, name := range rs.SampleNames {
		bw.WriteByte('\t')
		bw.WriteString(name)
	}
	bw.WriteByte('\n')
	for _, site := range rs.Sites {
		fmt.Fprintf(bw, "1\t%d\t.\t%c\t%s\t.\t.\t.\tGT", site.Pos, site.RefBase, altBases(site))
		for _, c := range site.Calls {
			bw.WriteByte('\t')
			bw.WriteByte(c)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
