package outfmt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/puethe/gubbins/pkg/snp"
)

// Suffixes appended to the input path to name the outputs.
const (
	VCFSuffix    = ".vcf"
	PhylipSuffix = ".phylip"
	ALNSuffix    = ".snp_sites.aln"
)

func writeOne(path string, wrt func(io.Writer, *snp.ResultSet) error, rs *snp.ResultSet) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := wrt(fp, rs); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// WriteFiles writes all three formats next to base. The three are
// independent consumers of the same result set, so a failure in one
// does not stop the others. It returns the paths actually written
// and whatever errors occurred, joined.
func WriteFiles(rs *snp.ResultSet, base string) ([]string, error) {
	type job struct {
		path string
		wrt  func(io.Writer, *snp.ResultSet) error
	}
	jobs := []job{
		{base + VCFSuffix, WriteVCF},
		{base + PhylipSuffix, WritePhylip},
		{base + ALNSuffix, WriteALN},
	}
	var written []string
	var errs []error
	for _, j := range jobs {
		if err := writeOne(j.path, j.wrt, rs); err != nil {
			errs = append(errs, err)
			continue
		}
		written = append(written, j.path)
	}
	return written, errors.Join(errs...)
}
