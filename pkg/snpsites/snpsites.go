// Package snpsites glues the pieces into the pipeline: open the
// alignment, pull out the reference, scan for variant sites and
// write the three output files next to the input.
package snpsites

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/puethe/gubbins/pkg/alignment"
	"github.com/puethe/gubbins/pkg/outfmt"
	"github.com/puethe/gubbins/pkg/seq/common"
	"github.com/puethe/gubbins/pkg/snp"
)

// CmdArgs holds everything the command line can ask for.
type CmdArgs struct {
	Files     []string
	OutPrefix string // base path for outputs; empty means next to the input
	Progress  bool
	Summary   bool
}

// RunResult says what one input produced.
type RunResult struct {
	Input        string
	NSamples     int
	GenomeLength int
	NSites       int
	Outputs      []string
}

// One runs the pipeline on a single file. Output files are named
// outbase plus the format suffix; an empty outbase means the input
// path itself. Nothing is written if the input cannot be parsed.
func One(path, outbase string, progress bool) (*RunResult, error) {
	aln, err := alignment.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bar *pb.ProgressBar
	opts := &snp.Options{}
	if progress {
		bar = pb.StartNew(aln.GenomeLength())
		opts.Progress = func(done, total int) { bar.Set(done) }
	}
	rs := snp.Detect(aln, opts)
	if bar != nil {
		bar.Finish()
	}

	if outbase == "" {
		outbase = path
	}
	written, err := outfmt.WriteFiles(rs, outbase)
	res := &RunResult{
		Input:        path,
		NSamples:     aln.NSamples(),
		GenomeLength: aln.GenomeLength(),
		NSites:       len(rs.Sites),
		Outputs:      written,
	}
	return res, err // err can hold a formatter failure; the rest were still written
}

// MyMain is the top level main, after parsing the command line.
// A broken input stops that input, not the whole run. The summary,
// if asked for, goes to w.
func MyMain(args CmdArgs, w io.Writer) int {
	if len(args.Files) == 0 {
		fmt.Fprintln(os.Stderr, "no input files")
		return common.ExitUsageError
	}
	if args.OutPrefix != "" && len(args.Files) > 1 {
		fmt.Fprintln(os.Stderr, "an output prefix only makes sense with a single input")
		return common.ExitUsageError
	}

	exit := common.ExitSuccess
	var results []*RunResult
	for _, path := range args.Files {
		res, err := One(path, args.OutPrefix, args.Progress)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = common.ExitFailure
		}
		if res != nil {
			results = append(results, res)
		}
	}
	if args.Summary {
		writeSummary(w, results)
	}
	return exit
}

// writeSummary renders a little table of what each input produced.
func writeSummary(w io.Writer, results []*RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Input", "Samples", "Length", "SNP Sites", "Outputs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	totalSites := 0
	for _, r := range results {
		table.Append([]string{
			r.Input,
			strconv.Itoa(r.NSamples),
			strconv.Itoa(r.GenomeLength),
			strconv.Itoa(r.NSites),
			strconv.Itoa(len(r.Outputs)),
		})
		totalSites += r.NSites
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d inputs", len(results)), "", "",
		strconv.Itoa(totalSites), "",
	})
	table.Render()
}
