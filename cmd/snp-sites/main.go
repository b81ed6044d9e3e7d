// snp-sites finds the variable positions in a multiple sequence
// alignment and writes them out as vcf, relaxed phylip and a fasta
// alignment holding only the variant columns.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/puethe/gubbins/pkg/seq/common"
	"github.com/puethe/gubbins/pkg/snpsites"
)

var progressFlag bool
var summaryFlag bool
var outPrefixFlag string

// exitCode is what MyMain decided; Execute cannot carry it for us.
var exitCode = common.ExitSuccess

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snp-sites [flags] alignment...",
		Short: "Find SNP sites in a multiple sequence alignment",
		Long: `snp-sites reads one or more fasta multiple sequence alignments,
gzipped or not, and finds the columns where the sequences disagree.
For an input x.aln it writes x.aln.vcf, x.aln.phylip and
x.aln.snp_sites.aln. The first sequence in each file is taken as the
reference.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = snpsites.MyMain(snpsites.CmdArgs{
				Files:     args,
				OutPrefix: outPrefixFlag,
				Progress:  progressFlag,
				Summary:   summaryFlag,
			}, cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&progressFlag, "progress", "p", false, "show a progress bar while scanning")
	cmd.Flags().BoolVarP(&summaryFlag, "summary", "s", false, "print a summary table when done")
	cmd.Flags().StringVarP(&outPrefixFlag, "output-prefix", "o", "", "base path for output files (single input only)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(common.ExitUsageError)
	}
	os.Exit(exitCode)
}
