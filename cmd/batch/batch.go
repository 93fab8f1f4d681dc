// Package batch handles batch processing of files
package batch

import (
	"fmt"

	"fjacquet/stmt-convert/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert statements from a directory",
	Long: `Batch convert every statement in an input directory and write the results
to an output directory.

Files are selected by the extensions of the input format (csv: .csv;
mt940: .sta .mt940 .940 .txt; camt053: .xml). Each output keeps the input base
name with the extension of the output format. Files that fail to convert are
logged and skipped.

Example:
  stmt-convert batch -I mt940 -O camt053 -i statements/ -o converted/`,
	RunE: batchFunc,
}

func init() {
	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}

	from, to, err := root.ResolveFormats()
	if err != nil {
		return err
	}

	result, err := root.GetBatchProcessor().ProcessDirectory(cmd.Context(), inputDir, outputDir, from, to)
	if err != nil {
		return fmt.Errorf("error during batch conversion: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Batch processing completed. %d files converted, %d failed.\n",
		len(result.Converted), len(result.Failed))
	return nil
}
