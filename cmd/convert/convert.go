// Package convert handles single-document conversion
package convert

import (
	"fmt"
	"time"

	"fjacquet/stmt-convert/cmd/root"
	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one statement between formats",
	Long: `Convert a single statement from one format to another.

Input is read from --input (or stdin when omitted or "-") and the result is
written to --output (or stdout when omitted or "-").

Example:
  stmt-convert convert -I mt940 -O csv -i statement.sta -o statement.csv
  cat ledger.csv | stmt-convert convert -I csv -O camt053 > statement.xml`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	from, to, err := root.ResolveFormats()
	if err != nil {
		return err
	}

	log := root.Log.WithFields(
		logging.F(logging.FieldInputFile, displayName(root.SharedFlags.Input)),
		logging.F(logging.FieldOutputFile, displayName(root.SharedFlags.Output)),
		logging.F(logging.FieldFromFormat, from.String()),
		logging.F(logging.FieldToFormat, to.String()),
	)
	start := time.Now()

	input, err := fileutils.ReadInput(root.SharedFlags.Input, cmd.InOrStdin(), root.AppConfig.Input.MaxBytes)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	output, err := root.GetConverter().Convert(input, from, to)
	if err != nil {
		log.WithError(err).Error("Conversion failed")
		return fmt.Errorf("error converting %s to %s: %w", from, to, err)
	}

	if err := fileutils.WriteOutput(root.SharedFlags.Output, cmd.OutOrStdout(), output); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	log.Info("Conversion completed",
		logging.F(logging.FieldBytes, len(output)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return nil
}

func displayName(path string) string {
	if path == "" || path == fileutils.StdStream {
		return fileutils.StdStream
	}
	return path
}
