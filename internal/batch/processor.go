// Package batch converts every statement file in a directory.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/stmt-convert/internal/converter"
	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/logging"
	"fjacquet/stmt-convert/internal/models"
)

// ErrOutputCollision marks an input skipped because an earlier input in the
// same run already produced its output file.
var ErrOutputCollision = errors.New("output file already written in this batch")

// FileError records a file that could not be converted.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// Result summarizes a batch run.
type Result struct {
	Converted []string // output files written, in input order
	Failed    []FileError
}

// Processor converts directories one file at a time.
type Processor struct {
	conv     *converter.Converter
	logger   logging.Logger
	maxBytes int64
}

// NewProcessor creates a Processor. Inputs larger than maxBytes are skipped as
// failures; a non-positive maxBytes uses fileutils.DefaultMaxInputBytes.
func NewProcessor(conv *converter.Converter, logger logging.Logger, maxBytes int64) *Processor {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if conv == nil {
		conv = converter.New(converter.Options{}, logger)
	}
	if maxBytes <= 0 {
		maxBytes = fileutils.DefaultMaxInputBytes
	}
	return &Processor{conv: conv, logger: logger, maxBytes: maxBytes}
}

// ProcessDirectory converts every file in inputDir whose extension belongs to
// from, writing <name><to extension> into outputDir. Files that fail are logged
// and skipped. Inputs sharing a base name (stmt.sta, stmt.txt) map to the same
// output: once one of them is written, the later ones fail with
// ErrOutputCollision. The returned error is only set when the directories
// themselves cannot be used or ctx is cancelled.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string, from, to models.Format) (*Result, error) {
	log := p.logger.WithFields(
		logging.F(logging.FieldInputDir, inputDir),
		logging.F(logging.FieldOutputDir, outputDir),
		logging.F(logging.FieldFromFormat, from.String()),
		logging.F(logging.FieldToFormat, to.String()),
	)

	if !fileutils.DirectoryExists(inputDir) {
		return nil, fmt.Errorf("input directory does not exist: %s", inputDir)
	}
	files, err := fileutils.ListFilesWithExtensions(inputDir, from.InputExtensions())
	if err != nil {
		return nil, fmt.Errorf("error reading input directory: %w", err)
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	log.Info("Starting batch conversion", logging.F(logging.FieldCount, len(files)))
	start := time.Now()

	result := &Result{}
	written := make(map[string]string, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outputFile := filepath.Join(outputDir, fileutils.ReplaceExtension(file, to.Extension()))
		if source, ok := written[outputFile]; ok {
			err := fmt.Errorf("%w: %s (from %s)", ErrOutputCollision, outputFile, source)
			log.WithError(err).Warn("Failed to convert file, skipping",
				logging.F(logging.FieldInputFile, file))
			result.Failed = append(result.Failed, FileError{File: file, Err: err})
			continue
		}
		if err := p.processFile(file, outputFile, from, to); err != nil {
			log.WithError(err).Warn("Failed to convert file, skipping",
				logging.F(logging.FieldInputFile, file))
			result.Failed = append(result.Failed, FileError{File: file, Err: err})
			continue
		}
		log.Debug("Converted file",
			logging.F(logging.FieldInputFile, file),
			logging.F(logging.FieldOutputFile, outputFile))
		written[outputFile] = file
		result.Converted = append(result.Converted, outputFile)
	}

	log.Info("Batch conversion completed",
		logging.F(logging.FieldCount, len(result.Converted)),
		logging.F(logging.FieldFailed, len(result.Failed)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return result, nil
}

func (p *Processor) processFile(inputFile, outputFile string, from, to models.Format) error {
	input, err := fileutils.ReadInput(inputFile, nil, p.maxBytes)
	if err != nil {
		return err
	}
	output, err := p.conv.Convert(input, from, to)
	if err != nil {
		return err
	}
	return fileutils.WriteFile(outputFile, output, models.PermissionOutputFile)
}
