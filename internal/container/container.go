// Package container provides dependency injection for the stmt-convert application.
// It centralizes the creation and wiring of the logger, converter and batch
// processor from one configuration.
package container

import (
	"fmt"
	"io"

	"fjacquet/stmt-convert/internal/batch"
	"fjacquet/stmt-convert/internal/config"
	"fjacquet/stmt-convert/internal/converter"
	"fjacquet/stmt-convert/internal/logging"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	converter *converter.Converter
	processor *batch.Processor
}

// NewContainer creates and wires all application dependencies. Log output goes
// to logOut (stderr when nil).
func NewContainer(cfg *config.Config, logOut io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := cfg.NewLogger(logOut)

	conv := converter.New(cfg.ConverterOptions(), logger)
	processor := batch.NewProcessor(conv, logger, cfg.Input.MaxBytes)

	logger.Debug("Container initialized",
		logging.F("csv_reject_single_quotes", cfg.CSV.RejectSingleQuotes),
		logging.F("camt_extract_entries", cfg.CAMT.ExtractEntries),
		logging.F("formats_lenient", cfg.Formats.Lenient))

	return &Container{
		logger:    logger,
		config:    cfg,
		converter: conv,
		processor: processor,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConverter returns the configured conversion dispatcher.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// GetBatchProcessor returns the directory batch processor, sharing the
// container's converter.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.processor
}
