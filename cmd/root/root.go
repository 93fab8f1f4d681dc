// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/stmt-convert/internal/batch"
	"fjacquet/stmt-convert/internal/config"
	"fjacquet/stmt-convert/internal/container"
	"fjacquet/stmt-convert/internal/converter"
	"fjacquet/stmt-convert/internal/logging"
	"fjacquet/stmt-convert/internal/models"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	InFormat   string
	OutFormat  string
	ConfigFile string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger before any subcommand runs.
	Log logging.Logger = logging.NewDiscardLogger()

	// AppConfig is the configuration loaded for the running command.
	AppConfig = config.Default()

	// AppContainer holds the dependencies built from AppConfig.
	AppContainer *container.Container

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "stmt-convert",
		Short: "Convert bank statements between CSV, MT940 and CAMT.053.",
		Long: `stmt-convert converts bank-statement data between a generic CSV ledger
export, SWIFT MT940 and ISO 20022 CAMT.053 XML.

Input is parsed into a list of transactions which is then written in the
requested output format. Supported format names: csv, mt940, camt053.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
			if err != nil {
				return err
			}
			if SharedFlags.LogLevel != "" {
				cfg.Log.Level = SharedFlags.LogLevel
			}
			appContainer, err := container.NewContainer(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			AppConfig = cfg
			AppContainer = appContainer
			Log = appContainer.GetLogger()
			if cfg.File != "" {
				Log.Debug("Loaded configuration", logging.F(logging.FieldConfigFile, cfg.File))
			}
			return nil
		},
	}
)

// Init initializes the root command and all flags. Calling it more than once
// is a no-op.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (default stdin)")
		flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
		flags.StringVarP(&SharedFlags.InFormat, "in-format", "I", "", "Input format: csv, mt940 or camt053")
		flags.StringVarP(&SharedFlags.OutFormat, "out-format", "O", "", "Output format: csv, mt940 or camt053")
		flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.stmt-convert, .stmt-convert and .)")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Override log.level (debug, info, warn, error)")
	})
}

// ResolveFormats parses the --in-format and --out-format flags.
func ResolveFormats() (from, to models.Format, err error) {
	if SharedFlags.InFormat == "" || SharedFlags.OutFormat == "" {
		return "", "", fmt.Errorf("both --in-format and --out-format must be specified")
	}
	if from, err = AppConfig.ResolveFormat(SharedFlags.InFormat, Log); err != nil {
		return "", "", err
	}
	if to, err = AppConfig.ResolveFormat(SharedFlags.OutFormat, Log); err != nil {
		return "", "", err
	}
	return from, to, nil
}

// GetConverter returns the container's converter, or one built from
// AppConfig when no command has initialized the container yet.
func GetConverter() *converter.Converter {
	if AppContainer != nil {
		return AppContainer.GetConverter()
	}
	return converter.New(AppConfig.ConverterOptions(), Log)
}

// GetBatchProcessor returns the container's batch processor, or one built
// from AppConfig when no command has initialized the container yet.
func GetBatchProcessor() *batch.Processor {
	if AppContainer != nil {
		return AppContainer.GetBatchProcessor()
	}
	return batch.NewProcessor(GetConverter(), Log, AppConfig.Input.MaxBytes)
}
