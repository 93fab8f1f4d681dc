package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/stmt-convert/internal/converter"
	"fjacquet/stmt-convert/internal/logging"
	"fjacquet/stmt-convert/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadEnv loads the first .env file found in the working directory or its
// parent. Variables already set in the environment win. It returns the file
// that was loaded, or "" when there was none.
func LoadEnv() (string, error) {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return "", fmt.Errorf("error loading %s: %w", envFile, err)
		}
		return envFile, nil
	}
	return "", nil
}

// NewLogger builds the application logger from the log section, writing to out
// (stderr when nil).
func (c *Config) NewLogger(out io.Writer) logging.Logger {
	if out == nil {
		out = os.Stderr
	}
	return logging.NewLogrusAdapterWithOutput(c.Log.Level, c.Log.Format, out)
}

// ConverterOptions maps parser settings onto converter options.
func (c *Config) ConverterOptions() converter.Options {
	return converter.Options{
		RejectSingleQuotes: c.CSV.RejectSingleQuotes,
		ExtractCAMTEntries: c.CAMT.ExtractEntries,
	}
}

// ResolveFormat parses a format tag. With formats.lenient set, an unknown tag
// falls back to CSV and a warning is logged; otherwise it is an error.
func (c *Config) ResolveFormat(tag string, logger logging.Logger) (models.Format, error) {
	if !c.Formats.Lenient {
		return models.ParseFormat(tag)
	}
	format, fellBack := models.ParseFormatLenient(tag)
	if fellBack && logger != nil {
		logger.Warn("Unknown format, falling back to csv", logging.F(logging.FieldFormatValue, tag))
	}
	return format, nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
