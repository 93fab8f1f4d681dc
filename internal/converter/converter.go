// Package converter sequences parse, canonicalize and serialize for a pair of
// statement formats.
package converter

import (
	"bytes"
	"io"

	"fjacquet/stmt-convert/internal/camtparser"
	"fjacquet/stmt-convert/internal/csvparser"
	"fjacquet/stmt-convert/internal/logging"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/mt940parser"
	"fjacquet/stmt-convert/internal/parsererror"
)

// Options tune parsing and canonicalization.
type Options struct {
	// RejectSingleQuotes turns on the strict CSV single-quote guard.
	RejectSingleQuotes bool
	// ExtractCAMTEntries reads real Ntry elements from CAMT.053 input instead
	// of returning the placeholder transaction.
	ExtractCAMTEntries bool
}

// Document is a parsed input. Exactly one payload matching Format is set.
type Document struct {
	Format models.Format
	CSV    *csvparser.Document
	MT940  *mt940parser.Document
	CAMT   *camtparser.Document
}

// Converter dispatches to the per-format parsers and serializers.
type Converter struct {
	opts   Options
	logger logging.Logger
}

// New creates a Converter. A nil logger discards all output.
func New(opts Options, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Converter{opts: opts, logger: logger}
}

// Parse reads r as the given format.
func (c *Converter) Parse(format models.Format, r io.Reader) (*Document, error) {
	doc := &Document{Format: format}
	var err error

	switch format {
	case models.FormatCSV:
		doc.CSV, err = csvparser.Parse(r, csvparser.Options{RejectSingleQuotes: c.opts.RejectSingleQuotes})
	case models.FormatMT940:
		doc.MT940, err = mt940parser.Parse(r)
	case models.FormatCAMT053:
		doc.CAMT, err = camtparser.Parse(r)
	default:
		return nil, &parsererror.UnsupportedError{From: string(format)}
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Canonicalize turns a parsed document into transactions in input order.
func (c *Converter) Canonicalize(doc *Document) ([]models.Transaction, error) {
	if doc == nil {
		return nil, parsererror.NewInvalidFormat("document", "nothing to canonicalize")
	}
	switch doc.Format {
	case models.FormatCSV:
		return csvparser.ToTransactions(doc.CSV), nil
	case models.FormatMT940:
		return mt940parser.ToTransactions(doc.MT940), nil
	case models.FormatCAMT053:
		if c.opts.ExtractCAMTEntries {
			return camtparser.ExtractEntries(doc.CAMT)
		}
		return camtparser.ToTransactions(doc.CAMT), nil
	default:
		return nil, &parsererror.UnsupportedError{From: string(doc.Format)}
	}
}

// Serialize writes txs to w in the given format.
func (c *Converter) Serialize(format models.Format, w io.Writer, txs []models.Transaction) error {
	switch format {
	case models.FormatCSV:
		return csvparser.Write(w, txs)
	case models.FormatMT940:
		return mt940parser.Write(w, txs)
	case models.FormatCAMT053:
		return camtparser.Write(w, txs)
	default:
		return &parsererror.UnsupportedError{To: string(format)}
	}
}

// Convert parses input as from and renders it as to. Nothing is returned
// unless every stage succeeds.
func (c *Converter) Convert(input []byte, from, to models.Format) ([]byte, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, &parsererror.UnsupportedError{From: string(from), To: string(to)}
	}
	log := c.logger.WithFields(
		logging.F(logging.FieldFromFormat, from.String()),
		logging.F(logging.FieldToFormat, to.String()),
	)

	doc, err := c.Parse(from, bytes.NewReader(input))
	if err != nil {
		log.WithError(err).Debug("Parse failed", logging.F(logging.FieldStage, "parse"))
		return nil, err
	}

	txs, err := c.Canonicalize(doc)
	if err != nil {
		log.WithError(err).Debug("Canonicalization failed", logging.F(logging.FieldStage, "canonicalize"))
		return nil, err
	}
	log.Debug("Canonicalized transactions", logging.F(logging.FieldCount, len(txs)))

	var buf bytes.Buffer
	if err := c.Serialize(to, &buf, txs); err != nil {
		log.WithError(err).Debug("Serialization failed", logging.F(logging.FieldStage, "serialize"))
		return nil, err
	}
	log.Debug("Conversion complete", logging.F(logging.FieldBytes, buf.Len()))
	return buf.Bytes(), nil
}

// Convert converts input with default options and no logging.
func Convert(input []byte, from, to models.Format) ([]byte, error) {
	return New(Options{}, nil).Convert(input, from, to)
}
