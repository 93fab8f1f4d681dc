// Package camtparser reads and writes ISO 20022 CAMT.053 bank-to-customer
// statements.
package camtparser

import (
	"io"
	"strings"

	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"
)

const formatName = "camt053"

// Namespace is the camt.053 schema version written by Write.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"

const snippetLength = 40

// Document holds the raw statement text. Only the leading '<' is checked;
// the XML is not modeled further unless ExtractEntries is used.
type Document struct {
	Raw string
}

// Parse reads a CAMT.053 document.
func Parse(r io.Reader) (*Document, error) {
	text, err := fileutils.ReadText(r)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<") {
		invalid := parsererror.NewInvalidFormat(formatName, "document must start with '<'")
		invalid.ActualContentSnippet = parsererror.Snippet(trimmed, snippetLength)
		return nil, invalid
	}
	return &Document{Raw: text}, nil
}

// ToTransactions returns a single placeholder transaction whatever the
// document holds. Use ExtractEntries to read the actual entries.
func ToTransactions(_ *Document) []models.Transaction {
	tx := models.NewTransaction()
	tx.Reference = models.CAMTPlaceholderReference
	tx.Account = models.CAMTPlaceholderAccount
	tx.Description = models.CAMTPlaceholderDescription
	return []models.Transaction{tx}
}
