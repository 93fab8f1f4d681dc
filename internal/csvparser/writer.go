package csvparser

import (
	"encoding/csv"
	"io"

	"fjacquet/stmt-convert/internal/currencyutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// Header is the first line written by Write.
const Header = "reference,account,amount,currency,date,description"

// exportRow is the column layout of the CSV export.
type exportRow struct {
	Reference   string `csv:"reference"`
	Account     string `csv:"account"`
	Amount      string `csv:"amount"`
	Currency    string `csv:"currency"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
}

// Write renders transactions as CSV with a header line. Fields containing the
// delimiter, a double quote or a line break are quoted with inner quotes
// doubled, so Parse reads the same values back. Sink failures are returned as
// *parsererror.IOError.
func Write(w io.Writer, txs []models.Transaction) error {
	rows := make([]exportRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, exportRow{
			Reference:   tx.Reference,
			Account:     tx.Account,
			Amount:      currencyutils.FormatFixed(tx.Amount),
			Currency:    tx.Currency,
			Date:        tx.ValueDate,
			Description: tx.Description,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return &parsererror.IOError{Op: "write csv", Err: err}
	}
	return nil
}
