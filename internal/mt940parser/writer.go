package mt940parser

import (
	"bufio"
	"io"
	"strings"

	"fjacquet/stmt-convert/internal/currencyutils"
	"fjacquet/stmt-convert/internal/dateutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"
)

// movementSuffix is the transaction type and bank reference appended to every
// written 61 line.
const movementSuffix = "NMSCNONREF"

// lineBreaks flattens CR/LF in field values; a raw line break would end the
// tag and could start a new one.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Write renders each transaction as a 20/25/61 block with an optional 86
// narrative, separated by blank lines. The 61 line carries C or D from the
// amount sign and the absolute amount with a comma decimal separator. Line
// breaks inside reference, account and description are written as spaces.
func Write(w io.Writer, txs []models.Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range txs {
		bw.WriteString(":" + TagReference + ":" + lineBreaks.Replace(tx.Reference) + "\n")
		bw.WriteString(":" + TagAccount + ":" + lineBreaks.Replace(tx.Account) + "\n")
		bw.WriteString(":" + TagMovement + ":" + MovementLine(tx) + "\n")
		if tx.Description != "" {
			bw.WriteString(":" + TagNarrative + ":" + lineBreaks.Replace(tx.Description) + "\n")
		}
		bw.WriteString("\n")
	}
	// bufio keeps the first write error and reports it on Flush
	if err := bw.Flush(); err != nil {
		return &parsererror.IOError{Op: "write mt940", Err: err}
	}
	return nil
}

// MovementLine returns the value of the 61 tag for tx, e.g. "230105D100,50NMSCNONREF".
func MovementLine(tx models.Transaction) string {
	indicator := "C"
	if tx.IsDebit() {
		indicator = "D"
	}
	return dateutils.ToMT940(tx.ValueDate) + indicator + currencyutils.FormatCommaDecimal(tx.Amount) + movementSuffix
}
