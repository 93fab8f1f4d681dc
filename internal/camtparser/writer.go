package camtparser

import (
	"io"

	"fjacquet/stmt-convert/internal/currencyutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"

	"github.com/beevik/etree"
)

// Write renders transactions as one camt.053 statement. Statement Id and
// account come from the first transaction; each transaction becomes an Ntry
// with the absolute amount, the credit/debit indicator, a reversal flag set
// for negative amounts, the value date and the description. An empty list
// produces an empty Document element.
func Write(w io.Writer, txs []models.Transaction) error {
	doc := BuildDocument(txs)
	if _, err := doc.WriteTo(w); err != nil {
		return &parsererror.IOError{Op: "write camt053", Err: err}
	}
	return nil
}

// BuildDocument returns the etree document written by Write.
func BuildDocument(txs []models.Transaction) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Document")
	root.CreateAttr("xmlns", Namespace)

	if len(txs) > 0 {
		stmt := root.CreateElement("BkToCstmrStmt").CreateElement("Stmt")
		stmt.CreateElement("Id").SetText(txs[0].Reference)
		stmt.CreateElement("Acct").CreateElement("Id").SetText(txs[0].Account)

		for _, tx := range txs {
			addEntry(stmt, tx)
		}
	}

	doc.Indent(2)
	return doc
}

func addEntry(stmt *etree.Element, tx models.Transaction) {
	ntry := stmt.CreateElement("Ntry")

	amt := ntry.CreateElement("Amt")
	amt.CreateAttr("Ccy", tx.Currency)
	amt.SetText(currencyutils.FormatFixed(tx.AbsAmount()))

	ntry.CreateElement("CdtDbtInd").SetText(tx.CreditDebitIndicator())

	reversal := "false"
	if tx.IsDebit() {
		reversal = "true"
	}
	ntry.CreateElement("RvslInd").SetText(reversal)
	ntry.CreateElement("ValDt").CreateElement("Dt").SetText(tx.ValueDate)
	ntry.CreateElement("AddtlNtryInf").SetText(tx.Description)
}
