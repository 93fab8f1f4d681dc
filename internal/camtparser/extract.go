package camtparser

import (
	"strings"

	"fjacquet/stmt-convert/internal/dateutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"
	"fjacquet/stmt-convert/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// ExtractEntries reads every <Ntry> of every <Stmt> into a transaction.
// Reference and account come from the enclosing statement. The amount is
// negative when CdtDbtInd is DBIT or, without an indicator, when RvslInd is
// true. A document without statements yields an empty list.
func ExtractEntries(doc *Document) ([]models.Transaction, error) {
	if doc == nil {
		return nil, parsererror.NewInvalidFormat(formatName, "no document")
	}
	root, err := xmlutils.Parse(strings.NewReader(doc.Raw))
	if err != nil {
		invalid := parsererror.NewInvalidFormat(formatName, err.Error())
		invalid.ActualContentSnippet = parsererror.Snippet(strings.TrimSpace(doc.Raw), snippetLength)
		return nil, invalid
	}

	txs := make([]models.Transaction, 0)
	for _, stmt := range xmlutils.Nodes(root, xmlutils.PathStatement) {
		reference := xmlutils.Value(stmt, xmlutils.PathStatementID)
		account := xmlutils.Value(stmt, xmlutils.PathStatementAccount)

		for _, entry := range xmlutils.Nodes(stmt, xmlutils.PathEntry) {
			tx, err := entryToTransaction(entry, reference, account)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func entryToTransaction(entry *xmlpath.Node, reference, account string) (models.Transaction, error) {
	builder := models.NewTransactionBuilder().
		WithReference(reference).
		WithAccount(account).
		WithCurrency(xmlutils.Value(entry, xmlutils.PathCurrency)).
		WithDescription(xmlutils.FirstValue(entry, xmlutils.PathAddEntryInfo, xmlutils.PathRemittanceInfo, xmlutils.PathAddTxInfo))

	if raw := xmlutils.Value(entry, xmlutils.PathAmount); raw != "" {
		builder.WithAmountFromString(raw, "")
	}
	if isDebitEntry(entry) {
		builder.AsDebit()
	} else {
		builder.AsCredit()
	}
	if date := xmlutils.FirstValue(entry, xmlutils.PathValueDate, xmlutils.PathValueDateTime, xmlutils.PathBookingDate); date != "" {
		builder.WithValueDate(dateutils.NormalizeISO(date))
	}

	tx, err := builder.Build()
	if err != nil {
		return models.Transaction{}, parsererror.NewInvalidFormat(formatName, "invalid entry: "+err.Error())
	}
	return tx, nil
}

func isDebitEntry(entry *xmlpath.Node) bool {
	switch strings.ToUpper(xmlutils.Value(entry, xmlutils.PathCreditDebitInd)) {
	case models.TransactionTypeDebit:
		return true
	case models.TransactionTypeCredit:
		return false
	}
	return strings.EqualFold(xmlutils.Value(entry, xmlutils.PathReversalInd), "true")
}
