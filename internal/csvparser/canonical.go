package csvparser

import "fjacquet/stmt-convert/internal/models"

// minFields is the number of leading columns a data row must carry.
const minFields = 3

// ToTransactions maps every data row (the header is skipped) with at least
// three fields to a Transaction: reference, account and description come from
// columns 0, 1 and 2. CSV carries no monetary semantics here, so amount,
// currency and value date keep their defaults. Shorter rows are skipped.
func ToTransactions(doc *Document) []models.Transaction {
	txs := make([]models.Transaction, 0)
	if doc == nil || len(doc.Rows) < 2 {
		return txs
	}
	for _, row := range doc.Rows[1:] {
		if len(row) < minFields {
			continue
		}
		tx := models.NewTransaction()
		tx.Reference = row[0]
		tx.Account = row[1]
		tx.Description = row[2]
		txs = append(txs, tx)
	}
	return txs
}
