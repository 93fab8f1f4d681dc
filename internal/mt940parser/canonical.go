package mt940parser

import (
	"regexp"

	"fjacquet/stmt-convert/internal/currencyutils"
	"fjacquet/stmt-convert/internal/dateutils"
	"fjacquet/stmt-convert/internal/models"
)

// amountPattern matches the indicator and amount of a movement line, for
// example "2301050105DR100,50NMSC": a digit run, C or D, an optional R and a
// comma-decimal amount.
var amountPattern = regexp.MustCompile(`\d+(C|D)R?(\d+,\d*)`)

// foldState is the accumulator carried across records.
type foldState struct {
	reference    string
	account      string
	transactions []models.Transaction
}

// ToTransactions folds the records into transactions. Every 61 record opens a
// new transaction carrying the reference (20) and account (25) seen so far; an
// 86 record sets the description of the latest transaction and is dropped
// when no movement precedes it.
func ToTransactions(doc *Document) []models.Transaction {
	state := foldState{transactions: make([]models.Transaction, 0)}
	if doc == nil {
		return state.transactions
	}
	for _, rec := range doc.Records {
		state = state.apply(rec)
	}
	return state.transactions
}

func (s foldState) apply(rec Record) foldState {
	switch rec.Tag {
	case TagReference:
		s.reference = rec.Value
	case TagAccount:
		s.account = rec.Value
	case TagMovement:
		s.transactions = append(s.transactions, movement(rec.Value, s.reference, s.account))
	case TagNarrative:
		if n := len(s.transactions); n > 0 {
			s.transactions[n-1].Description = rec.Value
		}
	}
	return s
}

// movement builds the transaction for one 61 value.
func movement(value, reference, account string) models.Transaction {
	tx := models.NewTransaction()
	tx.Reference = reference
	tx.Account = account
	tx.ValueDate, _ = dateutils.FromMT940(value)

	m := amountPattern.FindStringSubmatch(value)
	if m == nil {
		return tx
	}
	amount, err := currencyutils.ParseCommaDecimal(m[2])
	if err != nil {
		return tx
	}
	if m[1] == "D" {
		amount = amount.Neg()
	}
	tx.Amount = amount
	return tx
}
