// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is the canonical, output-agnostic representation of one
// statement movement. Every parser folds its records into a slice of
// Transaction and every serializer renders from one.
type Transaction struct {
	Reference   string          // Statement or transaction identifier
	Account     string          // Account identifier
	Amount      decimal.Decimal // Signed amount: negative is debit, positive is credit
	Currency    string          // ISO 4217-like code, UnknownCurrency when not derivable
	ValueDate   string          // YYYY-MM-DD, EpochDate when not derivable
	Description string          // Free-text narrative, may be empty
}

// NewTransaction returns a Transaction carrying the default currency and
// value date sentinels.
func NewTransaction() Transaction {
	return Transaction{
		Amount:    decimal.Zero,
		Currency:  UnknownCurrency,
		ValueDate: EpochDate,
	}
}

// IsDebit returns true if the amount is negative
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the amount is zero or positive
func (t Transaction) IsCredit() bool {
	return !t.Amount.IsNegative()
}

// CreditDebitIndicator returns the ISO 20022 indicator matching the amount sign.
func (t Transaction) CreditDebitIndicator() string {
	if t.IsDebit() {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

// AbsAmount returns the unsigned amount.
func (t Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}
