package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type direction int

const (
	directionAsIs direction = iota
	directionDebit
	directionCredit
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first failing step is kept and returned by Build.
type TransactionBuilder struct {
	tx        Transaction
	direction direction
	err       error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{tx: NewTransaction()}
}

// WithReference sets the statement or transaction reference
func (b *TransactionBuilder) WithReference(reference string) *TransactionBuilder {
	b.tx.Reference = reference
	return b
}

// WithAccount sets the account identifier
func (b *TransactionBuilder) WithAccount(account string) *TransactionBuilder {
	b.tx.Account = account
	return b
}

// WithDescription sets the narrative
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.tx.Description = description
	return b
}

// WithCurrency sets the currency; an empty code keeps UnknownCurrency
func (b *TransactionBuilder) WithCurrency(currency string) *TransactionBuilder {
	if currency != "" {
		b.tx.Currency = currency
	}
	return b
}

// WithAmount sets the amount and currency
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal, currency string) *TransactionBuilder {
	b.tx.Amount = amount
	return b.WithCurrency(currency)
}

// WithAmountFromString parses a period-decimal amount such as "100.50"
func (b *TransactionBuilder) WithAmountFromString(amountStr, currency string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		b.err = fmt.Errorf("invalid amount '%s': %w", amountStr, err)
		return b
	}
	return b.WithAmount(amount, currency)
}

// WithValueDate sets the value date, which must be YYYY-MM-DD
func (b *TransactionBuilder) WithValueDate(date string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if len(date) != len(EpochDate) {
		b.err = fmt.Errorf("invalid value date '%s': expected YYYY-MM-DD", date)
		return b
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		b.err = fmt.Errorf("invalid value date '%s': %w", date, err)
		return b
	}
	b.tx.ValueDate = date
	return b
}

// AsDebit makes the built amount negative regardless of the sign it was given
func (b *TransactionBuilder) AsDebit() *TransactionBuilder {
	b.direction = directionDebit
	return b
}

// AsCredit makes the built amount non-negative
func (b *TransactionBuilder) AsCredit() *TransactionBuilder {
	b.direction = directionCredit
	return b
}

// Build returns the transaction, or the first error recorded by a With step
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	tx := b.tx
	switch b.direction {
	case directionDebit:
		tx.Amount = tx.Amount.Abs().Neg()
	case directionCredit:
		tx.Amount = tx.Amount.Abs()
	}
	return tx, nil
}
