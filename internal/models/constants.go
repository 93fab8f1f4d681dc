package models

// Defaults used when a source format does not carry the value
const (
	UnknownCurrency = "XXX"
	EpochDate       = "1970-01-01"
)

// Credit/debit indicators (ISO 20022 CdtDbtInd)
const (
	TransactionTypeDebit  = "DBIT"
	TransactionTypeCredit = "CRDT"
)

// Placeholder values emitted by the degraded CAMT.053 canonicalization
const (
	CAMTPlaceholderReference   = "CAMT_REF"
	CAMTPlaceholderAccount     = "CAMT_ACC"
	CAMTPlaceholderDescription = "Parsed from CAMT.053"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
