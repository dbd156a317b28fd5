package domain

import "errors"

var (
	// Deposit/withdraw errors
	ErrInvalidAmount        = errors.New("amount must not be negative")
	ErrDuplicateTransaction = errors.New("transaction id already recorded for this client")
	ErrAccountLocked        = errors.New("account is locked")
	ErrInsufficientFunds    = errors.New("insufficient available funds")

	// Dispute lifecycle errors
	ErrUnknownTransaction = errors.New("no transaction recorded with this id")
	ErrAlreadyDisputed    = errors.New("transaction is already under dispute")
	ErrNotDisputed        = errors.New("transaction is not under dispute")

	// Record validation errors
	ErrMissingAmount     = errors.New("record requires an amount")
	ErrUnexpectedAmount  = errors.New("record must not carry an amount")
	ErrUnknownRecordKind = errors.New("unknown record kind")
)
