package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecordKind is the type column of an input record.
type RecordKind string

const (
	RecordDeposit    RecordKind = "deposit"
	RecordWithdrawal RecordKind = "withdrawal"
	RecordDispute    RecordKind = "dispute"
	RecordResolve    RecordKind = "resolve"
	RecordChargeback RecordKind = "chargeback"
)

// Record is one parsed input row, not yet applied to an account.
// Amount is present on deposits and withdrawals only.
type Record struct {
	Kind   RecordKind
	Client ClientID
	Tx     TxID
	Amount *decimal.Decimal
}

// Validate enforces the amount-presence rule before a record reaches an
// account: deposits and withdrawals must carry an amount, dispute
// lifecycle records must not.
func (r *Record) Validate() error {
	switch r.Kind {
	case RecordDeposit, RecordWithdrawal:
		if r.Amount == nil {
			return fmt.Errorf("%w: %s", ErrMissingAmount, r.Kind)
		}
	case RecordDispute, RecordResolve, RecordChargeback:
		if r.Amount != nil {
			return fmt.Errorf("%w: %s", ErrUnexpectedAmount, r.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecordKind, r.Kind)
	}
	return nil
}
