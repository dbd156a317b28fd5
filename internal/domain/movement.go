package domain

import "github.com/shopspring/decimal"

// MovementKind tags a recorded movement as a deposit or a withdrawal.
type MovementKind int

const (
	MovementDeposit MovementKind = iota
	MovementWithdrawal
)

// Movement is a settled deposit or withdrawal in an account's history.
// A withdrawal deliberately carries no amount: disputing it holds zero,
// so a dispute against a past withdrawal can never inflate the balance.
type Movement struct {
	kind   MovementKind
	amount decimal.Decimal
}

// NewDeposit records a deposit of amount.
func NewDeposit(amount decimal.Decimal) Movement {
	return Movement{kind: MovementDeposit, amount: amount}
}

// NewWithdrawal records a withdrawal. The withdrawn amount is not retained.
func NewWithdrawal() Movement {
	return Movement{kind: MovementWithdrawal}
}

// Kind returns the movement tag.
func (m Movement) Kind() MovementKind {
	return m.kind
}

// Amount returns the funds a dispute against this movement holds:
// the original amount for a deposit, zero for a withdrawal.
func (m Movement) Amount() decimal.Decimal {
	if m.kind == MovementWithdrawal {
		return decimal.Zero
	}
	return m.amount
}
