package domain

import "github.com/shopspring/decimal"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a deposit or withdrawal within a client's history.
type TxID uint32

// Account is the transaction state machine for one client. Every operation
// either applies fully or leaves the account untouched and returns an error.
// Once locked by a chargeback, an account rejects new deposits and
// withdrawals forever; the dispute lifecycle stays available.
type Account struct {
	total     decimal.Decimal
	held      decimal.Decimal
	locked    bool
	movements map[TxID]Movement
	disputed  map[TxID]struct{}
}

// NewAccount creates an empty, unlocked account.
func NewAccount() *Account {
	return &Account{
		movements: make(map[TxID]Movement),
		disputed:  make(map[TxID]struct{}),
	}
}

// Deposit credits amount to the total balance and records the movement.
func (a *Account) Deposit(tx TxID, amount decimal.Decimal) error {
	if err := a.validateNewMovement(tx, amount); err != nil {
		return err
	}

	a.total = a.total.Add(amount)
	a.movements[tx] = NewDeposit(amount)
	return nil
}

// Withdraw debits amount from the total balance if the available balance
// covers it. The movement is recorded without its amount, so a later
// dispute of this tx holds zero instead of handing the funds back.
func (a *Account) Withdraw(tx TxID, amount decimal.Decimal) error {
	if err := a.validateNewMovement(tx, amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Available()) {
		return ErrInsufficientFunds
	}

	a.total = a.total.Sub(amount)
	a.movements[tx] = NewWithdrawal()
	return nil
}

// Dispute freezes the movement's amount pending resolution. Disputing a
// withdrawal holds zero but still marks the tx, which blocks a second
// dispute and enables a later resolve or chargeback. The lock is not
// checked: disputes may proceed on a locked account.
func (a *Account) Dispute(tx TxID) error {
	movement, ok := a.movements[tx]
	if !ok {
		return ErrUnknownTransaction
	}
	if _, open := a.disputed[tx]; open {
		return ErrAlreadyDisputed
	}

	a.held = a.held.Add(movement.Amount())
	a.disputed[tx] = struct{}{}
	return nil
}

// Resolve releases the held funds back to available and clears the
// dispute, so the tx can be disputed again later.
func (a *Account) Resolve(tx TxID) error {
	movement, ok := a.movements[tx]
	if !ok {
		return ErrUnknownTransaction
	}
	if _, open := a.disputed[tx]; !open {
		return ErrNotDisputed
	}

	a.held = a.held.Sub(movement.Amount())
	delete(a.disputed, tx)
	return nil
}

// Chargeback removes the disputed funds from the account and locks it.
// Unlike Resolve, the tx stays in the disputed set; the account is locked
// from here on, so the charged-back tx remains marked forever. Flagged
// with product as possibly unintended, preserved until they say otherwise.
func (a *Account) Chargeback(tx TxID) error {
	movement, ok := a.movements[tx]
	if !ok {
		return ErrUnknownTransaction
	}
	if _, open := a.disputed[tx]; !open {
		return ErrNotDisputed
	}

	a.held = a.held.Sub(movement.Amount())
	a.total = a.total.Sub(movement.Amount())
	a.locked = true
	return nil
}

// validateNewMovement runs the shared deposit/withdraw preconditions.
// Order fixes error precedence: amount, duplicate tx, lock.
func (a *Account) validateNewMovement(tx TxID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if _, exists := a.movements[tx]; exists {
		return ErrDuplicateTransaction
	}
	if a.locked {
		return ErrAccountLocked
	}
	return nil
}

// Total returns the total balance: settled deposits minus settled
// withdrawals minus chargebacks.
func (a *Account) Total() decimal.Decimal {
	return a.total
}

// Held returns the funds currently frozen by open disputes.
func (a *Account) Held() decimal.Decimal {
	return a.held
}

// Available returns the funds the client may withdraw.
func (a *Account) Available() decimal.Decimal {
	return a.total.Sub(a.held)
}

// Locked reports whether a chargeback has locked the account.
func (a *Account) Locked() bool {
	return a.locked
}

// HasMovement reports whether tx is on record.
func (a *Account) HasMovement(tx TxID) bool {
	_, ok := a.movements[tx]
	return ok
}

// IsDisputed reports whether tx is currently under dispute.
func (a *Account) IsDisputed(tx TxID) bool {
	_, ok := a.disputed[tx]
	return ok
}
