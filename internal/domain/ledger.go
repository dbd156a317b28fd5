package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SnapshotPrecision is the number of fractional digits kept in exported
// balances. Rounding is half away from zero at that digit.
const SnapshotPrecision = 4

// Ledger owns every account seen during a run, keyed by client id.
// It is created once at startup, mutated by each incoming record, and
// read once at the end to produce the report.
type Ledger struct {
	accounts map[ClientID]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
	}
}

// GetOrCreate returns the account for client, creating an empty one on
// first reference. It never fails.
func (l *Ledger) GetOrCreate(client ClientID) *Account {
	account, ok := l.accounts[client]
	if !ok {
		account = NewAccount()
		l.accounts[client] = account
	}
	return account
}

// Size returns the number of known clients.
func (l *Ledger) Size() int {
	return len(l.accounts)
}

// ClientRecord is the exportable view of one account. All values are
// derived from the account at snapshot time, never stored.
type ClientRecord struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Snapshot projects every known account into a ClientRecord, sorted by
// client id so output is deterministic. Balances are rounded to
// SnapshotPrecision digits. No account is mutated.
func (l *Ledger) Snapshot() []ClientRecord {
	ids := make([]ClientID, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	records := make([]ClientRecord, 0, len(ids))
	for _, id := range ids {
		account := l.accounts[id]
		records = append(records, ClientRecord{
			Client:    id,
			Available: account.Available().Round(SnapshotPrecision),
			Held:      account.Held().Round(SnapshotPrecision),
			Total:     account.Total().Round(SnapshotPrecision),
			Locked:    account.Locked(),
		})
	}
	return records
}
