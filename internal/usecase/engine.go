package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// ErrMalformedRecord marks source errors that invalidate a single row
// only. The engine skips the row and keeps processing.
var ErrMalformedRecord = errors.New("malformed record")

// Engine applies a stream of records to a ledger, one at a time in input
// order. Rejected records are logged and counted; they never abort the
// run and never partially mutate an account.
type Engine struct {
	ledger  *domain.Ledger
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewEngine creates an Engine. metrics may be nil.
func NewEngine(ledger *domain.Ledger, log zerolog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		ledger:  ledger,
		log:     log,
		metrics: m,
	}
}

// Report summarizes one processing run.
type Report struct {
	RunID     string
	Processed int
	Applied   int
	Rejected  int
}

// Run drains source into the ledger. It returns a non-nil Report even on
// failure, so callers can log how far the run got. Fatal errors are
// limited to a broken source and context cancellation.
func (e *Engine) Run(ctx context.Context, source RecordSource) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: ulid.Make().String()}
	log := e.log.With().Str("run_id", report.RunID).Logger()

	for {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		record, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, ErrMalformedRecord) {
			report.Processed++
			report.Rejected++
			log.Warn().Err(err).Msg("skipping malformed record")
			if e.metrics != nil {
				e.metrics.RecordsProcessed.Inc()
			}
			e.countRejection("malformed")
			continue
		}
		if err != nil {
			return report, err
		}

		report.Processed++
		if e.metrics != nil {
			e.metrics.RecordsProcessed.Inc()
		}

		if err := e.apply(record); err != nil {
			report.Rejected++
			log.Warn().Err(err).
				Uint16("client", uint16(record.Client)).
				Uint32("tx", uint32(record.Tx)).
				Str("operation", string(record.Kind)).
				Msg("record rejected")
			e.countRejection(rejectReason(err))
			continue
		}

		report.Applied++
		if e.metrics != nil {
			e.metrics.OperationsApplied.WithLabelValues(string(record.Kind)).Inc()
		}
	}

	if e.metrics != nil {
		e.metrics.RunDuration.Observe(time.Since(start).Seconds())
	}

	log.Debug().
		Int("processed", report.Processed).
		Int("applied", report.Applied).
		Int("rejected", report.Rejected).
		Msg("source drained")

	return report, nil
}

// WriteSnapshot streams the final ledger state to w.
func (e *Engine) WriteSnapshot(w SnapshotWriter) error {
	for _, record := range e.ledger.Snapshot() {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (e *Engine) apply(record *domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	before := e.ledger.Size()
	account := e.ledger.GetOrCreate(record.Client)
	if e.metrics != nil && e.ledger.Size() > before {
		e.metrics.AccountsCreated.Inc()
	}

	switch record.Kind {
	case domain.RecordDeposit:
		return account.Deposit(record.Tx, *record.Amount)
	case domain.RecordWithdrawal:
		return account.Withdraw(record.Tx, *record.Amount)
	case domain.RecordDispute:
		return account.Dispute(record.Tx)
	case domain.RecordResolve:
		return account.Resolve(record.Tx)
	case domain.RecordChargeback:
		err := account.Chargeback(record.Tx)
		if err == nil && e.metrics != nil {
			e.metrics.AccountsLocked.Inc()
		}
		return err
	default:
		// Validate rejects unknown kinds; kept for exhaustiveness.
		return domain.ErrUnknownRecordKind
	}
}

func (e *Engine) countRejection(reason string) {
	if e.metrics != nil {
		e.metrics.RecordsRejected.WithLabelValues(reason).Inc()
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrUnknownTransaction):
		return "unknown_transaction"
	case errors.Is(err, domain.ErrAlreadyDisputed):
		return "already_disputed"
	case errors.Is(err, domain.ErrNotDisputed):
		return "not_disputed"
	case errors.Is(err, domain.ErrMissingAmount),
		errors.Is(err, domain.ErrUnexpectedAmount),
		errors.Is(err, domain.ErrUnknownRecordKind):
		return "invalid_record"
	default:
		return "other"
	}
}
