package usecase

import (
	"github.com/iho/payengine/internal/domain"
)

// RecordSource yields parsed input records in their original order.
// Next returns io.EOF once the input is exhausted. A row that cannot be
// parsed yields an error wrapping ErrMalformedRecord; the source remains
// usable afterwards. Any other error means the input itself is broken.
type RecordSource interface {
	Next() (*domain.Record, error)
}

// SnapshotWriter receives the final per-client report, one record at a
// time, followed by a single Flush.
type SnapshotWriter interface {
	Write(record domain.ClientRecord) error
	Flush() error
}
