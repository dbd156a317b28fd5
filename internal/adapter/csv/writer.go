package csv

import (
	stdcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/payengine/internal/domain"
)

// Writer emits the final client report as CSV. The header is written
// lazily with the first record, so an empty ledger produces no output.
type Writer struct {
	csv         *stdcsv.Writer
	wroteHeader bool
}

// NewWriter creates a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: stdcsv.NewWriter(w)}
}

// Write appends one client row.
func (w *Writer) Write(record domain.ClientRecord) error {
	if !w.wroteHeader {
		if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	return w.csv.Write([]string{
		strconv.FormatUint(uint64(record.Client), 10),
		record.Available.String(),
		record.Held.String(),
		record.Total.String(),
		strconv.FormatBool(record.Locked),
	})
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
