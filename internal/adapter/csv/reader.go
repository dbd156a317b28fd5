// Package csv adapts delimited transaction files to the engine's record
// stream and writes the final report back out as CSV.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/usecase"
)

// Reader streams domain records out of a transactions CSV file. Rows have
// the shape `type, client, tx[, amount]`; whitespace around fields is
// ignored and a header row is skipped. Rows that cannot be parsed yield
// an error wrapping usecase.ErrMalformedRecord and the reader moves on.
type Reader struct {
	csv  *stdcsv.Reader
	line int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := stdcsv.NewReader(r)
	// Dispute lifecycle rows carry no amount column.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next record, io.EOF at end of input, or a malformed
// record error for an unparseable row.
func (r *Reader) Next() (*domain.Record, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			var parseErr *stdcsv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: line %d: %v", usecase.ErrMalformedRecord, parseErr.Line, parseErr.Err)
			}
			return nil, err
		}
		r.line++

		if r.line == 1 && isHeader(row) {
			continue
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", usecase.ErrMalformedRecord, r.line, err)
		}
		return record, nil
	}
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (*domain.Record, error) {
	if len(row) < 3 || len(row) > 4 {
		return nil, fmt.Errorf("expected 3 or 4 fields, got %d", len(row))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("client id %q: %v", row[1], err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("tx id %q: %v", row[2], err)
	}

	record := &domain.Record{
		Kind:   domain.RecordKind(strings.ToLower(strings.TrimSpace(row[0]))),
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}

	// A trailing empty amount field (`dispute, 1, 1,`) means no amount.
	if len(row) == 4 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("amount %q: %v", row[3], err)
			}
			record.Amount = &amount
		}
	}

	return record, nil
}
