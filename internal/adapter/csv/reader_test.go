package csv

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/usecase"
)

func TestReader_Next(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 1.0",
		"deposit, 2, 2, 2.0",
		"deposit, 3, 3, 4.1234",
		"withdrawal, 3, 4, 1.5",
		"dispute, 1, 1",
		"resolve, 1, 1,",
		"chargeback, 2, 2",
	}, "\n")

	reader := NewReader(strings.NewReader(input))

	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	want := []domain.Record{
		{Kind: domain.RecordDeposit, Client: 1, Tx: 1, Amount: amount("1.0")},
		{Kind: domain.RecordDeposit, Client: 2, Tx: 2, Amount: amount("2.0")},
		{Kind: domain.RecordDeposit, Client: 3, Tx: 3, Amount: amount("4.1234")},
		{Kind: domain.RecordWithdrawal, Client: 3, Tx: 4, Amount: amount("1.5")},
		{Kind: domain.RecordDispute, Client: 1, Tx: 1},
		{Kind: domain.RecordResolve, Client: 1, Tx: 1},
		{Kind: domain.RecordChargeback, Client: 2, Tx: 2},
	}

	for i, expected := range want {
		record, err := reader.Next()
		if err != nil {
			t.Fatalf("record %d: unexpected error: %v", i, err)
		}
		if record.Kind != expected.Kind || record.Client != expected.Client || record.Tx != expected.Tx {
			t.Fatalf("record %d: got %+v, want %+v", i, record, expected)
		}
		switch {
		case expected.Amount == nil:
			if record.Amount != nil {
				t.Fatalf("record %d: unexpected amount %s", i, record.Amount)
			}
		case record.Amount == nil:
			t.Fatalf("record %d: missing amount", i)
		default:
			if !record.Amount.Equal(*expected.Amount) {
				t.Fatalf("record %d: amount %s, want %s", i, record.Amount, expected.Amount)
			}
		}
	}

	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReader_NextWithoutHeader(t *testing.T) {
	reader := NewReader(strings.NewReader("deposit, 5, 9, 3.25\n"))

	record, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Client != 5 || record.Tx != 9 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestReader_NextMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"too few fields", "deposit, 1"},
		{"too many fields", "deposit, 1, 2, 3.0, extra"},
		{"bad client id", "deposit, abc, 1, 1.0"},
		{"client id out of range", "deposit, 70000, 1, 1.0"},
		{"bad tx id", "deposit, 1, xyz, 1.0"},
		{"bad amount", "deposit, 1, 1, one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tt.row + "\ndeposit, 1, 2, 1.0\n"))

			_, err := reader.Next()
			if !errors.Is(err, usecase.ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}

			// The reader stays usable after a bad row.
			record, err := reader.Next()
			if err != nil {
				t.Fatalf("expected next row to parse, got %v", err)
			}
			if record.Tx != 2 {
				t.Fatalf("unexpected record after bad row: %+v", record)
			}
		})
	}
}

func TestReader_NextNormalizesKindCase(t *testing.T) {
	reader := NewReader(strings.NewReader("Deposit, 1, 1, 1.0\n"))

	record, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Kind != domain.RecordDeposit {
		t.Fatalf("expected kind normalized to deposit, got %q", record.Kind)
	}
}

func TestReader_NextEmptyInput(t *testing.T) {
	reader := NewReader(strings.NewReader(""))
	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
