package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRunProcessRoundTrip(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "transactions.csv")
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 2.0",
		"deposit, 1, 2, 3.0",
		"dispute, 1, 1",
		"chargeback, 1, 1",
		"deposit, 2, 3, 1.2345",
		"withdrawal, 2, 4, 50.0", // rejected: insufficient funds
		"not a record at all",    // rejected: malformed
		"",
	}, "\n")
	if err := os.WriteFile(inputPath, []byte(input), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	outputPath := filepath.Join(dir, "report.csv")
	if err := runProcess(context.Background(), zerolog.Nop(), inputPath, outputPath); err != nil {
		t.Fatalf("runProcess: %v", err)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,3.0000,0.0000,3.0000,true\n" +
		"2,1.2345,0.0000,1.2345,false\n"
	if got := string(raw); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunProcessMissingInput(t *testing.T) {
	if err := runProcess(context.Background(), zerolog.Nop(), filepath.Join(t.TempDir(), "nope.csv"), ""); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestProcessCommandRequiresInputArg(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"process"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an argument error")
	}
}
