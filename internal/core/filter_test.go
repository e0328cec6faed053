package core

import (
	"errors"
	"testing"
	"time"
)

func TestFilterByDateRangeInclusive(t *testing.T) {
	txs := sampleTransactions()
	// Homepage-style window: both bounds inclusive.
	got := FilterByDateRange(txs, date(2021, time.December, 21), date(2021, time.December, 24), true, true)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for _, tx := range got {
		if tx.OperationDate.Before(date(2021, time.December, 21)) {
			t.Fatalf("record before window: %v", tx.OperationDate)
		}
	}
}

func TestFilterByDateRangeExclusive(t *testing.T) {
	txs := sampleTransactions()
	// Report-style window: both bounds exclusive. The record exactly at
	// the upper bound must be dropped.
	start := MinusMonths(date(2021, time.December, 24), 3)
	got := FilterByDateRange(txs, start, date(2021, time.December, 24), false, false)
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4 (the 24.12 record falls outside)", len(got))
	}
	// A record exactly at a bound is dropped on both ends.
	atBound := []Transaction{
		{OperationDate: start, Amount: Money{Cents: -100}},
		{OperationDate: date(2021, time.December, 24), Amount: Money{Cents: -100}},
	}
	if got := FilterByDateRange(atBound, start, date(2021, time.December, 24), false, false); len(got) != 0 {
		t.Fatalf("records at exclusive bounds should be dropped, got %d", len(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(sampleTransactions(), "Супермаркеты")
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got := FilterByCategory(sampleTransactions(), "супермаркеты"); len(got) != 0 {
		t.Fatalf("category match must be exact, got %d records", len(got))
	}
}

func TestFilterByKeyword(t *testing.T) {
	got, err := FilterByKeyword(sampleTransactions(), "Ашан")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Ашан" {
		t.Fatalf("expected exactly the one Ашан record, got %v", got)
	}

	// Case-insensitive, and matches the category field too.
	got, err = FilterByKeyword(sampleTransactions(), "рестораны")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	got, err = FilterByKeyword(sampleTransactions(), "Неизвестное")
	if err != nil {
		t.Fatalf("empty match set is not an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}

	if _, err := FilterByKeyword(sampleTransactions(), "(["); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}
