package core

import "testing"

func TestTopByAbsoluteAmount(t *testing.T) {
	got := TopByAbsoluteAmount(sampleTransactions(), 5)
	wantOrder := []string{"-300.00", "-200.00", "-150.00", "-100.00", "-50.00"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d records, want %d", len(got), len(wantOrder))
	}
	for i, w := range wantOrder {
		if got[i].Amount.String() != w {
			t.Fatalf("position %d: got %s, want %s", i, got[i].Amount.String(), w)
		}
	}
}

func TestTopByAbsoluteAmountStableTies(t *testing.T) {
	txs := []Transaction{
		{Description: "first", Amount: Money{Cents: -10000}},
		{Description: "second", Amount: Money{Cents: 10000}},
		{Description: "third", Amount: Money{Cents: -10000}},
	}
	got := TopByAbsoluteAmount(txs, 3)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Description != want {
			t.Fatalf("ties must keep input order: position %d is %q, want %q", i, got[i].Description, want)
		}
	}
}

func TestTopByAbsoluteAmountShortInput(t *testing.T) {
	if got := TopByAbsoluteAmount(nil, 5); len(got) != 0 {
		t.Fatalf("empty input should yield empty output, got %d", len(got))
	}
	txs := sampleTransactions()[:2]
	if got := TopByAbsoluteAmount(txs, 5); len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}
