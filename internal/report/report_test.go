package report

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finview/internal/amqp"
	"finview/internal/core"
	applog "finview/internal/log"
	"finview/internal/source/memory"
)

func testLogger() *applog.Logger {
	return applog.New(slog.LevelError, "test")
}

func fixture() []core.Transaction {
	mk := func(op, payment, card, amount, category, description string) core.Transaction {
		d, err := core.ParseOperationDate(op)
		if err != nil {
			panic(err)
		}
		m, err := core.ParseMoney(amount)
		if err != nil {
			panic(err)
		}
		return core.Transaction{
			OperationDate: d,
			PaymentDate:   payment,
			Card:          core.CardNumber(card),
			Amount:        m,
			Category:      category,
			Description:   description,
		}
	}
	return []core.Transaction{
		mk("20.12.2021 12:00:00", "20.12.2021", "**1234", "-100", "Супермаркеты", "Лента"),
		mk("21.12.2021 18:30:00", "21.12.2021", "**1234", "-200", "Рестораны", "Пицца"),
		mk("22.12.2021 09:15:00", "22.12.2021", "**5678", "-50", "Супермаркеты", "Ашан"),
		mk("23.12.2021 20:00:00", "23.12.2021", "**5678", "-150", "Развлечения", "Кино"),
		mk("24.12.2021 11:45:00", "24.12.2021", "**5678", "-300", "Супермаркеты", "Магнит"),
	}
}

func refDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := core.ParseReportDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestFormatCategoryReport(t *testing.T) {
	text, err := FormatCategoryReport(fixture(), "Супермаркеты", refDate(t, "24.12.2021"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, text)
	}
	// The 24.12 record itself falls on the exclusive upper bound's day
	// and is outside the window; 20.12 and 22.12 match.
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2:\n%s", len(entries), text)
	}
	if got := entries[0]["Дата операции"]; got != "20.12.2021 12:00:00" {
		t.Fatalf("operation date not reformatted: %v", got)
	}
	if got := entries[1]["Описание"]; got != "Ашан" {
		t.Fatalf("second entry: %v", got)
	}

	// Non-ASCII characters stay literal.
	if strings.Contains(text, `\u`) {
		t.Fatalf("output must not escape non-ASCII:\n%s", text)
	}
	if !strings.Contains(text, "Супермаркеты") {
		t.Fatalf("expected literal Cyrillic in output:\n%s", text)
	}
}

func TestFormatCategoryReportEmpty(t *testing.T) {
	text, err := FormatCategoryReport(fixture(), "Несуществующая", refDate(t, "24.12.2021"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "[]" {
		t.Fatalf("empty report must be [], got %q", text)
	}
}

func TestFormatSearchResults(t *testing.T) {
	text, err := FormatSearchResults(fixture(), "Ашан")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	if text, _ := FormatSearchResults(fixture(), "Неизвестное"); text != "[]" {
		t.Fatalf("no matches must render as [], got %q", text)
	}

	if _, err := FormatSearchResults(fixture(), "(["); !errors.Is(err, core.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

type failingSink struct{}

func (failingSink) Persist(string) error { return errors.New("disk full") }
func (failingSink) Path() string         { return "reports.json" }

type recordingPublisher struct {
	msgs []*amqp.ReportGeneratedMessage
	err  error
}

func (p *recordingPublisher) PublishReportGenerated(_ context.Context, msg *amqp.ReportGeneratedMessage) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func TestServiceSpendingByCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	pub := &recordingPublisher{}
	svc := NewService(memory.New(fixture()...), NewFileSink(path), pub, testLogger())

	text, err := svc.SpendingByCategory(context.Background(), "Супермаркеты", "24.12.2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	persisted, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if string(persisted) != text {
		t.Fatalf("persisted text differs from returned text")
	}

	if len(pub.msgs) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.msgs))
	}
	msg := pub.msgs[0]
	if msg.Category != "Супермаркеты" || msg.Records != 2 || msg.ReferenceDate != "24.12.2021" {
		t.Fatalf("event mismatch: %+v", msg)
	}
}

func TestServiceSinkFailureStillReturnsText(t *testing.T) {
	svc := NewService(memory.New(fixture()...), failingSink{}, nil, testLogger())
	text, err := svc.SpendingByCategory(context.Background(), "Супермаркеты", "24.12.2021")
	if err == nil {
		t.Fatalf("sink failure must surface as an error")
	}
	if text == "" {
		t.Fatalf("formatted text must be returned despite the sink failure")
	}
}

func TestServicePublishFailureIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewService(memory.New(fixture()...), NewFileSink(path), pub, testLogger())
	if _, err := svc.SpendingByCategory(context.Background(), "Супермаркеты", "24.12.2021"); err != nil {
		t.Fatalf("publish failure must not fail the report: %v", err)
	}
}

func TestServiceBadDate(t *testing.T) {
	svc := NewService(memory.New(fixture()...), failingSink{}, nil, testLogger())
	if _, err := svc.SpendingByCategory(context.Background(), "Супермаркеты", "24-12-2021"); !errors.Is(err, core.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestServiceSearch(t *testing.T) {
	svc := NewService(memory.New(fixture()...), failingSink{}, nil, testLogger())
	text, err := svc.Search(context.Background(), "пицца")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
}
