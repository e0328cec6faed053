package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finview/internal/core"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	doc := `{"user_currencies": ["USD", "EUR"], "user_stocks": ["AAPL", "GOOGL"]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Currencies) != 2 || s.Currencies[0] != "USD" {
		t.Fatalf("currencies: %v", s.Currencies)
	}
	if len(s.Stocks) != 2 || s.Stocks[1] != "GOOGL" {
		t.Fatalf("stocks: %v", s.Stocks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, core.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	if err := os.WriteFile(path, []byte(`{"user_currencies": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, core.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}
