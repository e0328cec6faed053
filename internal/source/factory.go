package source

import (
	"context"
	"fmt"

	"finview/internal/config"
	applog "finview/internal/log"
	"finview/internal/source/csvfile"
	"finview/internal/source/google"
	"finview/internal/source/memory"
	"finview/internal/source/sqlite"
)

// Result holds an opened record source and its cleanup, if any.
type Result struct {
	Reader  Reader
	Cleanup func() error
}

// Open selects and initializes the record source named by the
// configuration.
func Open(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*Result, error) {
	switch cfg.DataBackend {
	case "csv":
		return &Result{Reader: csvfile.New(cfg.CSVPath, logger)}, nil
	case "sqlite":
		repo, err := sqlite.New(cfg.SQLiteDBPath, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite source: %w", err)
		}
		return &Result{Reader: repo, Cleanup: repo.Close}, nil
	case "sheets":
		src, err := google.NewFromEnv(ctx, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets source: %w", err)
		}
		return &Result{Reader: src}, nil
	case "memory":
		return &Result{Reader: memory.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
	}
}
