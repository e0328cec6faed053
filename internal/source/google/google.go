// Package google reads the transaction table from a Google Sheets
// spreadsheet that mirrors the bank export, one row per operation with
// the native column headers in the first row.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"finview/internal/core"
	applog "finview/internal/log"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Source struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *applog.Logger
}

// NewFromEnv creates a Sheets source from environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Optional: GOOGLE_SHEET_NAME
// (default "Operations"), and one of GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS for
// auth (falls back to ADC).
func NewFromEnv(ctx context.Context, logger *applog.Logger) (*Source, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Operations"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Source{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger.WithComponent(applog.ComponentSource),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var opts []goption.ClientOption
	switch {
	case inline != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(inline)))
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		opts = append(opts, goption.WithCredentialsJSON(data))
	}
	opts = append(opts, goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))

	return gsheet.NewService(ctx, opts...)
}

// ReadAll implements source.Reader.
func (s *Source) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", core.ErrSourceUnavailable, s.sheetName, err)
	}
	txs, err := s.parseValues(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", core.ErrSourceUnavailable, s.sheetName, err)
	}
	s.logger.Debug("loaded transactions", applog.FieldRecords, len(txs), "sheet", s.sheetName)
	return txs, nil
}

// parseValues converts a values matrix as returned by the Sheets API
// into transactions. The first row must carry the native headers;
// malformed rows are skipped with a warning.
func (s *Source) parseValues(values [][]interface{}) ([]core.Transaction, error) {
	if len(values) == 0 {
		return nil, errors.New("empty sheet")
	}
	headers := toStrings(values[0])
	idx := func(name string) int {
		for i, h := range headers {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
		return -1
	}
	required := []string{
		core.ColOperationDate, core.ColPaymentDate, core.ColCard,
		core.ColAmount, core.ColCategory, core.ColDescription,
	}
	pos := make(map[string]int, len(required))
	for _, name := range required {
		p := idx(name)
		if p == -1 {
			return nil, fmt.Errorf("missing column %q", name)
		}
		pos[name] = p
	}

	var out []core.Transaction
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		get := func(name string) string {
			if p := pos[name]; p < len(row) {
				return row[p]
			}
			return ""
		}
		opDate, err := core.ParseOperationDate(get(core.ColOperationDate))
		if err != nil {
			s.logger.Warn("skipping malformed row", "row", i+1, applog.FieldError, err.Error())
			continue
		}
		amount, err := core.ParseMoney(get(core.ColAmount))
		if err != nil {
			s.logger.Warn("skipping malformed row", "row", i+1, applog.FieldError, err.Error())
			continue
		}
		out = append(out, core.Transaction{
			OperationDate: opDate,
			PaymentDate:   get(core.ColPaymentDate),
			Card:          core.CardNumber(get(core.ColCard)),
			Amount:        amount,
			Category:      get(core.ColCategory),
			Description:   get(core.ColDescription),
		})
	}
	return out, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}
