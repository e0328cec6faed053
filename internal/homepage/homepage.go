// Package homepage assembles the summary view: greeting, per-card
// spend, top transactions and the currency/stock watchlist snapshot.
package homepage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finview/internal/clients/rates"
	"finview/internal/clients/stocks"
	"finview/internal/core"
	applog "finview/internal/log"
	"finview/internal/settings"
	"finview/internal/source"
)

// RateFetcher and PriceFetcher are the external collaborators the
// assembler depends on.
type (
	RateFetcher interface {
		Convert(ctx context.Context, currencies []string) ([]rates.Rate, error)
	}
	PriceFetcher interface {
		Prices(ctx context.Context, tickers []string) ([]stocks.Price, error)
	}
)

// TopTransaction is a homepage entry for one of the largest payments
// of the window, amount rendered as its absolute value.
type TopTransaction struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Response is the assembled homepage document.
type Response struct {
	Greeting        string             `json:"greeting"`
	Cards           []core.CardSummary `json:"cards"`
	TopTransactions []TopTransaction   `json:"top_transactions"`
	CurrencyRates   []rates.Rate       `json:"currency_rates"`
	StockPrices     []stocks.Price     `json:"stock_prices"`
}

// Assembler composes the record source, the aggregation logic and the
// external collaborators into one homepage response per request.
type Assembler struct {
	src          source.Reader
	rates        RateFetcher
	stocks       PriceFetcher
	settingsPath string
	now          func() time.Time
	logger       *applog.Logger
}

func NewAssembler(src source.Reader, rateFetcher RateFetcher, priceFetcher PriceFetcher, settingsPath string, logger *applog.Logger) *Assembler {
	return &Assembler{
		src:          src,
		rates:        rateFetcher,
		stocks:       priceFetcher,
		settingsPath: settingsPath,
		now:          time.Now,
		logger:       logger.WithComponent(applog.ComponentHomepage),
	}
}

// WithClock overrides the wall clock used for the greeting.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Build assembles the homepage for the month window ending at dateStr
// (current date when empty). The window spans the first day of the
// reference date's month through the reference date, both inclusive.
// Any failure other than a degraded currency entry aborts the whole
// response; nothing partial is emitted.
func (a *Assembler) Build(ctx context.Context, dateStr string) (string, error) {
	a.logger.Info("homepage requested", applog.FieldOperation, applog.OpHomepage, applog.FieldDate, dateStr)

	ref, err := core.ParseReportDate(dateStr)
	if err != nil {
		a.logger.Error("homepage failed", applog.FieldOperation, applog.OpHomepage, applog.FieldError, err.Error())
		return "", err
	}

	txs, err := a.src.ReadAll(ctx)
	if err != nil {
		a.logger.Error("homepage failed", applog.FieldOperation, applog.OpHomepage, applog.FieldError, err.Error())
		return "", err
	}
	window := core.FilterByDateRange(txs, core.FirstOfMonth(ref), ref, true, true)

	userSettings, err := settings.Load(a.settingsPath)
	if err != nil {
		a.logger.Error("homepage failed", applog.FieldOperation, applog.OpHomepage, applog.FieldError, err.Error())
		return "", err
	}

	currencyRates, err := a.rates.Convert(ctx, userSettings.Currencies)
	if err != nil {
		a.logger.Error("homepage failed", applog.FieldOperation, applog.OpHomepage, applog.FieldError, err.Error())
		return "", err
	}
	stockPrices, err := a.stocks.Prices(ctx, userSettings.Stocks)
	if err != nil {
		a.logger.Error("homepage failed", applog.FieldOperation, applog.OpHomepage, applog.FieldError, err.Error())
		return "", err
	}

	resp := Response{
		Greeting:        core.Greeting(a.now()),
		Cards:           core.AggregateByCard(window),
		TopTransactions: topTransactions(window, 5),
		CurrencyRates:   currencyRates,
		StockPrices:     stockPrices,
	}

	text, err := encodeCompact(resp)
	if err != nil {
		return "", fmt.Errorf("encode homepage: %w", err)
	}
	a.logger.Info("homepage assembled",
		applog.FieldOperation, applog.OpHomepage,
		applog.FieldRecords, len(window),
	)
	return text, nil
}

func topTransactions(txs []core.Transaction, n int) []TopTransaction {
	top := core.TopByAbsoluteAmount(txs, n)
	out := make([]TopTransaction, 0, len(top))
	for _, tx := range top {
		out = append(out, TopTransaction{
			Date:        tx.PaymentDate,
			Amount:      tx.Amount.Abs().String(),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return out
}

// encodeCompact serializes without indentation and with non-ASCII
// characters kept literal.
func encodeCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
