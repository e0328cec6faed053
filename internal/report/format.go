// Package report builds the JSON report texts: the category-spending
// report and the keyword search. The category report is additionally
// persisted to a file sink and announced over AMQP when configured.
package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"finview/internal/core"
)

// recordJSON is a report entry, serialized under the export's native
// column labels with the operation date reformatted to
// "DD.MM.YYYY HH:MM:SS".
type recordJSON struct {
	OperationDate string  `json:"Дата операции"`
	PaymentDate   string  `json:"Дата платежа"`
	Card          string  `json:"Номер карты"`
	Amount        float64 `json:"Сумма платежа"`
	Category      string  `json:"Категория"`
	Description   string  `json:"Описание"`
}

func toRecords(txs []core.Transaction) []recordJSON {
	out := make([]recordJSON, 0, len(txs))
	for _, tx := range txs {
		out = append(out, recordJSON{
			OperationDate: core.FormatOperationDate(tx.OperationDate),
			PaymentDate:   tx.PaymentDate,
			Card:          tx.Card.RawKey(),
			Amount:        tx.Amount.Float64(),
			Category:      tx.Category,
			Description:   tx.Description,
		})
	}
	return out
}

// encodeJSON serializes with 4-space indentation and without escaping
// non-ASCII or HTML characters, so Cyrillic text stays literal.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// categoryWindow returns records of the category inside the trailing
// 3-calendar-month window, both bounds exclusive.
func categoryWindow(txs []core.Transaction, category string, ref time.Time) []core.Transaction {
	start := core.MinusMonths(ref, 3)
	return core.FilterByDateRange(core.FilterByCategory(txs, category), start, ref, false, false)
}

// FormatCategoryReport renders the category-spending report for the
// 3-month window ending at ref. No matches render as "[]", never null.
func FormatCategoryReport(txs []core.Transaction, category string, ref time.Time) (string, error) {
	return encodeJSON(toRecords(categoryWindow(txs, category, ref)))
}

// FormatSearchResults renders every record whose description or
// category matches the keyword. A keyword that is not a valid pattern
// is an ErrInvalidPattern.
func FormatSearchResults(txs []core.Transaction, keyword string) (string, error) {
	matched, err := core.FilterByKeyword(txs, keyword)
	if err != nil {
		return "", err
	}
	return encodeJSON(toRecords(matched))
}
