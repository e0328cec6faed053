package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Column labels of the bank export. Every record source (CSV, SQLite,
// Google Sheets) and the report serializer use the same native labels.
const (
	ColOperationDate = "Дата операции"
	ColPaymentDate   = "Дата платежа"
	ColCard          = "Номер карты"
	ColAmount        = "Сумма платежа"
	ColCategory      = "Категория"
	ColDescription   = "Описание"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidPattern    = errors.New("invalid search pattern")
	ErrSourceUnavailable = errors.New("record source unavailable")
	ErrConfig            = errors.New("invalid settings")
	ErrExternalAPI       = errors.New("external API error")
)

var maskRun = regexp.MustCompile(`\*+`)

// CardNumber is a masked card identifier as it appears in the export,
// e.g. "**1234". The masked form is the grouping key; only display
// output strips the mask.
type CardNumber string

// RawKey returns the masked string unchanged, mask characters included.
func (c CardNumber) RawKey() string { return string(c) }

// LastDigits returns the card number with every run of mask characters
// removed, leaving the visible digits.
func (c CardNumber) LastDigits() string {
	return maskRun.ReplaceAllString(string(c), "")
}

// IsEmpty reports whether the card field was blank in the export.
func (c CardNumber) IsEmpty() bool { return strings.TrimSpace(string(c)) == "" }

// Transaction is a single row of the bank export. Records are immutable
// once read; the full set is re-read from the source on every operation.
type Transaction struct {
	OperationDate time.Time
	PaymentDate   string
	Card          CardNumber
	Amount        Money // negative = spend
	Category      string
	Description   string
}
