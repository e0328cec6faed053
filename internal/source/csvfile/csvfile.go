// Package csvfile reads the transaction table from a CSV export of the
// bank's native format.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"finview/internal/core"
	applog "finview/internal/log"
)

// Source reads a CSV file with the native column headers. The file is
// opened and parsed on every ReadAll call.
type Source struct {
	path   string
	logger *applog.Logger
}

func New(path string, logger *applog.Logger) *Source {
	return &Source{path: path, logger: logger.WithComponent(applog.ComponentSource)}
}

// ReadAll implements source.Reader. A missing or unreadable file is an
// ErrSourceUnavailable; rows with malformed dates or amounts are
// skipped with a warning rather than failing the whole read.
func (s *Source) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrSourceUnavailable, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", core.ErrSourceUnavailable, s.path, err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrSourceUnavailable, s.path, err)
	}

	var out []core.Transaction
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", core.ErrSourceUnavailable, s.path, err)
		}
		line++
		tx, err := cols.parseRow(row)
		if err != nil {
			s.logger.Warn("skipping malformed row", "line", line, applog.FieldError, err.Error())
			continue
		}
		out = append(out, tx)
	}

	s.logger.Debug("loaded transactions", applog.FieldRecords, len(out), applog.FieldPath, s.path)
	return out, nil
}

// columns maps the required header labels to their positions.
type columns struct {
	operationDate int
	paymentDate   int
	card          int
	amount        int
	category      int
	description   int
}

func columnIndex(header []string) (columns, error) {
	idx := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	c := columns{
		operationDate: idx(core.ColOperationDate),
		paymentDate:   idx(core.ColPaymentDate),
		card:          idx(core.ColCard),
		amount:        idx(core.ColAmount),
		category:      idx(core.ColCategory),
		description:   idx(core.ColDescription),
	}
	for name, pos := range map[string]int{
		core.ColOperationDate: c.operationDate,
		core.ColPaymentDate:   c.paymentDate,
		core.ColCard:          c.card,
		core.ColAmount:        c.amount,
		core.ColCategory:      c.category,
		core.ColDescription:   c.description,
	} {
		if pos == -1 {
			return columns{}, fmt.Errorf("missing column %q", name)
		}
	}
	return c, nil
}

func (c columns) parseRow(row []string) (core.Transaction, error) {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	opDate, err := core.ParseOperationDate(get(c.operationDate))
	if err != nil {
		return core.Transaction{}, err
	}
	amount, err := core.ParseMoney(get(c.amount))
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		OperationDate: opDate,
		PaymentDate:   get(c.paymentDate),
		Card:          core.CardNumber(get(c.card)),
		Amount:        amount,
		Category:      get(c.category),
		Description:   get(c.description),
	}, nil
}
