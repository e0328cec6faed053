package core

import (
	"fmt"
	"regexp"
	"time"
)

// FilterByDateRange keeps records whose operation timestamp falls
// between start and end. Each bound is inclusive or exclusive per the
// corresponding flag: the homepage window is inclusive on both ends,
// the category report window exclusive on both.
func FilterByDateRange(txs []Transaction, start, end time.Time, incStart, incEnd bool) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		d := tx.OperationDate
		if d.Before(start) || (!incStart && d.Equal(start)) {
			continue
		}
		if d.After(end) || (!incEnd && d.Equal(end)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterByCategory keeps records whose category matches exactly.
func FilterByCategory(txs []Transaction, category string) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Category == category {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByKeyword keeps records whose description or category matches
// the keyword, treated as a case-insensitive regular expression. An
// empty result is valid; a keyword that does not compile is an
// ErrInvalidPattern.
func FilterByKeyword(txs []Transaction, keyword string) ([]Transaction, error) {
	re, err := regexp.Compile("(?i)" + keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, keyword, err)
	}
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if re.MatchString(tx.Description) || re.MatchString(tx.Category) {
			out = append(out, tx)
		}
	}
	return out, nil
}
