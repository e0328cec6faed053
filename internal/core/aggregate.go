package core

import "sort"

// CardSummary is the per-card aggregate for a filtered time window.
type CardSummary struct {
	LastDigits string `json:"last_digits"`
	TotalSpent string `json:"total_spent"`
	Cashback   string `json:"cashback"`
}

// AggregateByCard groups records by their masked card number and sums
// the absolute value of negative amounts per group. Positive amounts
// (refunds, incoming transfers) are excluded from the sum entirely,
// not subtracted. Groups with zero spend and records without a card
// number are dropped. Output is ordered by ascending grouping key.
func AggregateByCard(txs []Transaction) []CardSummary {
	totals := make(map[string]int64)
	for _, tx := range txs {
		if tx.Card.IsEmpty() {
			continue
		}
		if tx.Amount.Cents < 0 {
			totals[tx.Card.RawKey()] += -tx.Amount.Cents
		} else if _, ok := totals[tx.Card.RawKey()]; !ok {
			totals[tx.Card.RawKey()] = 0
		}
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]CardSummary, 0, len(keys))
	for _, k := range keys {
		spent := totals[k]
		if spent == 0 {
			continue
		}
		out = append(out, CardSummary{
			LastDigits: CardNumber(k).LastDigits(),
			TotalSpent: Money{Cents: spent}.String(),
			Cashback:   Money{Cents: cashbackCents(spent)}.String(),
		})
	}
	return out
}

// cashbackCents is total spend divided by 100, rounded half-up to a cent.
func cashbackCents(spentCents int64) int64 {
	return (spentCents + 50) / 100
}
