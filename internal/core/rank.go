package core

import "sort"

// TopByAbsoluteAmount returns the n records with the largest absolute
// payment amount, in descending order. The sort is stable, so records
// with equal absolute amounts keep their input order. Fewer than n
// records returns them all; empty input returns an empty slice.
func TopByAbsoluteAmount(txs []Transaction, n int) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Abs().Cents > out[j].Amount.Abs().Cents
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
