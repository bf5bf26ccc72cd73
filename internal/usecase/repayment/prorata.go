package repayment

import (
	"math/bits"

	investmentDomain "bytebonds-backend/internal/domain/investment"
)

type obligation struct {
	investor string
	amount   uint64
}

// proRata splits total across investors in proportion to their contributions
// (which sum to principal). Shares are floored; the final investor absorbs
// the remainder so the obligations add up to total exactly. Contributions by
// the same investor are aggregated first, in order of first appearance.
func proRata(total, principal uint64, invs []investmentDomain.Investment) []obligation {
	order := make([]string, 0, len(invs))
	contrib := make(map[string]uint64, len(invs))
	for _, inv := range invs {
		if _, seen := contrib[inv.Investor]; !seen {
			order = append(order, inv.Investor)
		}
		contrib[inv.Investor] += inv.Amount
	}

	out := make([]obligation, 0, len(order))
	var assigned uint64
	for i, investor := range order {
		var share uint64
		if i == len(order)-1 {
			share = total - assigned
		} else {
			share = mulDiv(total, contrib[investor], principal)
		}
		assigned += share
		out = append(out, obligation{investor: investor, amount: share})
	}
	return out
}

// mulDiv computes floor(a*b/den) with a 128-bit intermediate. The quotient
// always fits here because b never exceeds den.
func mulDiv(a, b, den uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, den)
	return q
}
