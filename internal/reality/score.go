package reality

import "math"

// Breakdown carries the four factor scores behind a total.
type Breakdown struct {
	LTV       int `json:"ltv_score"`
	DSR       int `json:"dsr_score"`
	CashGap   int `json:"cash_gap_score"`
	Stability int `json:"stability_score"`
}

// Total sums the four factors.
func (b Breakdown) Total() int {
	return b.LTV + b.DSR + b.CashGap + b.Stability
}

// Grade maps a total score to its letter grade.
func Grade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	case score >= 20:
		return "D"
	default:
		return "F"
	}
}

// scoreLTV rewards leverage headroom: the closer the LTV ceiling comes to
// covering the full price, the more of the cap is earned.
func scoreLTV(maxLoanLTV, price int64, cap int) int {
	var utilization float64
	if price > 0 {
		utilization = float64(maxLoanLTV) / float64(price) * 100
	}
	return min(cap, int(utilization*float64(cap)/100))
}

// scoreDSR rewards headroom under the regulatory DSR ceiling, one point per
// percentage point up to the cap.
func scoreDSR(dsrPct, limitPct float64, cap int) int {
	headroom := math.Max(0, limitPct-dsrPct)
	return min(cap, int(headroom))
}

// scoreCashGap rewards the buyer's ability to cover the equity portion. Full
// coverage earns the cap; otherwise points scale with the covered fraction.
func scoreCashGap(cashGap, cashAvailable, requiredCash int64, cap int) int {
	if cashGap == 0 {
		return cap
	}
	coverage := 1.0
	if requiredCash > 0 {
		coverage = float64(cashAvailable) / float64(requiredCash)
	}
	return min(cap, int(coverage*float64(cap)))
}

// scoreStability rewards a price the income can plausibly carry. Up to five
// years of gross income is full marks; each year beyond that costs three
// points.
func scoreStability(price, annualIncome int64, cap int) int {
	ratio := 20.0
	if annualIncome > 0 {
		ratio = float64(price) / float64(annualIncome)
	}
	switch {
	case ratio <= 5:
		return cap
	case ratio <= 10:
		return int(float64(cap) - (ratio-5)*3)
	default:
		return max(0, int(float64(cap)-(ratio-5)*3))
	}
}
