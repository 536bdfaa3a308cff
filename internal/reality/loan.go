package reality

import "math"

// maxLoanByLTV returns the LTV-capped principal in won.
func maxLoanByLTV(price int64, ltvPct int) int64 {
	return price * int64(ltvPct) / 100
}

// maxLoanByDSR approximates the largest principal whose repayment fits under
// the DSR ceiling. It converts the buyer's remaining monthly headroom into a
// principal with a flat repayment factor per won, not a true inversion of the
// annuity formula.
func maxLoanByDSR(annualIncome, existingDebt int64, cfg Config) int64 {
	headroom := float64(annualIncome)/12*(cfg.DSRLimitPct/100) - float64(existingDebt)
	if headroom <= 0 {
		return 0
	}
	return int64(headroom / cfg.DSRProxyRate)
}

// MonthlyPayment returns the fixed monthly payment for an amortizing loan,
// truncated to whole won. Non-positive principals or terms cost nothing.
func MonthlyPayment(principal int64, annualRatePct float64, years int) int64 {
	if principal <= 0 {
		return 0
	}
	months := years * 12
	if months <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate == 0 {
		return int64(float64(principal) / float64(months))
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	payment := float64(principal) * (monthlyRate * growth) / (growth - 1)
	return int64(payment)
}

// DSRPercentage returns total monthly debt service as a share of monthly
// income, clamped to 100. Zero income pins the ratio to 100 so downstream
// scoring treats the buyer as fully loaded instead of dividing by zero.
func DSRPercentage(annualIncome, monthlyDebt int64) float64 {
	monthlyIncome := float64(annualIncome) / 12
	if monthlyIncome == 0 {
		return 100
	}
	dsr := float64(monthlyDebt) / monthlyIncome * 100
	return math.Min(dsr, 100)
}
