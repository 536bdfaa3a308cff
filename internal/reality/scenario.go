package reality

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Recommendation values for a buy-now-vs-wait comparison.
const (
	RecommendBuyNow = "buy_now"
	RecommendWait   = "wait"
)

// CompareOptions sets the projection assumptions for a buy-now-vs-wait run.
// Rates are annual percentages applied compound over the wait.
type CompareOptions struct {
	WaitYears         int     `json:"wait_years"`
	PriceAppreciation float64 `json:"price_appreciation"`
	IncomeGrowth      float64 `json:"income_growth"`
	SavingsRate       float64 `json:"savings_rate"`
	// Reserved for a future rate-shift projection; the engine ignores it.
	InterestRateChange float64 `json:"interest_rate_change"`
}

// DefaultCompareOptions returns the standard projection assumptions: wait a
// year, prices up 3%, income up 2%, saving 30% of income.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		WaitYears:         1,
		PriceAppreciation: 3.0,
		IncomeGrowth:      2.0,
		SavingsRate:       30.0,
	}
}

// Problems returns every constraint the options violate. An empty slice
// means the options are acceptable.
func (o CompareOptions) Problems() []string {
	var problems []string
	if o.WaitYears < 1 || o.WaitYears > 5 {
		problems = append(problems, "wait_years must be between 1 and 5")
	}
	if o.PriceAppreciation < -10 || o.PriceAppreciation > 20 {
		problems = append(problems, "price_appreciation must be between -10 and 20")
	}
	if o.IncomeGrowth < -5 || o.IncomeGrowth > 20 {
		problems = append(problems, "income_growth must be between -5 and 20")
	}
	if o.SavingsRate < 0 || o.SavingsRate > 100 {
		problems = append(problems, "savings_rate must be between 0 and 100")
	}
	if o.InterestRateChange < -3 || o.InterestRateChange > 3 {
		problems = append(problems, "interest_rate_change must be between -3 and 3")
	}
	return problems
}

// Validate collapses Problems into a single error.
func (o CompareOptions) Validate() error {
	if problems := o.Problems(); len(problems) > 0 {
		return eris.Errorf("reality: invalid scenario options: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Projection summarizes what waiting changes and which side wins.
type Projection struct {
	WaitYears      int    `json:"wait_years"`
	PriceChange    int64  `json:"price_change"`
	IncomeChange   int64  `json:"income_change"`
	SavingsGained  int64  `json:"savings_gained"`
	Recommendation string `json:"recommendation"`
}

// Comparison is the full buy-now-vs-wait verdict: both complete analyses
// plus the projection deltas between them.
type Comparison struct {
	BuyNow     Result     `json:"buy_now"`
	BuyLater   Result     `json:"buy_later"`
	Projection Projection `json:"projection"`
}

// Compare evaluates the plan as-is and again after waiting, with price,
// income, and accumulated savings compounded over the wait. Region and
// ownership status are assumed unchanged. Ties go to buying now.
func (c *Calculator) Compare(in Input, opts CompareOptions) Comparison {
	now := c.Analyze(in)

	wait := float64(opts.WaitYears)
	futurePrice := int64(float64(in.TargetPrice) * math.Pow(1+opts.PriceAppreciation/100, wait))
	futureIncome := int64(float64(in.AnnualIncome) * math.Pow(1+opts.IncomeGrowth/100, wait))
	monthlySavings := int64(float64(in.AnnualIncome) / 12 * (opts.SavingsRate / 100))
	saved := monthlySavings * 12 * int64(opts.WaitYears)

	later := in
	later.TargetPrice = futurePrice
	later.AnnualIncome = futureIncome
	later.CashAvailable = in.CashAvailable + saved
	laterResult := c.Analyze(later)

	recommendation := RecommendWait
	if now.Score >= laterResult.Score {
		recommendation = RecommendBuyNow
	}

	return Comparison{
		BuyNow:   now,
		BuyLater: laterResult,
		Projection: Projection{
			WaitYears:      opts.WaitYears,
			PriceChange:    futurePrice - in.TargetPrice,
			IncomeChange:   futureIncome - in.AnnualIncome,
			SavingsGained:  saved,
			Recommendation: recommendation,
		},
	}
}

// Summary renders a one-line human summary of the verdict.
func (p Projection) Summary() string {
	if p.Recommendation == RecommendBuyNow {
		return fmt.Sprintf("buy now: waiting %d year(s) does not improve your position", p.WaitYears)
	}
	return fmt.Sprintf("wait %d year(s): projected savings of %s KRW improve your position", p.WaitYears, FormatWon(p.SavingsGained))
}
