package reality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_ZeroWaitIsIdentity(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "gangnam",
		TargetPrice:   500_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 100_000_000,
		IsFirstHome:   true,
	}

	cmp := calc.Compare(in, CompareOptions{})

	assert.Equal(t, cmp.BuyNow, cmp.BuyLater)
	assert.Equal(t, RecommendBuyNow, cmp.Projection.Recommendation)
	assert.Equal(t, int64(0), cmp.Projection.PriceChange)
	assert.Equal(t, int64(0), cmp.Projection.IncomeChange)
	assert.Equal(t, int64(0), cmp.Projection.SavingsGained)
}

func TestCompare_SavingsFavorWaiting(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "gangnam",
		TargetPrice:   500_000_000,
		AnnualIncome:  120_000_000,
		CashAvailable: 105_000_000,
		IsFirstHome:   true,
	}
	// Flat market, flat income, saving half of a 10M monthly income.
	opts := CompareOptions{WaitYears: 2, SavingsRate: 50}

	cmp := calc.Compare(in, opts)

	assert.Equal(t, 72, cmp.BuyNow.Score)
	assert.Equal(t, "B", cmp.BuyNow.Grade)
	assert.Equal(t, 84, cmp.BuyLater.Score)
	assert.Equal(t, "A", cmp.BuyLater.Grade)

	assert.Equal(t, int64(0), cmp.Projection.PriceChange)
	assert.Equal(t, int64(0), cmp.Projection.IncomeChange)
	assert.Equal(t, int64(120_000_000), cmp.Projection.SavingsGained)
	assert.Equal(t, RecommendWait, cmp.Projection.Recommendation)

	// The later run sees the accumulated savings as available cash.
	assert.Equal(t, int64(25_000_000), cmp.BuyLater.Analysis.GapAmount)
}

func TestCompare_CompoundProjection(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "nowon",
		TargetPrice:   100_000_000,
		AnnualIncome:  50_000_000,
		CashAvailable: 100_000_000,
		IsFirstHome:   true,
	}
	opts := CompareOptions{WaitYears: 2, PriceAppreciation: 10, IncomeGrowth: 10}

	cmp := calc.Compare(in, opts)

	assert.Equal(t, int64(121_000_000), cmp.BuyLater.Analysis.TargetPrice)
	assert.Equal(t, int64(21_000_000), cmp.Projection.PriceChange)
	assert.Equal(t, int64(10_500_000), cmp.Projection.IncomeChange)
	assert.Equal(t, int64(0), cmp.Projection.SavingsGained)
	assert.Equal(t, 2, cmp.Projection.WaitYears)
}

func TestCompare_TieGoesToBuyNow(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "nowon",
		TargetPrice:   300_000_000,
		AnnualIncome:  80_000_000,
		CashAvailable: 150_000_000,
		IsFirstHome:   true,
	}
	// Nothing changes over the wait, so both runs score identically.
	opts := CompareOptions{WaitYears: 3}

	cmp := calc.Compare(in, opts)

	assert.Equal(t, cmp.BuyNow.Score, cmp.BuyLater.Score)
	assert.Equal(t, RecommendBuyNow, cmp.Projection.Recommendation)
}

func TestDefaultCompareOptions(t *testing.T) {
	opts := DefaultCompareOptions()

	assert.Empty(t, opts.Problems())
	assert.Equal(t, 1, opts.WaitYears)
	assert.InDelta(t, 3.0, opts.PriceAppreciation, 0.001)
	assert.InDelta(t, 30.0, opts.SavingsRate, 0.001)
}

func TestCompareOptions_Problems(t *testing.T) {
	tests := []struct {
		name    string
		opts    CompareOptions
		wantMsg string
	}{
		{"wait too long", CompareOptions{WaitYears: 6}, "wait_years must be between 1 and 5"},
		{"wait zero", CompareOptions{WaitYears: 0}, "wait_years must be between 1 and 5"},
		{"appreciation too high", CompareOptions{WaitYears: 1, PriceAppreciation: 25}, "price_appreciation must be between -10 and 20"},
		{"growth too low", CompareOptions{WaitYears: 1, IncomeGrowth: -6}, "income_growth must be between -5 and 20"},
		{"negative savings", CompareOptions{WaitYears: 1, SavingsRate: -1}, "savings_rate must be between 0 and 100"},
		{"rate change out of band", CompareOptions{WaitYears: 1, InterestRateChange: 4}, "interest_rate_change must be between -3 and 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.opts.Problems()
			require.NotEmpty(t, problems)
			assert.Contains(t, problems, tt.wantMsg)

			err := tt.opts.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestProjection_Summary(t *testing.T) {
	now := Projection{Recommendation: RecommendBuyNow, WaitYears: 1}
	assert.Contains(t, now.Summary(), "buy now")

	wait := Projection{Recommendation: RecommendWait, WaitYears: 2, SavingsGained: 120_000_000}
	assert.Contains(t, wait.Summary(), "wait 2 year(s)")
	assert.Contains(t, wait.Summary(), "120,000,000")
}
