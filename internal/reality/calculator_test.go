package reality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(nil, DefaultConfig())
	require.NoError(t, err)
	return calc
}

func TestNewCalculator_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StabilityWeight = 0

	_, err := NewCalculator(nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights must sum to 100")
}

func TestAnalyze_GangnamFirstHome(t *testing.T) {
	calc := newTestCalculator(t)

	res := calc.Analyze(Input{
		Region:        "gangnam",
		TargetPrice:   500_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 100_000_000,
		IsFirstHome:   true,
	})

	assert.Equal(t, 50, res.Analysis.ApplicableLTV)
	assert.Equal(t, int64(250_000_000), res.Analysis.MaxLoanByLTV)
	assert.Equal(t, int64(666_666_666), res.Analysis.MaxLoanByDSR)
	assert.Equal(t, int64(250_000_000), res.Analysis.MaxLoanAmount)
	assert.Equal(t, int64(250_000_000), res.Analysis.RequiredCash)
	assert.Equal(t, int64(150_000_000), res.Analysis.GapAmount)
	assert.InDelta(t, 1_266_713, float64(res.Analysis.MonthlyRepayment), 2)
	assert.InDelta(t, 15.2, res.Analysis.DSRPercentage, 0.01)

	assert.Equal(t, Breakdown{LTV: 12, DSR: 24, CashGap: 10, Stability: 25}, res.Breakdown)
	assert.Equal(t, 71, res.Score)
	assert.Equal(t, "B", res.Grade)

	assert.Equal(t, RegionInfo{
		Name:              "Gangnam-gu",
		IsSpeculativeZone: true,
		IsAdjustedZone:    true,
		MaxLTV:            50,
	}, res.Region)

	require.Len(t, res.Risks, 3)
	assert.Equal(t, "Cash Shortfall", res.Risks[0].Title)
	assert.Equal(t, RiskCritical, res.Risks[0].Type)
	assert.Contains(t, res.Risks[0].Message, "150,000,000 KRW")
	assert.Equal(t, "Speculative Overheated Zone", res.Risks[1].Title)
	assert.Equal(t, RiskInfo, res.Risks[1].Type)
	assert.Equal(t, "Good Financial Position", res.Risks[2].Title)
	assert.Equal(t, RiskSuccess, res.Risks[2].Type)
	assert.Empty(t, res.Risks[2].Suggestion)
}

func TestAnalyze_MultiHomeSpeculative(t *testing.T) {
	calc := newTestCalculator(t)

	res := calc.Analyze(Input{
		Region:        "gangnam",
		TargetPrice:   500_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 100_000_000,
		IsFirstHome:   false,
		HouseCount:    2,
	})

	assert.Equal(t, 0, res.Analysis.ApplicableLTV)
	assert.Equal(t, int64(0), res.Analysis.MaxLoanAmount)
	assert.Equal(t, int64(0), res.Analysis.MonthlyRepayment)
	assert.Equal(t, int64(500_000_000), res.Analysis.RequiredCash)
	assert.Equal(t, int64(400_000_000), res.Analysis.GapAmount)

	assert.Equal(t, Breakdown{LTV: 0, DSR: 25, CashGap: 5, Stability: 25}, res.Breakdown)
	assert.Equal(t, 55, res.Score)
	assert.Equal(t, "C", res.Grade)

	require.Len(t, res.Risks, 3)
	assert.Equal(t, "Cash Shortfall", res.Risks[0].Title)
	assert.Equal(t, "No Loan Available", res.Risks[1].Title)
	assert.Equal(t, RiskCritical, res.Risks[1].Type)
	assert.Equal(t, "Speculative Overheated Zone", res.Risks[2].Title)
}

func TestAnalyze_UnknownRegionUnregulated(t *testing.T) {
	calc := newTestCalculator(t)

	res := calc.Analyze(Input{
		Region:        "busan-centum",
		TargetPrice:   300_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 300_000_000,
		IsFirstHome:   true,
	})

	assert.Equal(t, "Other", res.Region.Name)
	assert.False(t, res.Region.IsSpeculativeZone)
	assert.False(t, res.Region.IsAdjustedZone)
	assert.Equal(t, 70, res.Analysis.ApplicableLTV)
	assert.Equal(t, int64(210_000_000), res.Analysis.MaxLoanAmount)
	assert.Equal(t, int64(0), res.Analysis.GapAmount)

	assert.Equal(t, Breakdown{LTV: 17, DSR: 25, CashGap: 25, Stability: 25}, res.Breakdown)
	assert.Equal(t, 92, res.Score)
	assert.Equal(t, "A", res.Grade)

	require.Len(t, res.Risks, 1)
	assert.Equal(t, "Good Financial Position", res.Risks[0].Title)
}

func TestAnalyze_ZeroIncomeDegenerate(t *testing.T) {
	// The boundary rejects zero income; the engine must still not blow up.
	calc := newTestCalculator(t)

	res := calc.Analyze(Input{
		Region:      "nowon",
		TargetPrice: 100_000_000,
		IsFirstHome: true,
	})

	assert.Equal(t, int64(0), res.Analysis.MaxLoanByDSR)
	assert.Equal(t, int64(0), res.Analysis.MaxLoanAmount)
	assert.InDelta(t, 100, res.Analysis.DSRPercentage, 0.001)
	assert.Equal(t, Breakdown{LTV: 17, DSR: 0, CashGap: 0, Stability: 0}, res.Breakdown)
	assert.Equal(t, 17, res.Score)
	assert.Equal(t, "F", res.Grade)

	require.Len(t, res.Risks, 2)
	assert.Equal(t, "DSR Limit Exceeded", res.Risks[0].Title)
	assert.Contains(t, res.Risks[0].Message, "100.0%")
	assert.Equal(t, "Cash Shortfall", res.Risks[1].Title)
}

func TestAnalyze_Deterministic(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "mapo",
		TargetPrice:   700_000_000,
		AnnualIncome:  90_000_000,
		CashAvailable: 150_000_000,
		ExistingDebt:  500_000,
		IsFirstHome:   true,
	}

	first := calc.Analyze(in)
	second := calc.Analyze(in)
	assert.Equal(t, first, second)
}

func TestAnalyze_MoreCashNeverHurtsCashScore(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:       "gangnam",
		TargetPrice:  500_000_000,
		AnnualIncome: 100_000_000,
		IsFirstHome:  true,
	}

	prev := -1
	for cash := int64(0); cash <= 500_000_000; cash += 50_000_000 {
		in.CashAvailable = cash
		got := calc.Analyze(in).Breakdown.CashGap
		assert.GreaterOrEqual(t, got, prev, "cash %d", cash)
		prev = got
	}
}

func TestAnalyze_MoreDebtNeverHelpsDSRScore(t *testing.T) {
	calc := newTestCalculator(t)
	in := Input{
		Region:        "mapo",
		TargetPrice:   500_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 200_000_000,
		IsFirstHome:   true,
	}

	prev := 26
	for _, debt := range []int64{0, 500_000, 1_000_000, 2_000_000, 4_000_000, 8_000_000} {
		in.ExistingDebt = debt
		got := calc.Analyze(in).Breakdown.DSR
		assert.LessOrEqual(t, got, prev, "debt %d", debt)
		prev = got
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	calc := newTestCalculator(t)
	cfg := calc.Config()

	regions := []string{"gangnam", "mapo", "nowon", "unknown-city"}
	prices := []int64{100_000_000, 500_000_000, 1_500_000_000}
	incomes := []int64{30_000_000, 100_000_000}
	cashes := []int64{0, 200_000_000}
	counts := []int{0, 1, 2}

	for _, r := range regions {
		for _, p := range prices {
			for _, inc := range incomes {
				for _, cash := range cashes {
					for _, first := range []bool{true, false} {
						for _, n := range counts {
							res := calc.Analyze(Input{
								Region:        r,
								TargetPrice:   p,
								AnnualIncome:  inc,
								CashAvailable: cash,
								IsFirstHome:   first,
								HouseCount:    n,
							})
							assert.GreaterOrEqual(t, res.Score, 0)
							assert.LessOrEqual(t, res.Score, 100)
							assert.GreaterOrEqual(t, res.Breakdown.LTV, 0)
							assert.LessOrEqual(t, res.Breakdown.LTV, cfg.LTVWeight)
							assert.GreaterOrEqual(t, res.Breakdown.DSR, 0)
							assert.LessOrEqual(t, res.Breakdown.DSR, cfg.DSRWeight)
							assert.GreaterOrEqual(t, res.Breakdown.CashGap, 0)
							assert.LessOrEqual(t, res.Breakdown.CashGap, cfg.CashGapWeight)
							assert.GreaterOrEqual(t, res.Breakdown.Stability, 0)
							assert.LessOrEqual(t, res.Breakdown.Stability, cfg.StabilityWeight)
							assert.Contains(t, []string{"A", "B", "C", "D", "F"}, res.Grade)
						}
					}
				}
			}
		}
	}
}
