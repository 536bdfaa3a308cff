package reality

import (
	"math"

	"go.uber.org/zap"

	"github.com/loganko83/realcare/internal/region"
)

// Calculator runs the full feasibility pipeline. It holds only immutable
// state, so one instance serves concurrent callers.
type Calculator struct {
	catalog *region.Catalog
	cfg     Config
}

// NewCalculator builds a Calculator after validating the config. A nil
// catalog falls back to the built-in zone table.
func NewCalculator(catalog *region.Catalog, cfg Config) (*Calculator, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = region.DefaultCatalog()
	}
	return &Calculator{catalog: catalog, cfg: cfg}, nil
}

// Config returns the engine configuration in effect.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Catalog returns the zone table in effect.
func (c *Calculator) Catalog() *region.Catalog {
	return c.catalog
}

// Analyze scores one purchase plan. It is deterministic and never fails:
// degenerate inputs produce a degenerate result, not an error. Callers are
// expected to validate the input first.
func (c *Calculator) Analyze(in Input) Result {
	profile := c.catalog.Classify(in.Region)
	maxLTV := profile.LTVLimit(in.IsFirstHome, in.HouseCount)

	ltvLoan := maxLoanByLTV(in.TargetPrice, maxLTV)
	dsrLoan := maxLoanByDSR(in.AnnualIncome, in.ExistingDebt, c.cfg)
	maxLoan := max(int64(0), min(ltvLoan, dsrLoan))

	requiredCash := in.TargetPrice - maxLoan
	cashGap := max(int64(0), requiredCash-in.CashAvailable)

	monthly := MonthlyPayment(maxLoan, c.cfg.LoanRatePct, c.cfg.LoanTermYears)
	dsrPct := DSRPercentage(in.AnnualIncome, monthly+in.ExistingDebt)

	breakdown := Breakdown{
		LTV:       scoreLTV(ltvLoan, in.TargetPrice, c.cfg.LTVWeight),
		DSR:       scoreDSR(dsrPct, c.cfg.DSRLimitPct, c.cfg.DSRWeight),
		CashGap:   scoreCashGap(cashGap, in.CashAvailable, requiredCash, c.cfg.CashGapWeight),
		Stability: scoreStability(in.TargetPrice, in.AnnualIncome, c.cfg.StabilityWeight),
	}
	score := breakdown.Total()

	zap.L().Debug("reality: analyzed plan",
		zap.String("region", profile.ID),
		zap.Int("score", score),
		zap.Int64("max_loan", maxLoan),
	)

	return Result{
		Score:     score,
		Grade:     Grade(score),
		Breakdown: breakdown,
		Analysis: Analysis{
			TargetPrice:      in.TargetPrice,
			MaxLoanByLTV:     ltvLoan,
			MaxLoanByDSR:     dsrLoan,
			MaxLoanAmount:    maxLoan,
			RequiredCash:     requiredCash,
			GapAmount:        cashGap,
			MonthlyRepayment: monthly,
			DSRPercentage:    math.Round(dsrPct*100) / 100,
			ApplicableLTV:    maxLTV,
		},
		Risks: buildRisks(dsrPct, cashGap, maxLTV, profile.Speculative, score, c.cfg),
		Region: RegionInfo{
			Name:              profile.Name,
			IsSpeculativeZone: profile.Speculative,
			IsAdjustedZone:    profile.Adjusted,
			MaxLTV:            maxLTV,
		},
	}
}
