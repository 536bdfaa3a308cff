// Package reality implements the Reality Check feasibility engine: it
// classifies a purchase plan against Korean lending regulation, derives the
// loan ceiling and repayment load, and scores how realistic the purchase is.
package reality

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Config tunes the feasibility engine. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Factor caps (sum = 100). Each factor contributes at most its cap to
	// the total score.
	LTVWeight       int `yaml:"ltv_weight" mapstructure:"ltv_weight"`
	DSRWeight       int `yaml:"dsr_weight" mapstructure:"dsr_weight"`
	CashGapWeight   int `yaml:"cash_gap_weight" mapstructure:"cash_gap_weight"`
	StabilityWeight int `yaml:"stability_weight" mapstructure:"stability_weight"`

	// Lending policy.
	DSRLimitPct   float64 `yaml:"dsr_limit_pct" mapstructure:"dsr_limit_pct"`
	DSRWarnPct    float64 `yaml:"dsr_warn_pct" mapstructure:"dsr_warn_pct"`
	DSRProxyRate  float64 `yaml:"dsr_proxy_rate" mapstructure:"dsr_proxy_rate"`
	LoanRatePct   float64 `yaml:"loan_rate_pct" mapstructure:"loan_rate_pct"`
	LoanTermYears int     `yaml:"loan_term_years" mapstructure:"loan_term_years"`

	// Advisory thresholds.
	SuccessScore int `yaml:"success_score" mapstructure:"success_score"`
}

// DefaultConfig returns the engine defaults. Weights sum to 100.
func DefaultConfig() Config {
	return Config{
		// Weights (sum = 100).
		LTVWeight:       25,
		DSRWeight:       25,
		CashGapWeight:   25,
		StabilityWeight: 25,

		// Korean regulatory baseline: 40% DSR ceiling, warnings from 35%.
		DSRLimitPct: 40,
		DSRWarnPct:  35,

		// Flat monthly repayment factor per won of principal, used to invert
		// the DSR cap into a rough principal ceiling.
		DSRProxyRate: 0.005,

		// Standard amortizing mortgage terms.
		LoanRatePct:   4.5,
		LoanTermYears: 30,

		// Total score at or above which the success note fires.
		SuccessScore: 70,
	}
}

// WeightSum returns the sum of all factor caps.
func WeightSum(c Config) int {
	return c.LTVWeight + c.DSRWeight + c.CashGapWeight + c.StabilityWeight
}

// ValidateConfig checks that a Config is internally consistent.
func ValidateConfig(c Config) error {
	var errs []string

	// All weights must be non-negative.
	weights := map[string]int{
		"ltv_weight":       c.LTVWeight,
		"dsr_weight":       c.DSRWeight,
		"cash_gap_weight":  c.CashGapWeight,
		"stability_weight": c.StabilityWeight,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	// Caps are whole points and must partition the 100-point scale.
	if sum := WeightSum(c); sum != 100 {
		errs = append(errs, fmt.Sprintf("weights must sum to 100, got %d", sum))
	}

	if c.DSRLimitPct <= 0 || c.DSRLimitPct > 100 {
		errs = append(errs, "dsr_limit_pct must be in (0, 100]")
	}
	if c.DSRWarnPct < 0 || c.DSRWarnPct > c.DSRLimitPct {
		errs = append(errs, "dsr_warn_pct must be between 0 and dsr_limit_pct")
	}
	if c.DSRProxyRate <= 0 {
		errs = append(errs, "dsr_proxy_rate must be > 0")
	}
	if c.LoanRatePct < 0 {
		errs = append(errs, "loan_rate_pct must be >= 0")
	}
	if c.LoanTermYears < 1 {
		errs = append(errs, "loan_term_years must be >= 1")
	}
	if c.SuccessScore < 0 || c.SuccessScore > 100 {
		errs = append(errs, "success_score must be between 0 and 100")
	}

	if len(errs) > 0 {
		return eris.Errorf("reality: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
