package reality

import "fmt"

// Risk titles. Stable identifiers for callers that map risks to follow-up
// actions.
const (
	TitleDSRExceeded     = "DSR Limit Exceeded"
	TitleDSRNearLimit    = "DSR Near Limit"
	TitleCashShortfall   = "Cash Shortfall"
	TitleNoLoan          = "No Loan Available"
	TitleSpeculativeZone = "Speculative Overheated Zone"
	TitleGoodPosition    = "Good Financial Position"
)

// buildRisks derives the advisory list from the intermediate values of one
// analysis. Order is fixed: repayment load, cash position, lending blockers,
// zone context, then the overall verdict. dsrPct is the unrounded ratio so
// threshold checks are not distorted by presentation rounding.
func buildRisks(dsrPct float64, cashGap int64, maxLTV int, speculative bool, score int, cfg Config) []Risk {
	var risks []Risk

	switch {
	case dsrPct > cfg.DSRLimitPct:
		risks = append(risks, Risk{
			Type:       RiskCritical,
			Title:      TitleDSRExceeded,
			Message:    fmt.Sprintf("Your DSR of %.1f%% exceeds the %.0f%% limit. Loan approval may be difficult.", dsrPct, cfg.DSRLimitPct),
			Suggestion: "Consider reducing existing debt or increasing income before applying.",
		})
	case dsrPct > cfg.DSRWarnPct:
		risks = append(risks, Risk{
			Type:       RiskWarning,
			Title:      TitleDSRNearLimit,
			Message:    fmt.Sprintf("Your DSR of %.1f%% is approaching the %.0f%% limit.", dsrPct, cfg.DSRLimitPct),
			Suggestion: "Build a larger down payment to reduce the loan amount needed.",
		})
	}

	if cashGap > 0 {
		risks = append(risks, Risk{
			Type:       RiskCritical,
			Title:      TitleCashShortfall,
			Message:    fmt.Sprintf("You are short by %s KRW for the down payment.", FormatWon(cashGap)),
			Suggestion: "Save more or consider a less expensive property.",
		})
	}

	if maxLTV == 0 {
		risks = append(risks, Risk{
			Type:       RiskCritical,
			Title:      TitleNoLoan,
			Message:    "Multi-home owners cannot get loans in speculative zones.",
			Suggestion: "Consider selling existing property first or looking in non-regulated areas.",
		})
	}

	if speculative {
		risks = append(risks, Risk{
			Type:       RiskInfo,
			Title:      TitleSpeculativeZone,
			Message:    "This area has strict lending regulations with lower LTV limits.",
			Suggestion: "Be prepared for stricter scrutiny during loan approval.",
		})
	}

	if score >= cfg.SuccessScore {
		risks = append(risks, Risk{
			Type:    RiskSuccess,
			Title:   TitleGoodPosition,
			Message: "Your financial situation looks favorable for this purchase.",
		})
	}

	return risks
}
