package server

import (
	"sort"

	"github.com/loganko83/realcare/internal/reality"
)

// Recommendation is one step in a prioritized action plan.
type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// buildActionPlan turns an analysis into concrete next steps: one step per
// risk, plus a first-time buyer check when it applies, sorted high to low.
// The mapping is deterministic so identical inputs yield identical plans.
func buildActionPlan(result reality.Result, in reality.Input) []Recommendation {
	var plan []Recommendation
	for _, risk := range result.Risks {
		switch risk.Title {
		case reality.TitleDSRExceeded:
			plan = append(plan, Recommendation{
				Priority:    "high",
				Title:       "Reduce existing debt",
				Description: "Pay down current loans to bring your debt service ratio under the regulatory limit",
				Timeline:    "3-6 months",
			})
		case reality.TitleDSRNearLimit:
			plan = append(plan, Recommendation{
				Priority:    "medium",
				Title:       "Build a larger down payment",
				Description: "A bigger down payment shrinks the loan and keeps your debt service ratio clear of the limit",
				Timeline:    "3-6 months",
			})
		case reality.TitleCashShortfall:
			plan = append(plan, Recommendation{
				Priority:    "high",
				Title:       "Increase savings rate",
				Description: "Consider reducing discretionary spending to build down payment faster",
				Timeline:    "3-6 months",
			})
		case reality.TitleNoLoan:
			plan = append(plan, Recommendation{
				Priority:    "high",
				Title:       "Restructure property holdings",
				Description: "Selling an existing property restores loan eligibility in regulated zones",
				Timeline:    "6-12 months",
			})
		case reality.TitleSpeculativeZone:
			plan = append(plan, Recommendation{
				Priority:    "medium",
				Title:       "Prepare for stricter screening",
				Description: "Gather income and asset documentation early; speculative zone loans face extra scrutiny",
				Timeline:    "1-2 weeks",
			})
		case reality.TitleGoodPosition:
			plan = append(plan, Recommendation{
				Priority:    "low",
				Title:       "Get loan pre-approval",
				Description: "Lock in current rates by starting the pre-approval process",
				Timeline:    "1-2 weeks",
			})
		}
	}

	if in.IsFirstHome {
		plan = append(plan, Recommendation{
			Priority:    "medium",
			Title:       "Explore first-time buyer programs",
			Description: "Check eligibility for government-backed first-time buyer loans",
			Timeline:    "1-2 weeks",
		})
	}

	if len(plan) == 0 {
		plan = append(plan, Recommendation{
			Priority:    "low",
			Title:       "Maintain your current plan",
			Description: "No blocking issues found; keep building cash while you finalize the purchase timeline",
			Timeline:    "1-3 months",
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return priorityRank[plan[i].Priority] < priorityRank[plan[j].Priority]
	})
	return plan
}
