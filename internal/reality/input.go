package reality

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Input describes one purchase plan. Amounts are whole KRW; ExistingDebt is
// the buyer's current monthly debt service, not an outstanding balance.
type Input struct {
	Region        string `json:"region"`
	TargetPrice   int64  `json:"target_price"`
	AnnualIncome  int64  `json:"annual_income"`
	CashAvailable int64  `json:"cash_available"`
	ExistingDebt  int64  `json:"existing_debt"`
	IsFirstHome   bool   `json:"is_first_home"`
	HouseCount    int    `json:"house_count"`
}

// maxHouseCount bounds the ownership count accepted at the boundary.
const maxHouseCount = 10

// Problems returns every constraint the input violates, one message per
// field. An empty slice means the input is acceptable.
func (in Input) Problems() []string {
	var problems []string
	if strings.TrimSpace(in.Region) == "" {
		problems = append(problems, "region is required")
	}
	if in.TargetPrice <= 0 {
		problems = append(problems, "target_price must be > 0")
	}
	if in.AnnualIncome <= 0 {
		problems = append(problems, "annual_income must be > 0")
	}
	if in.CashAvailable < 0 {
		problems = append(problems, "cash_available must be >= 0")
	}
	if in.ExistingDebt < 0 {
		problems = append(problems, "existing_debt must be >= 0")
	}
	if in.HouseCount < 0 || in.HouseCount > maxHouseCount {
		problems = append(problems, fmt.Sprintf("house_count must be between 0 and %d", maxHouseCount))
	}
	return problems
}

// Validate collapses Problems into a single error for callers that do not
// need per-field detail.
func (in Input) Validate() error {
	if problems := in.Problems(); len(problems) > 0 {
		return eris.Errorf("reality: invalid input: %s", strings.Join(problems, "; "))
	}
	return nil
}
