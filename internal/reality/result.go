package reality

// Analysis carries the loan arithmetic behind a result. All amounts are
// whole KRW; DSRPercentage is rounded to two decimals for presentation.
type Analysis struct {
	TargetPrice      int64   `json:"target_price"`
	MaxLoanByLTV     int64   `json:"max_loan_by_ltv"`
	MaxLoanByDSR     int64   `json:"max_loan_by_dsr"`
	MaxLoanAmount    int64   `json:"max_loan_amount"`
	RequiredCash     int64   `json:"required_cash"`
	GapAmount        int64   `json:"gap_amount"`
	MonthlyRepayment int64   `json:"monthly_repayment"`
	DSRPercentage    float64 `json:"dsr_percentage"`
	ApplicableLTV    int     `json:"applicable_ltv"`
}

// RegionInfo echoes the regulation zone the plan was classified into.
type RegionInfo struct {
	Name              string `json:"name"`
	IsSpeculativeZone bool   `json:"is_speculative_zone"`
	IsAdjustedZone    bool   `json:"is_adjusted_zone"`
	MaxLTV            int    `json:"max_ltv"`
}

// Risk severity tags, from blocking to encouraging.
const (
	RiskCritical = "critical"
	RiskWarning  = "warning"
	RiskInfo     = "info"
	RiskSuccess  = "success"
)

// Risk is one advisory note attached to a result.
type Risk struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Result is the full outcome of one feasibility analysis.
type Result struct {
	Score     int        `json:"score"`
	Grade     string     `json:"grade"`
	Breakdown Breakdown  `json:"breakdown"`
	Analysis  Analysis   `json:"analysis"`
	Risks     []Risk     `json:"risks"`
	Region    RegionInfo `json:"region"`
}
