package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/loganko83/realcare/internal/reality"
)

var (
	checkRegion    string
	checkPrice     int64
	checkIncome    int64
	checkCash      int64
	checkDebt      int64
	checkFirstHome bool
	checkHouses    int
	checkFormat    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a one-shot feasibility analysis",
	Long: `Analyze one purchase plan against the regulation zone table and the
household's repayment capacity.

Examples:
  # First-home purchase in Gangnam
  check --region gangnam --price 500000000 --income 100000000 --cash 100000000

  # Second home with existing monthly debt service
  check --region mapo --price 800000000 --income 150000000 --cash 300000000 --debt 2000000 --first-home=false --houses 1

  # JSON output at a custom loan rate
  check --region nowon --price 300000000 --income 80000000 --format json --rate 5.2`,
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkRegion, "region", "", "district id or name (required)")
	f.Int64Var(&checkPrice, "price", 0, "target property price in KRW (required)")
	f.Int64Var(&checkIncome, "income", 0, "annual income in KRW (required)")
	f.Int64Var(&checkCash, "cash", 0, "available cash in KRW")
	f.Int64Var(&checkDebt, "debt", 0, "existing monthly debt service in KRW")
	f.BoolVar(&checkFirstHome, "first-home", true, "buying as a first-home buyer")
	f.IntVar(&checkHouses, "houses", 0, "number of homes already owned")
	f.StringVar(&checkFormat, "format", "table", "output format: table or json")
	f.Float64("rate", 0, "annual loan rate percent (overrides config)")
	f.Int("term", 0, "loan term in years (overrides config)")
	_ = checkCmd.MarkFlagRequired("region")
	_ = checkCmd.MarkFlagRequired("price")
	_ = checkCmd.MarkFlagRequired("income")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate("check"); err != nil {
		return err
	}
	if checkFormat != "table" && checkFormat != "json" {
		return eris.Errorf("check: --format must be table or json (got %q)", checkFormat)
	}

	engineCfg := applyRealityOverrides(cmd, cfg.Reality)
	calc, err := buildCalculator(engineCfg)
	if err != nil {
		return err
	}

	in := reality.Input{
		Region:        checkRegion,
		TargetPrice:   checkPrice,
		AnnualIncome:  checkIncome,
		CashAvailable: checkCash,
		ExistingDebt:  checkDebt,
		IsFirstHome:   checkFirstHome,
		HouseCount:    checkHouses,
	}
	if err := in.Validate(); err != nil {
		return err
	}

	result := calc.Analyze(in)

	if checkFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(os.Stdout, result, engineCfg)
	return nil
}

// applyRealityOverrides returns a copy of the engine config with CLI flag
// overrides applied.
func applyRealityOverrides(cmd *cobra.Command, base reality.Config) reality.Config {
	c := base

	if v, _ := cmd.Flags().GetFloat64("rate"); v > 0 {
		c.LoanRatePct = v
	}
	if v, _ := cmd.Flags().GetInt("term"); v > 0 {
		c.LoanTermYears = v
	}

	return c
}

func zoneLabel(ri reality.RegionInfo) string {
	switch {
	case ri.IsSpeculativeZone:
		return "speculative zone"
	case ri.IsAdjustedZone:
		return "adjusted zone"
	default:
		return "unregulated"
	}
}

func printResult(w io.Writer, r reality.Result, cfg reality.Config) {
	fmt.Fprintf(w, "Score:  %d / 100 (%s)\n", r.Score, r.Grade)
	fmt.Fprintf(w, "Region: %s (%s, max LTV %d%%)\n", r.Region.Name, zoneLabel(r.Region), r.Region.MaxLTV)

	fmt.Fprintln(w, "\nBreakdown:")
	fmt.Fprintf(w, "  %-12s %3d / %d\n", "LTV", r.Breakdown.LTV, cfg.LTVWeight)
	fmt.Fprintf(w, "  %-12s %3d / %d\n", "DSR", r.Breakdown.DSR, cfg.DSRWeight)
	fmt.Fprintf(w, "  %-12s %3d / %d\n", "Cash gap", r.Breakdown.CashGap, cfg.CashGapWeight)
	fmt.Fprintf(w, "  %-12s %3d / %d\n", "Stability", r.Breakdown.Stability, cfg.StabilityWeight)

	fmt.Fprintln(w, "\nAnalysis:")
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Target price", reality.FormatWon(r.Analysis.TargetPrice))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Max loan (LTV)", reality.FormatWon(r.Analysis.MaxLoanByLTV))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Max loan (DSR)", reality.FormatWon(r.Analysis.MaxLoanByDSR))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Loan ceiling", reality.FormatWon(r.Analysis.MaxLoanAmount))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Required cash", reality.FormatWon(r.Analysis.RequiredCash))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Cash gap", reality.FormatWon(r.Analysis.GapAmount))
	fmt.Fprintf(w, "  %-18s %15s KRW\n", "Monthly payment", reality.FormatWon(r.Analysis.MonthlyRepayment))
	fmt.Fprintf(w, "  %-18s %14.2f%%\n", "DSR", r.Analysis.DSRPercentage)

	if len(r.Risks) > 0 {
		fmt.Fprintln(w, "\nRisks:")
		for _, risk := range r.Risks {
			fmt.Fprintf(w, "  [%s] %s: %s\n", risk.Type, risk.Title, risk.Message)
			if risk.Suggestion != "" {
				fmt.Fprintf(w, "      > %s\n", risk.Suggestion)
			}
		}
	}
}
