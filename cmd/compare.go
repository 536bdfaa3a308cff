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
	compareRegion     string
	comparePrice      int64
	compareIncome     int64
	compareCash       int64
	compareDebt       int64
	compareFirstHome  bool
	compareHouses     int
	compareWait       int
	compareAppr       float64
	compareGrowth     float64
	compareSavings    float64
	compareRateChange float64
	compareFormat     string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare buying now against waiting",
	Long: `Run the feasibility analysis for a plan as-is and again after a
waiting period, with prices and income compounded and savings accumulated.

Examples:
  # Wait two years in a flat market, saving half of income
  compare --region gangnam --price 500000000 --income 120000000 --cash 105000000 --wait 2 --appreciation 0 --growth 0 --savings-rate 50

  # Default projection (1 year, 3% prices, 2% income, 30% savings)
  compare --region nowon --price 300000000 --income 80000000 --cash 150000000`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareRegion, "region", "", "district id or name (required)")
	f.Int64Var(&comparePrice, "price", 0, "target property price in KRW (required)")
	f.Int64Var(&compareIncome, "income", 0, "annual income in KRW (required)")
	f.Int64Var(&compareCash, "cash", 0, "available cash in KRW")
	f.Int64Var(&compareDebt, "debt", 0, "existing monthly debt service in KRW")
	f.BoolVar(&compareFirstHome, "first-home", true, "buying as a first-home buyer")
	f.IntVar(&compareHouses, "houses", 0, "number of homes already owned")
	f.IntVar(&compareWait, "wait", 1, "years to wait (1-5)")
	f.Float64Var(&compareAppr, "appreciation", 3.0, "annual price appreciation percent")
	f.Float64Var(&compareGrowth, "growth", 2.0, "annual income growth percent")
	f.Float64Var(&compareSavings, "savings-rate", 30.0, "share of income saved, percent")
	f.Float64Var(&compareRateChange, "rate-change", 0, "projected loan rate change, percent points")
	f.StringVar(&compareFormat, "format", "table", "output format: table or json")
	_ = compareCmd.MarkFlagRequired("region")
	_ = compareCmd.MarkFlagRequired("price")
	_ = compareCmd.MarkFlagRequired("income")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate("check"); err != nil {
		return err
	}
	if compareFormat != "table" && compareFormat != "json" {
		return eris.Errorf("compare: --format must be table or json (got %q)", compareFormat)
	}

	calc, err := buildCalculator(cfg.Reality)
	if err != nil {
		return err
	}

	in := reality.Input{
		Region:        compareRegion,
		TargetPrice:   comparePrice,
		AnnualIncome:  compareIncome,
		CashAvailable: compareCash,
		ExistingDebt:  compareDebt,
		IsFirstHome:   compareFirstHome,
		HouseCount:    compareHouses,
	}
	if err := in.Validate(); err != nil {
		return err
	}

	opts := reality.CompareOptions{
		WaitYears:          compareWait,
		PriceAppreciation:  compareAppr,
		IncomeGrowth:       compareGrowth,
		SavingsRate:        compareSavings,
		InterestRateChange: compareRateChange,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	cmp := calc.Compare(in, opts)

	if compareFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	}

	printComparison(os.Stdout, cmp)
	return nil
}

func printComparison(w io.Writer, cmp reality.Comparison) {
	fmt.Fprintf(w, "Buy now:   %d / 100 (%s)\n", cmp.BuyNow.Score, cmp.BuyNow.Grade)
	fmt.Fprintf(w, "Buy later: %d / 100 (%s)\n", cmp.BuyLater.Score, cmp.BuyLater.Grade)

	fmt.Fprintf(w, "\nAfter waiting %d year(s):\n", cmp.Projection.WaitYears)
	fmt.Fprintf(w, "  %-16s %15s KRW\n", "Price change", reality.FormatWon(cmp.Projection.PriceChange))
	fmt.Fprintf(w, "  %-16s %15s KRW\n", "Income change", reality.FormatWon(cmp.Projection.IncomeChange))
	fmt.Fprintf(w, "  %-16s %15s KRW\n", "Savings gained", reality.FormatWon(cmp.Projection.SavingsGained))
	fmt.Fprintf(w, "  %-16s %15s KRW\n", "Cash gap later", reality.FormatWon(cmp.BuyLater.Analysis.GapAmount))

	fmt.Fprintf(w, "\nRecommendation: %s\n", cmp.Projection.Summary())
}
