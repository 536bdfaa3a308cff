package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loganko83/realcare/internal/reality"
)

var (
	batchInput       string
	batchOutput      string
	batchLimit       int
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a CSV of purchase plans concurrently",
	Long: `Read purchase plans from a CSV file, one per row:

  region,target_price,annual_income,cash_available,existing_debt,is_first_home,house_count

Only the first three columns are required; a header row is skipped when
present. Results are written as CSV, one row per input plan. Rows that fail
to parse or validate keep their line number and carry the error instead of
a result.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchInput, "input", "", "input CSV path (required)")
	f.StringVar(&batchOutput, "output", "", "output CSV path (default: stdout)")
	f.IntVar(&batchLimit, "limit", 0, "max number of rows to process (0=all)")
	f.IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent analyses")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate("check"); err != nil {
		return err
	}

	calc, err := buildCalculator(cfg.Reality)
	if err != nil {
		return err
	}

	f, err := os.Open(batchInput)
	if err != nil {
		return eris.Wrapf(err, "batch: open input %s", batchInput)
	}
	defer f.Close() //nolint:errcheck

	rows, err := readBatchRows(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		zap.L().Info("no rows to process")
		return nil
	}
	if batchLimit > 0 && len(rows) > batchLimit {
		rows = rows[:batchLimit]
	}

	results, err := processBatch(ctx, rows, batchConcurrency, calc.Analyze)
	if err != nil {
		return err
	}

	out := os.Stdout
	if batchOutput != "" {
		out, err = os.Create(batchOutput)
		if err != nil {
			return eris.Wrapf(err, "batch: create output %s", batchOutput)
		}
		defer out.Close() //nolint:errcheck
	}
	return writeBatchCSV(out, results)
}

type batchRow struct {
	line  int
	input reality.Input
	err   error
}

type batchResult struct {
	row    batchRow
	result reality.Result
	ok     bool
}

// readBatchRows parses the input CSV. A leading header row is skipped; rows
// that fail to parse are kept with their error so the output reports them
// in place.
func readBatchRows(r io.Reader) ([]batchRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "batch: read input CSV")
	}

	var rows []batchRow
	for i, record := range records {
		if i == 0 && isBatchHeader(record) {
			continue
		}
		in, err := parseBatchRow(record)
		rows = append(rows, batchRow{line: i + 1, input: in, err: err})
	}
	return rows, nil
}

func isBatchHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "region")
}

// parseBatchRow maps one CSV record onto an analysis input. Omitted trailing
// columns take the same defaults as the API: no debt, first home, no homes
// owned.
func parseBatchRow(record []string) (reality.Input, error) {
	if len(record) < 3 {
		return reality.Input{}, eris.Errorf("batch: expected at least 3 columns, got %d", len(record))
	}

	in := reality.Input{Region: strings.TrimSpace(record[0]), IsFirstHome: true}

	var err error
	if in.TargetPrice, err = parseAmount(record[1]); err != nil {
		return reality.Input{}, eris.Wrap(err, "batch: target_price")
	}
	if in.AnnualIncome, err = parseAmount(record[2]); err != nil {
		return reality.Input{}, eris.Wrap(err, "batch: annual_income")
	}
	if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
		if in.CashAvailable, err = parseAmount(record[3]); err != nil {
			return reality.Input{}, eris.Wrap(err, "batch: cash_available")
		}
	}
	if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
		if in.ExistingDebt, err = parseAmount(record[4]); err != nil {
			return reality.Input{}, eris.Wrap(err, "batch: existing_debt")
		}
	}
	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		if in.IsFirstHome, err = strconv.ParseBool(strings.TrimSpace(record[5])); err != nil {
			return reality.Input{}, eris.Wrap(err, "batch: is_first_home")
		}
	}
	if len(record) > 6 && strings.TrimSpace(record[6]) != "" {
		if in.HouseCount, err = strconv.Atoi(strings.TrimSpace(record[6])); err != nil {
			return reality.Input{}, eris.Wrap(err, "batch: house_count")
		}
	}

	if verr := in.Validate(); verr != nil {
		return reality.Input{}, verr
	}
	return in, nil
}

func parseAmount(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// processBatch analyzes rows concurrently. Bad rows do not abort the batch;
// they surface in the results with their error.
func processBatch(ctx context.Context, rows []batchRow, concurrency int, analyze func(reality.Input) reality.Result) ([]batchResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("rows", len(rows)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]batchResult, len(rows))
	var succeeded, failed atomic.Int64

	for i, row := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if row.err != nil {
				failed.Add(1)
				zap.L().Warn("skipping row", zap.Int("line", row.line), zap.Error(row.err))
				results[i] = batchResult{row: row}
				return nil
			}
			results[i] = batchResult{row: row, result: analyze(row.input), ok: true}
			succeeded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return results, nil
}

func writeBatchCSV(w io.Writer, results []batchResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"line", "region", "target_price", "score", "grade", "max_loan_amount", "gap_amount", "monthly_repayment", "dsr_percentage", "error"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "batch: write CSV header")
	}

	for _, res := range results {
		row := make([]string, len(header))
		row[0] = strconv.Itoa(res.row.line)
		row[1] = res.row.input.Region
		if res.ok {
			r := res.result
			row[2] = strconv.FormatInt(r.Analysis.TargetPrice, 10)
			row[3] = strconv.Itoa(r.Score)
			row[4] = r.Grade
			row[5] = strconv.FormatInt(r.Analysis.MaxLoanAmount, 10)
			row[6] = strconv.FormatInt(r.Analysis.GapAmount, 10)
			row[7] = strconv.FormatInt(r.Analysis.MonthlyRepayment, 10)
			row[8] = fmt.Sprintf("%.2f", r.Analysis.DSRPercentage)
		} else {
			row[9] = res.row.err.Error()
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "batch: write CSV row")
		}
	}
	return nil
}
