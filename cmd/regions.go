package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/loganko83/realcare/internal/region"
)

var (
	regionsFormat string
	regionsOutput string
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regulation zone table",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		w := os.Stdout
		if regionsOutput != "" {
			w, err = os.Create(regionsOutput)
			if err != nil {
				return eris.Wrapf(err, "regions: create output file %s", regionsOutput)
			}
			defer w.Close() //nolint:errcheck
		}

		switch regionsFormat {
		case "csv":
			return writeRegionsCSV(w, catalog.List())
		case "table":
			return writeRegionsTable(w, catalog.List())
		default:
			return eris.Errorf("regions: unsupported format %q", regionsFormat)
		}
	},
}

func init() {
	regionsCmd.Flags().StringVar(&regionsFormat, "format", "table", "output format: table or csv")
	regionsCmd.Flags().StringVar(&regionsOutput, "output", "", "output file path (default: stdout)")
	rootCmd.AddCommand(regionsCmd)
}

func writeRegionsTable(w io.Writer, profiles []region.Profile) error {
	header := fmt.Sprintf("%-12s %-16s %-12s %6s %6s %6s\n",
		"ID", "Name", "Zone", "First", "One", "Multi")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "regions: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 62)); err != nil {
		return eris.Wrap(err, "regions: write table separator")
	}

	for _, p := range profiles {
		line := fmt.Sprintf("%-12s %-16s %-12s %6d %6d %6d\n",
			p.ID, p.Name, p.Zone(), p.LTVLimit(true, 0), p.LTVLimit(false, 1), p.LTVLimit(false, 2))
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "regions: write table row")
		}
	}
	return nil
}

func writeRegionsCSV(w io.Writer, profiles []region.Profile) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "name", "zone", "ltv_first_home", "ltv_one_home", "ltv_multi_home", "aliases"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "regions: write CSV header")
	}

	for _, p := range profiles {
		row := []string{
			p.ID,
			p.Name,
			p.Zone(),
			strconv.Itoa(p.LTVLimit(true, 0)),
			strconv.Itoa(p.LTVLimit(false, 1)),
			strconv.Itoa(p.LTVLimit(false, 2)),
			strings.Join(p.Aliases, "|"),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "regions: write CSV row")
		}
	}
	return nil
}
