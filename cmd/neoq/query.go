package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoquery/internal/export"
	"github.com/orbitwatch/neoquery/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches with filters",
	Long: `Query the close-approach collection. All filters are optional and combine
as a conjunction; bounds are inclusive. Dates compare the calendar date only.

Without --outfile, matching approaches are printed to stdout, capped at
--limit (default from DEFAULT_LIMIT, normally 10). With --outfile, every
match is written and the format follows the extension (.csv, .json, .xlsx)
unless --limit is given explicitly.

Examples:
  neoq query --date 1900-12-27
  neoq query --start-date 2020-01-01 --end-date 2020-12-31 --max-distance 0.025
  neoq query --hazardous --min-velocity 30 --outfile fast_and_hazardous.json`,
	RunE: runQuery,
}

var (
	queryDate      string
	queryStartDate string
	queryEndDate   string

	queryMinDistance float64
	queryMaxDistance float64
	queryMinVelocity float64
	queryMaxVelocity float64
	queryMinDiameter float64
	queryMaxDiameter float64

	queryHazardous    bool
	queryNotHazardous bool

	queryLimit   int
	queryOutfile string
)

func init() {
	rootCmd.AddCommand(queryCmd)

	f := queryCmd.Flags()
	f.StringVar(&queryDate, "date", "", "only approaches on this date (YYYY-MM-DD)")
	f.StringVar(&queryStartDate, "start-date", "", "only approaches on or after this date (YYYY-MM-DD)")
	f.StringVar(&queryEndDate, "end-date", "", "only approaches on or before this date (YYYY-MM-DD)")
	f.Float64Var(&queryMinDistance, "min-distance", 0, "only approaches at or beyond this distance (au)")
	f.Float64Var(&queryMaxDistance, "max-distance", 0, "only approaches at or within this distance (au)")
	f.Float64Var(&queryMinVelocity, "min-velocity", 0, "only approaches at or above this velocity (km/s)")
	f.Float64Var(&queryMaxVelocity, "max-velocity", 0, "only approaches at or below this velocity (km/s)")
	f.Float64Var(&queryMinDiameter, "min-diameter", 0, "only approaches of NEOs at least this large (km)")
	f.Float64Var(&queryMaxDiameter, "max-diameter", 0, "only approaches of NEOs at most this large (km)")
	f.BoolVar(&queryHazardous, "hazardous", false, "only approaches of potentially hazardous NEOs")
	f.BoolVar(&queryNotHazardous, "not-hazardous", false, "only approaches of NEOs not marked hazardous")
	f.IntVar(&queryLimit, "limit", 0, "maximum results (0 = default cap on stdout, unlimited to a file)")
	f.StringVar(&queryOutfile, "outfile", "", "write results to this file (.csv, .json, or .xlsx)")

	queryCmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
}

// buildCriteria maps the flag set to the query options structure. pflag
// cannot distinguish an unset numeric flag from an explicit zero, so Changed
// gates every optional dimension.
func buildCriteria(cmd *cobra.Command) (query.Criteria, error) {
	var c query.Criteria

	dates := []struct {
		flag string
		raw  string
		dst  **time.Time
	}{
		{"date", queryDate, &c.Date},
		{"start-date", queryStartDate, &c.StartDate},
		{"end-date", queryEndDate, &c.EndDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		t, err := query.ParseDate(d.raw)
		if err != nil {
			return query.Criteria{}, fmt.Errorf("flag --%s: expected YYYY-MM-DD, got %q", d.flag, d.raw)
		}
		*d.dst = &t
	}

	floats := []struct {
		flag  string
		value float64
		dst   **float64
	}{
		{"min-distance", queryMinDistance, &c.MinDistance},
		{"max-distance", queryMaxDistance, &c.MaxDistance},
		{"min-velocity", queryMinVelocity, &c.MinVelocity},
		{"max-velocity", queryMaxVelocity, &c.MaxVelocity},
		{"min-diameter", queryMinDiameter, &c.MinDiameter},
		{"max-diameter", queryMaxDiameter, &c.MaxDiameter},
	}
	for _, fl := range floats {
		if !cmd.Flags().Changed(fl.flag) {
			continue
		}
		v := fl.value
		*fl.dst = &v
	}

	if queryHazardous {
		v := true
		c.Hazardous = &v
	}
	if queryNotHazardous {
		v := false
		c.Hazardous = &v
	}

	return c, nil
}

func runQuery(cmd *cobra.Command, _ []string) error {
	criteria, err := buildCriteria(cmd)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	limit := queryLimit
	if limit == 0 && queryOutfile == "" {
		limit = a.cfg.DefaultLimit
	}
	results := query.Limit(a.db.Query(criteria.Filters()...), limit)

	if queryOutfile != "" {
		if err := export.WriteFile(queryOutfile, results); err != nil {
			return err
		}
		a.logger.Info("results written", "outfile", queryOutfile)
		return nil
	}

	matched := false
	for ca := range results {
		matched = true
		fmt.Fprintln(cmd.OutOrStdout(), ca)
	}
	if !matched {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching close approaches.")
	}
	return nil
}
