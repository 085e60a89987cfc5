package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report data-quality statistics for the loaded datasets",
	Long: `Load both datasets, link the database, and print a data-quality report:
record counts, validation skips, placeholder links, duplicate names, and the
covered date range.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var (
		named    int
		dupNames int
		seen     = make(map[string]bool)
	)
	for _, neo := range a.db.NEOs() {
		if neo.Name == "" {
			continue
		}
		named++
		if seen[neo.Name] {
			// Shadowed in the name index: last-write-wins.
			dupNames++
		}
		seen[neo.Name] = true
	}

	var (
		hazardous int
		unknownD  int
		first     time.Time
		last      time.Time
	)
	for ca := range a.db.Query() {
		if ca.NEO.Hazardous {
			hazardous++
		}
		if math.IsNaN(ca.NEO.Diameter) {
			unknownD++
		}
		if first.IsZero() || ca.Time.Before(first) {
			first = ca.Time
		}
		if ca.Time.After(last) {
			last = ca.Time
		}
	}

	fmt.Fprintf(out, "NEOs loaded:          %d (%d skipped)\n",
		a.db.NEOCount()-a.db.PlaceholderCount(), a.loader.SkippedNEOs)
	fmt.Fprintf(out, "Named NEOs:           %d (%d duplicate names)\n", named, dupNames)
	fmt.Fprintf(out, "Approaches loaded:    %d (%d skipped)\n",
		a.db.ApproachCount(), a.loader.SkippedApproaches)
	fmt.Fprintf(out, "Placeholder NEOs:     %d\n", a.db.PlaceholderCount())
	fmt.Fprintf(out, "Hazardous approaches: %d\n", hazardous)
	fmt.Fprintf(out, "Unknown diameters:    %d approaches\n", unknownD)
	if !first.IsZero() {
		fmt.Fprintf(out, "Date range:           %s to %s\n",
			first.UTC().Format("2006-01-02"), last.UTC().Format("2006-01-02"))
	}
	return nil
}
