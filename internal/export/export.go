// Package export writes a stream of query results to CSV, JSON, or XLSX.
//
// Each output row flattens one close approach with its linked NEO. The column
// set and ordering are a stable external contract:
//
//	datetime_utc, distance_au, velocity_km_s,
//	designation, name, diameter_km, potentially_hazardous
//
// Floats are written with three decimal places. An absent name becomes the
// empty string; an unknown diameter becomes "nan" in CSV/XLSX and null in
// JSON.
package export

import (
	"fmt"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/orbitwatch/neoquery/internal/domain"
)

// Fieldnames is the flattened output schema, in column order.
var Fieldnames = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// Results is the lazy stream of close approaches produced by a query.
type Results = iter.Seq[*domain.CloseApproach]

// WriteFile writes results to path, choosing the format from the extension:
// .csv, .json, or .xlsx.
func WriteFile(path string, results Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = WriteCSV(f, results)
	case ".json":
		err = WriteJSON(f, results)
	case ".xlsx":
		err = WriteXLSX(f, results)
	default:
		err = fmt.Errorf("unsupported output extension %q (want .csv, .json, or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// flatten merges an approach's serialization with its NEO's, matching the
// flattened schema in Fieldnames.
func flatten(ca *domain.CloseApproach) map[string]any {
	row := ca.Serialize()
	for k, v := range ca.NEO.Serialize() {
		row[k] = v
	}
	return row
}

// formatFloat renders a float with the contract's three decimal places.
// NaN renders as "nan", which strconv.ParseFloat round-trips.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
