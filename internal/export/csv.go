package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/orbitwatch/neoquery/internal/domain"
)

// WriteCSV writes results as CSV with a header row, one flattened row per
// approach.
func WriteCSV(w io.Writer, results Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Fieldnames); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for ca := range results {
		if err := cw.Write(csvRow(ca)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(ca *domain.CloseApproach) []string {
	row := flatten(ca)
	out := make([]string, len(Fieldnames))
	for i, name := range Fieldnames {
		switch v := row[name].(type) {
		case string:
			out[i] = v
		case float64:
			out[i] = formatFloat(v)
		case bool:
			out[i] = strconv.FormatBool(v)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
