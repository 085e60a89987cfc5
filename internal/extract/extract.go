// Package extract loads the NEO CSV and close-approach JSON datasets into
// domain entities.
//
// Per-record validation failures are a data-quality condition, not a fatal
// one: the offending record is logged at Warn, counted in the skip metric,
// and the load continues. I/O failures and malformed files abort the load
// with an error.
package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/orbitwatch/neoquery/internal/domain"
	"github.com/orbitwatch/neoquery/internal/observability"
)

// Loader reads the two datasets with shared logging and metrics.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics

	// SkippedNEOs and SkippedApproaches count records dropped by validation
	// across this Loader's lifetime, for data-quality reporting.
	SkippedNEOs       int
	SkippedApproaches int
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// neoColumns are the CSV header names the NEO dataset must carry. The name
// column is optional in older exports.
var neoColumns = []string{"pdes", "diameter", "hazardous"}

// LoadNEOs reads NEO records from a headered CSV file, in file order.
func (l *Loader) LoadNEOs(path string) ([]*domain.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open neo csv: %w", err)
	}
	defer f.Close()

	return l.readNEOs(f)
}

func (l *Loader) readNEOs(r io.Reader) ([]*domain.NearEarthObject, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read neo csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range neoColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("neo csv: missing column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var neos []*domain.NearEarthObject
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read neo csv: %w", err)
		}

		neo, err := domain.NewNearEarthObject(domain.NEORecord{
			Designation: field(row, "pdes"),
			Name:        field(row, "name"),
			Diameter:    field(row, "diameter"),
			Hazardous:   field(row, "hazardous"),
		})
		if err != nil {
			l.skip("neos", line, err)
			continue
		}
		neos = append(neos, neo)
	}

	l.metrics.NEOsLoaded.Add(float64(len(neos)))
	l.logger.Info("neo dataset loaded", "count", len(neos))
	return neos, nil
}

// approachJSON mirrors one entry of the CAD export. Values appear as JSON
// strings in raw CAD exports and as numbers in post-processed ones, so the
// numeric fields tolerate both.
type approachJSON struct {
	Designation string    `json:"designation"`
	Time        string    `json:"time"`
	Distance    flexValue `json:"distance"`
	Velocity    flexValue `json:"velocity"`
}

// flexValue captures a JSON value that may be a string or a number, keeping
// its raw decimal text for coercion in the domain constructor.
type flexValue string

func (v *flexValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = flexValue(s)
		return nil
	}
	*v = flexValue(bytes.TrimSpace(data))
	return nil
}

// LoadApproaches reads close-approach records from a JSON array file, in
// file order.
func (l *Loader) LoadApproaches(path string) ([]*domain.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cad json: %w", err)
	}
	defer f.Close()

	return l.readApproaches(f)
}

func (l *Loader) readApproaches(r io.Reader) ([]*domain.CloseApproach, error) {
	var rows []approachJSON
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode cad json: %w", err)
	}

	approaches := make([]*domain.CloseApproach, 0, len(rows))
	for i, row := range rows {
		ca, err := domain.NewCloseApproach(domain.ApproachRecord{
			Designation: row.Designation,
			Time:        row.Time,
			Distance:    string(row.Distance),
			Velocity:    string(row.Velocity),
		})
		if err != nil {
			l.skip("approaches", i, err)
			continue
		}
		approaches = append(approaches, ca)
	}

	l.metrics.ApproachesLoaded.Add(float64(len(approaches)))
	l.logger.Info("approach dataset loaded", "count", len(approaches))
	return approaches, nil
}

func (l *Loader) skip(dataset string, position int, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		l.logger.Warn("record failed validation, skipping",
			"dataset", dataset,
			"position", position,
			"field", verr.Field,
			"reason", verr.Reason,
		)
	} else {
		l.logger.Warn("record failed validation, skipping",
			"dataset", dataset, "position", position, "error", err)
	}
	l.metrics.RecordsSkipped.WithLabelValues(dataset).Inc()
	if dataset == "neos" {
		l.SkippedNEOs++
	} else {
		l.SkippedApproaches++
	}
}
