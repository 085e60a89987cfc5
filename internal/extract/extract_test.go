package extract

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/neoquery/internal/observability"
)

const neoCSV = `pdes,name,diameter,hazardous
433,Eros,16.84,N
2010 PK9,,,Y
,Nameless,1.0,N
1P,Halley,11,N
`

const cadJSON = `[
  {"designation": "433", "time": "1900-Dec-27 01:30", "distance": "0.15", "velocity": "6.65"},
  {"designation": "2010 PK9", "time": "2020-Jul-14 12:00", "distance": 0.02, "velocity": 19.5},
  {"designation": "1P", "time": "not a time", "distance": "0.58", "velocity": "55.4"},
  {"designation": "1P", "time": "2061-Jul-28 00:00", "distance": "0.58", "velocity": "55.4"}
]`

func newTestLoader() *Loader {
	return NewLoader(slog.Default(), observability.NewMetricsForTesting())
}

func TestReadNEOs(t *testing.T) {
	l := newTestLoader()

	neos, err := l.readNEOs(strings.NewReader(neoCSV))
	require.NoError(t, err)

	// The row with no designation is skipped, not fatal.
	require.Len(t, neos, 3)
	assert.Equal(t, 1, l.SkippedNEOs)

	assert.Equal(t, "433", neos[0].Designation)
	assert.Equal(t, "Eros", neos[0].Name)
	assert.Equal(t, 16.84, neos[0].Diameter)

	assert.Equal(t, "2010 PK9", neos[1].Designation)
	assert.Empty(t, neos[1].Name)
	assert.True(t, math.IsNaN(neos[1].Diameter))
	assert.True(t, neos[1].Hazardous)
}

func TestReadNEOs_MissingColumn(t *testing.T) {
	l := newTestLoader()

	_, err := l.readNEOs(strings.NewReader("pdes,name\n433,Eros\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "diameter")
}

func TestReadApproaches(t *testing.T) {
	l := newTestLoader()

	approaches, err := l.readApproaches(strings.NewReader(cadJSON))
	require.NoError(t, err)

	// The entry with an unparseable time is skipped, not fatal.
	require.Len(t, approaches, 3)
	assert.Equal(t, 1, l.SkippedApproaches)

	// String-typed and number-typed values both coerce.
	assert.Equal(t, 0.15, approaches[0].Distance)
	assert.Equal(t, 0.02, approaches[1].Distance)
	assert.Equal(t, 19.5, approaches[1].Velocity)

	// File order preserved.
	assert.Equal(t, []string{"433", "2010 PK9", "1P"},
		[]string{approaches[0].Designation, approaches[1].Designation, approaches[2].Designation})
}

func TestReadApproaches_MalformedJSON(t *testing.T) {
	l := newTestLoader()

	_, err := l.readApproaches(strings.NewReader("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode cad json")
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	neoPath := filepath.Join(dir, "neos.csv")
	cadPath := filepath.Join(dir, "cad.json")
	require.NoError(t, os.WriteFile(neoPath, []byte(neoCSV), 0o644))
	require.NoError(t, os.WriteFile(cadPath, []byte(cadJSON), 0o644))

	l := newTestLoader()

	neos, err := l.LoadNEOs(neoPath)
	require.NoError(t, err)
	assert.Len(t, neos, 3)

	approaches, err := l.LoadApproaches(cadPath)
	require.NoError(t, err)
	assert.Len(t, approaches, 3)
}

func TestLoad_MissingFiles(t *testing.T) {
	l := newTestLoader()

	_, err := l.LoadNEOs(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	_, err = l.LoadApproaches(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
