package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/orbitwatch/neoquery/internal/adapter/http"
	"github.com/orbitwatch/neoquery/internal/domain"
	"github.com/orbitwatch/neoquery/internal/neodb"
	"github.com/orbitwatch/neoquery/internal/observability"
)

func newTestServer(t *testing.T) *httpadapter.Server {
	t.Helper()

	eros, err := domain.NewNearEarthObject(domain.NEORecord{
		Designation: "433", Name: "Eros", Diameter: "16.84", Hazardous: "N",
	})
	require.NoError(t, err)
	pk9, err := domain.NewNearEarthObject(domain.NEORecord{
		Designation: "2010 PK9", Hazardous: "Y",
	})
	require.NoError(t, err)

	var approaches []*domain.CloseApproach
	for _, rec := range []domain.ApproachRecord{
		{Designation: "433", Time: "1900-Dec-27 01:30", Distance: "0.15", Velocity: "6.65"},
		{Designation: "2010 PK9", Time: "2020-Jul-14 12:00", Distance: "0.02", Velocity: "19.5"},
		{Designation: "433", Time: "2031-Jan-02 10:15", Distance: "0.18", Velocity: "5.92"},
	} {
		ca, err := domain.NewCloseApproach(rec)
		require.NoError(t, err)
		approaches = append(approaches, ca)
	}

	db := neodb.New([]*domain.NearEarthObject{eros, pk9}, approaches)
	return httpadapter.NewServer(":0", db, observability.NewMetricsForTesting(), slog.Default())
}

func get(t *testing.T, srv *httpadapter.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReportsDatasetCounts(t *testing.T) {
	rec := get(t, newTestServer(t), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, float64(2), body["neos"])
	assert.Equal(t, float64(3), body["approaches"])
}

func TestApproaches_NoFiltersReturnsAll(t *testing.T) {
	rec := get(t, newTestServer(t), "/approaches")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 3)
	assert.Equal(t, "1900-12-27 01:30", body[0]["datetime_utc"])
}

func TestApproaches_FiltersAndLimit(t *testing.T) {
	srv := newTestServer(t)

	t.Run("date filter", func(t *testing.T) {
		rec := get(t, srv, "/approaches?date=1900-12-27")

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		neo := body[0]["neo"].(map[string]any)
		assert.Equal(t, "433", neo["designation"])
	})

	t.Run("hazardous filter", func(t *testing.T) {
		rec := get(t, srv, "/approaches?hazardous=true")

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "2020-07-14 12:00", body[0]["datetime_utc"])
	})

	t.Run("limit truncates", func(t *testing.T) {
		rec := get(t, srv, "/approaches?limit=2")

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("no matches yields empty array", func(t *testing.T) {
		rec := get(t, srv, "/approaches?min_velocity=100")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestApproaches_BadParameters(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/approaches?date=12/27/1900",
		"/approaches?min_distance=near",
		"/approaches?hazardous=maybe",
		"/approaches?limit=-1",
		"/approaches?limit=ten",
	} {
		rec := get(t, srv, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestNEOLookup(t *testing.T) {
	srv := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		rec := get(t, srv, "/neo/433")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "433 (Eros)", body["fullname"])
		assert.Equal(t, float64(2), body["approach_count"])
	})

	t.Run("unknown diameter is null", func(t *testing.T) {
		rec := get(t, srv, "/neo/2010%20PK9")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Nil(t, body["diameter_km"])
	})

	t.Run("not found", func(t *testing.T) {
		rec := get(t, srv, "/neo/99999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
