package neodb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orbitwatch/neoquery/internal/domain"
	"github.com/orbitwatch/neoquery/internal/neodb"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func collect(db *neodb.Database, filters ...neodb.Filter) []*domain.CloseApproach {
	var out []*domain.CloseApproach
	for ca := range db.Query(filters...) {
		out = append(out, ca)
	}
	return out
}

func TestDateFilters_CompareCalendarDateOnly(t *testing.T) {
	db := testDatabase(t)

	t.Run("equality matches regardless of time of day", func(t *testing.T) {
		got := collect(db, neodb.DateEquals(date(1900, time.December, 27)))
		assert.Len(t, got, 1)
		assert.Equal(t, "1900-12-27 01:30", got[0].TimeStr())
	})

	t.Run("bounds are inclusive of their boundary dates", func(t *testing.T) {
		got := collect(db,
			neodb.DateOnOrAfter(date(2020, time.July, 14)),
			neodb.DateOnOrBefore(date(2029, time.April, 13)),
		)
		assert.Len(t, got, 2) // 2020-07-14 12:00 and 2029-04-13 21:46
	})

	t.Run("no matches yields an empty sequence, not an error", func(t *testing.T) {
		got := collect(db, neodb.DateEquals(date(1899, time.January, 1)))
		assert.Empty(t, got)
	})
}

func TestDistanceAndVelocityBoundsAreInclusive(t *testing.T) {
	db := testDatabase(t)

	assert.Len(t, collect(db, neodb.MinDistance(0.15)), 2) // 0.15 and 0.18
	assert.Len(t, collect(db, neodb.MaxDistance(0.15)), 3) // 0.15, 0.02, 0.00025
	assert.Len(t, collect(db, neodb.MinVelocity(6.65)), 3) // 6.65, 19.5, 7.42
	assert.Len(t, collect(db, neodb.MaxVelocity(6.65)), 2) // 6.65, 5.92
}

func TestDiameterBoundsNeverMatchUnknownDiameter(t *testing.T) {
	db := testDatabase(t)

	// 2010 PK9 and the placeholder 99942 have NaN diameters; a bound any
	// finite diameter would satisfy must still exclude them.
	var got []string
	for _, ca := range collect(db, neodb.MinDiameter(0)) {
		got = append(got, ca.Designation)
	}
	assert.Equal(t, []string{"433", "433"}, got)

	got = nil
	for _, ca := range collect(db, neodb.MaxDiameter(1e9)) {
		got = append(got, ca.Designation)
	}
	assert.Equal(t, []string{"433", "433"}, got)
}

func TestHazardousPartitionsTheCollection(t *testing.T) {
	db := testDatabase(t)

	hazardous := collect(db, neodb.Hazardous(true))
	safe := collect(db, neodb.Hazardous(false))

	for _, ca := range hazardous {
		assert.True(t, ca.NEO.Hazardous)
	}
	for _, ca := range safe {
		assert.False(t, ca.NEO.Hazardous)
	}

	// Disjoint union covers the whole collection.
	assert.Equal(t, db.ApproachCount(), len(hazardous)+len(safe))
}
