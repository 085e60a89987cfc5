package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNearEarthObject(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		neo, err := NewNearEarthObject(NEORecord{
			Designation: "433",
			Name:        "Eros",
			Diameter:    "16.84",
			Hazardous:   "N",
		})

		require.NoError(t, err)
		assert.Equal(t, "433", neo.Designation)
		assert.Equal(t, "Eros", neo.Name)
		assert.Equal(t, 16.84, neo.Diameter)
		assert.False(t, neo.Hazardous)
		assert.Empty(t, neo.Approaches)
	})

	t.Run("missing designation", func(t *testing.T) {
		_, err := NewNearEarthObject(NEORecord{Name: "Eros"})

		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "designation", verr.Field)
	})

	t.Run("designation normalized", func(t *testing.T) {
		neo, err := NewNearEarthObject(NEORecord{Designation: "  2002 pb \t"})

		require.NoError(t, err)
		assert.Equal(t, "2002 PB", neo.Designation)
	})

	t.Run("missing name resolves to empty", func(t *testing.T) {
		neo, err := NewNearEarthObject(NEORecord{Designation: "2010 PK9", Hazardous: "Y"})

		require.NoError(t, err)
		assert.Empty(t, neo.Name)
		assert.True(t, neo.Hazardous)
	})

	t.Run("missing diameter becomes NaN, not zero", func(t *testing.T) {
		neo, err := NewNearEarthObject(NEORecord{Designation: "2010 PK9"})

		require.NoError(t, err)
		assert.True(t, math.IsNaN(neo.Diameter))
	})

	t.Run("unparseable diameter becomes NaN, never errors", func(t *testing.T) {
		neo, err := NewNearEarthObject(NEORecord{Designation: "433", Diameter: "big"})

		require.NoError(t, err)
		assert.True(t, math.IsNaN(neo.Diameter))
	})

	t.Run("hazardous flag variants", func(t *testing.T) {
		tests := []struct {
			raw  string
			want bool
		}{
			{"Y", true},
			{"N", false},
			{"", false},
			{"y", false}, // the dataset uses uppercase only
		}
		for _, tt := range tests {
			neo, err := NewNearEarthObject(NEORecord{Designation: "433", Hazardous: tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.want, neo.Hazardous, "hazardous=%q", tt.raw)
		}
	})
}

func TestNearEarthObject_Fullname(t *testing.T) {
	named := &NearEarthObject{Designation: "433", Name: "Eros"}
	assert.Equal(t, "433 (Eros)", named.Fullname())

	unnamed := &NearEarthObject{Designation: "2010 PK9"}
	assert.Equal(t, "2010 PK9", unnamed.Fullname())
}

func TestNearEarthObject_String(t *testing.T) {
	t.Run("known diameter", func(t *testing.T) {
		neo := &NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84}
		assert.Equal(t,
			"NEO 433 (Eros) has a diameter of 16.840 km and is not potentially hazardous.",
			neo.String())
	})

	t.Run("unknown diameter", func(t *testing.T) {
		neo := &NearEarthObject{Designation: "2010 PK9", Diameter: math.NaN(), Hazardous: true}
		assert.Equal(t, "NEO 2010 PK9, is potentially hazardous.", neo.String())
	})
}

func TestNearEarthObject_Serialize(t *testing.T) {
	neo := &NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84, Hazardous: false}

	got := neo.Serialize()

	assert.Equal(t, map[string]any{
		"designation":           "433",
		"name":                  "Eros",
		"diameter_km":           16.84,
		"potentially_hazardous": false,
	}, got)
	assert.NotContains(t, got, "approaches", "serialization must stay acyclic")
}
