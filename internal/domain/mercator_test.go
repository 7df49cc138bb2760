package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMercatorToLatLon(t *testing.T) {
	t.Run("origin maps to origin", func(t *testing.T) {
		geo, ok := MercatorToLatLon(0, 0)
		require.True(t, ok)
		assert.InDelta(t, 0, geo.Lat, 1e-9)
		assert.InDelta(t, 0, geo.Lon, 1e-9)
	})

	t.Run("veracruz coast", func(t *testing.T) {
		geo, ok := MercatorToLatLon(-10733000, 2200000)
		require.True(t, ok)
		assert.InDelta(t, 19.386, geo.Lat, 0.01)
		assert.InDelta(t, -96.416, geo.Lon, 0.01)
	})

	t.Run("mexico bounding region", func(t *testing.T) {
		// Realistic Web Mercator pairs across the country must land inside
		// Mexico's approximate envelope: 14-33N, -118 to -86E.
		pairs := [][2]float64{
			{-12860000, 3650000}, // Tijuana area
			{-11131000, 2913000}, // Monterrey area
			{-11035000, 2205000}, // Mexico City area
			{-9927000, 2385000},  // Mérida area
			{-10318000, 1850000}, // Tuxtla area
		}
		for _, p := range pairs {
			geo, ok := MercatorToLatLon(p[0], p[1])
			require.True(t, ok)
			assert.GreaterOrEqual(t, geo.Lat, 14.0)
			assert.LessOrEqual(t, geo.Lat, 33.0)
			assert.GreaterOrEqual(t, geo.Lon, -118.0)
			assert.LessOrEqual(t, geo.Lon, -86.0)
		}
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, ok := MercatorToLatLon(25000000, 0)
		assert.False(t, ok)
	})
}

func TestReprojectMercator(t *testing.T) {
	t.Run("string pair", func(t *testing.T) {
		geo, ok := ReprojectMercator("-10733000", "2200000")
		require.True(t, ok)
		assert.InDelta(t, 19.386, geo.Lat, 0.01)
		assert.InDelta(t, -96.416, geo.Lon, 0.01)
	})

	t.Run("absent x makes location absent", func(t *testing.T) {
		_, ok := ReprojectMercator("N/D", "2200000")
		assert.False(t, ok)
	})

	t.Run("absent y makes location absent", func(t *testing.T) {
		_, ok := ReprojectMercator("-10733000", "")
		assert.False(t, ok)
	})
}
