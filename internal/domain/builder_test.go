package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCSVRow builds a 19-field row with the positional layout of a centrales
// export, leaving unused columns empty.
func makeCSVRow(name, operator, technology, fuel, parent, sector, capacity, state, x, y string) []string {
	row := make([]string, 19)
	row[colName] = name
	row[colOperator] = operator
	row[colTechnology] = technology
	row[colFuel] = fuel
	row[colParent] = parent
	row[colSector] = sector
	row[colCapacity] = capacity
	row[colState] = state
	row[colX] = x
	row[colY] = y
	return row
}

func TestBuildCSVRecord(t *testing.T) {
	frozen := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	t.Run("full row", func(t *testing.T) {
		row := makeCSVRow("Planta X", "CFE", "Ciclo Combinado", "Gas Natural", "", "Público", "500", "Veracruz", "-10733000", "2200000")

		rec, err := BuildCSVRecord(row, 1, OriginUserCSV)
		require.NoError(t, err)

		assert.Equal(t, "csv-1", rec.ID)
		assert.Equal(t, "Planta X", rec.Name)
		assert.Equal(t, "CFE", rec.Operator)
		assert.Equal(t, "CFE", rec.Owner) // no parent company: owner falls back to operator
		assert.Equal(t, SectorPublic, rec.Sector)
		require.NotNil(t, rec.PowerMW)
		assert.InDelta(t, 500, *rec.PowerMW, 1e-9)
		assert.Equal(t, CategoryThermal, rec.Category)
		assert.Contains(t, rec.Subcategory, "combined cycle")
		assert.Contains(t, rec.Subcategory, "(natural gas)")
		assert.Equal(t, "Gas Natural", rec.RawFuel)
		assert.Equal(t, "Ciclo Combinado", rec.RawMethod)
		require.NotNil(t, rec.Geo)
		assert.InDelta(t, 19.386, rec.Geo.Lat, 0.01)
		assert.InDelta(t, -96.416, rec.Geo.Lon, 0.01)
		assert.Equal(t, "Veracruz", rec.State)
		assert.Equal(t, OriginUserCSV, rec.Origin)
		assert.Equal(t, frozen, rec.IngestedAt)
	})

	t.Run("parent company becomes owner", func(t *testing.T) {
		row := makeCSVRow("Parque Eólico", "Operadora del Istmo", "Eólica", "", "Acciona", "", "100", "Oaxaca", "", "")

		rec, err := BuildCSVRecord(row, 3, OriginUserCSV)
		require.NoError(t, err)

		assert.Equal(t, "Acciona", rec.Owner)
		assert.Equal(t, SectorPrivate, rec.Sector)
		assert.Equal(t, CategoryWind, rec.Category)
	})

	t.Run("unparseable values become absent fields", func(t *testing.T) {
		row := makeCSVRow("Planta Y", "", "", "", "", "", "N/D", "Sonora", "", "sin dato")

		rec, err := BuildCSVRecord(row, 2, OriginBundledCSV)
		require.NoError(t, err)

		assert.Nil(t, rec.PowerMW)
		assert.Nil(t, rec.Geo)
		assert.Equal(t, CategoryOther, rec.Category)
		assert.Equal(t, SectorUndetermined, rec.Sector)
	})

	t.Run("short row rejected", func(t *testing.T) {
		_, err := BuildCSVRecord(make([]string, 10), 1, OriginUserCSV)
		require.ErrorIs(t, err, ErrShortRow)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		row := makeCSVRow("   ", "CFE", "", "", "", "", "", "", "", "")
		_, err := BuildCSVRecord(row, 1, OriginUserCSV)
		require.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestBuildCatalogRecord(t *testing.T) {
	frozen := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	classifier := NewPatternClassifier(nil)

	t.Run("typed entry", func(t *testing.T) {
		mw := 2778.0
		e := CatalogEntry{
			ID:         "oim-109686948",
			Name:       "Central Termoeléctrica Plutarco Elías Calles",
			Operator:   "Comisión Federal de Electricidad",
			PowerMW:    &mw,
			Source:     "coal",
			Method:     "combustion",
			WikidataID: "Q19818968",
			Geo:        &Geo{Lat: 17.99, Lon: -102.10},
			State:      "Guerrero",
		}

		rec := BuildCatalogRecord(e, classifier)

		assert.Equal(t, "oim-109686948", rec.ID)
		assert.Equal(t, SectorPublic, rec.Sector)
		assert.Equal(t, CategoryThermal, rec.Category)
		assert.Contains(t, rec.Subcategory, "(coal)")
		assert.Equal(t, "Q19818968", rec.ExternalID)
		assert.Equal(t, OriginCatalog, rec.Origin)
		assert.Equal(t, frozen, rec.IngestedAt)
	})

	t.Run("empty name gets placeholder", func(t *testing.T) {
		rec := BuildCatalogRecord(CatalogEntry{ID: "oim-1", Source: "gas"}, classifier)
		assert.Equal(t, PlaceholderName, rec.Name)
	})

	t.Run("never rejected", func(t *testing.T) {
		rec := BuildCatalogRecord(CatalogEntry{ID: "oim-2"}, classifier)
		assert.Equal(t, CategoryOther, rec.Category)
		assert.Equal(t, SectorUndetermined, rec.Sector)
	})
}
