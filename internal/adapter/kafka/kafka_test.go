package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mw := 1552.0
	record := domain.PlantRecord{
		ID:          "csv-7",
		Name:        "Central Nuclear Laguna Verde",
		Owner:       "CFE",
		Sector:      domain.SectorPublic,
		PowerMW:     &mw,
		Category:    domain.CategoryNuclear,
		Subcategory: "nuclear",
		Geo:         &domain.Geo{Lat: 19.72, Lon: -96.40},
		State:       "Veracruz",
		Origin:      domain.OriginUserCSV,
		IngestedAt:  now,
	}

	msg, err := serializeToMessage(record)
	require.NoError(t, err)

	assert.Equal(t, []byte("csv-7"), msg.Key)
	assert.Contains(t, string(msg.Value), `"energy_category":"nuclear"`)
	assert.Contains(t, string(msg.Value), `"power_mw":1552`)

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "energy_category", msg.Headers[0].Key)
	assert.Equal(t, []byte("nuclear"), msg.Headers[0].Value)
	assert.Equal(t, "source_origin", msg.Headers[1].Key)
	assert.Equal(t, []byte("user_csv"), msg.Headers[1].Value)
	assert.Equal(t, "ingested_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}
