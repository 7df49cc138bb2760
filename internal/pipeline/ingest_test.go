package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
	"github.com/Leonidas-cyber/energia-Mexico/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestIngestor() *Ingestor {
	return New(nil, testLogger(), observability.NewMetricsForTesting())
}

// csvRow builds a semicolon-delimited 19-column data row with the given
// positional overrides.
func csvRow(overrides map[int]string) string {
	fields := make([]string, 19)
	for i, v := range overrides {
		fields[i] = v
	}
	return strings.Join(fields, ";")
}

func sampleCSV() string {
	header := csvRow(map[int]string{0: "nombre", 1: "operador", 2: "tecnologia", 4: "energetico", 5: "empresa", 6: "sector", 8: "capacidad_mw", 12: "estado", 17: "x", 18: "y"})
	row1 := csvRow(map[int]string{
		0: "CT Adolfo López Mateos", 1: "CFE", 2: "Termoeléctrica", 4: "Combustóleo",
		6: "Público", 8: "2.100,00", 12: "Veracruz", 17: "-10733000", 18: "2200000",
	})
	row2 := csvRow(map[int]string{
		0: "Parque Solar Ticul", 1: "SunPower de México", 2: "Fotovoltaica", 4: "Solar",
		5: "SunPower S.A. de C.V.", 6: "Privado", 8: "300", 12: "Yucatán",
	})
	return header + "\n" + row1 + "\n" + row2 + "\n"
}

func TestIngestText(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { domain.SetClock(nil) })

	ing := newTestIngestor()
	records, err := ing.IngestText(sampleCSV(), domain.OriginUserCSV)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "csv-1", first.ID)
	assert.Equal(t, "CT Adolfo López Mateos", first.Name)
	assert.Equal(t, domain.CategoryThermal, first.Category)
	assert.Equal(t, domain.SectorPublic, first.Sector)
	assert.Equal(t, 2100.0, first.Power())
	require.NotNil(t, first.Geo)
	assert.InDelta(t, 19.386, first.Geo.Lat, 0.01)
	assert.InDelta(t, -96.416, first.Geo.Lon, 0.01)
	assert.Equal(t, domain.OriginUserCSV, first.Origin)
	assert.Equal(t, fixed, first.IngestedAt)

	second := records[1]
	assert.Equal(t, "csv-2", second.ID)
	assert.Equal(t, domain.CategorySolar, second.Category)
	assert.Equal(t, "photovoltaic", second.Subcategory)
	assert.Equal(t, "SunPower S.A. de C.V.", second.Owner)
	assert.Nil(t, second.Geo)
}

func TestIngestText_DropsDefectiveRows(t *testing.T) {
	content := strings.Join([]string{
		csvRow(map[int]string{0: "nombre"}),
		"too;short;row",
		csvRow(map[int]string{1: "CFE"}), // empty name
		csvRow(map[int]string{0: "Planta Válida", 2: "Eólica"}),
	}, "\n")

	ing := newTestIngestor()
	records, err := ing.IngestText(content, domain.OriginUserCSV)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Row index counts every data row, including dropped ones.
	assert.Equal(t, "csv-3", records[0].ID)
	assert.Equal(t, domain.CategoryWind, records[0].Category)
}

func TestIngestText_EmptySource(t *testing.T) {
	ing := newTestIngestor()

	// Zero-row input is not an error, just an empty pass.
	records, err := ing.IngestText("", domain.OriginUserCSV)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ing.IngestText("   \n  ", domain.OriginUserCSV)
	require.NoError(t, err)
	assert.Empty(t, records)

	// A header with no data rows yields zero records too.
	records, err = ing.IngestText(csvRow(map[int]string{0: "nombre"}), domain.OriginUserCSV)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestIngestSource_InlineText(t *testing.T) {
	ing := newTestIngestor()
	records, err := ing.IngestSource(context.Background(), sampleCSV(), domain.OriginUserCSV)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestIngestSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "centrales.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV()), 0o644))

	ing := newTestIngestor()
	records, err := ing.IngestSource(context.Background(), path, domain.OriginBundledCSV)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.OriginBundledCSV, records[0].Origin)
}

func TestIngestSource_FileMissing(t *testing.T) {
	ing := newTestIngestor()
	_, err := ing.IngestSource(context.Background(), "/nonexistent/centrales.csv", domain.OriginBundledCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading csv file")
}

func TestIngestSource_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Write([]byte(sampleCSV()))
	}))
	defer srv.Close()

	ing := newTestIngestor()
	records, err := ing.IngestSource(context.Background(), srv.URL, domain.OriginUserCSV)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestIngestSource_URLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ing := newTestIngestor()
	_, err := ing.IngestSource(context.Background(), srv.URL, domain.OriginUserCSV)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

func TestIngestSource_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ing := newTestIngestor()
	_, err := ing.IngestSource(ctx, "http://localhost:1/centrales.csv", domain.OriginUserCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "fetching"))
}
