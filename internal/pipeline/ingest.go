// Package pipeline runs the fetch-tokenize-build ingestion pass that turns a
// centrales CSV export into normalized plant records.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Leonidas-cyber/energia-Mexico/internal/csvparse"
	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
	"github.com/Leonidas-cyber/energia-Mexico/internal/observability"
)

// maxCSVBytes caps how much CSV a single fetch may return.
const maxCSVBytes = 64 << 20

// FetchError reports a non-200 response while downloading a CSV.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
}

// Ingestor converts CSV sources into plant records. A source may be inline
// CSV text, an HTTP(S) URL, or a local file path.
type Ingestor struct {
	client  *http.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an Ingestor. Pass a nil client to use http.DefaultClient.
func New(client *http.Client, logger *slog.Logger, metrics *observability.Metrics) *Ingestor {
	if client == nil {
		client = http.DefaultClient
	}
	return &Ingestor{client: client, logger: logger, metrics: metrics}
}

// IngestSource resolves source as inline CSV text, a URL, or a file path, and
// runs a full ingestion pass over its contents.
func (i *Ingestor) IngestSource(ctx context.Context, source string, origin domain.SourceOrigin) ([]domain.PlantRecord, error) {
	switch {
	case looksLikeCSV(source):
		return i.IngestText(source, origin)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return i.ingestURL(ctx, source, origin)
	default:
		return i.ingestFile(source, origin)
	}
}

// IngestText tokenizes CSV text and builds one record per valid data row.
// Defective rows are dropped, counted, and logged; they never fail the pass.
// Empty content is just a pass over zero rows.
func (i *Ingestor) IngestText(content string, origin domain.SourceOrigin) ([]domain.PlantRecord, error) {
	start := time.Now()

	rows := csvparse.Tokenize(content)
	if len(rows) <= 1 {
		return []domain.PlantRecord{}, nil
	}

	// First row is the header.
	records := make([]domain.PlantRecord, 0, len(rows)-1)
	for idx, row := range rows[1:] {
		rec, err := domain.BuildCSVRecord(row, idx+1, origin)
		if err != nil {
			i.metrics.RowsRejected.WithLabelValues(rejectionReason(err)).Inc()
			i.logger.Debug("dropping csv row", "row", idx+1, "error", err)
			continue
		}
		i.metrics.RowsParsed.Inc()
		i.metrics.RecordsIngested.WithLabelValues(string(origin)).Inc()
		i.metrics.RecordsByClass.WithLabelValues(string(rec.Category)).Inc()
		records = append(records, rec)
	}

	i.metrics.IngestDuration.Observe(time.Since(start).Seconds())
	i.logger.Info("ingestion pass complete",
		"origin", origin,
		"rows", len(rows)-1,
		"records", len(records),
		"dropped", len(rows)-1-len(records),
	)
	return records, nil
}

func (i *Ingestor) ingestURL(ctx context.Context, url string, origin domain.SourceOrigin) ([]domain.PlantRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		i.metrics.IngestErrors.Inc()
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := i.client.Do(req)
	if err != nil {
		i.metrics.IngestErrors.Inc()
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		i.metrics.IngestErrors.Inc()
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVBytes))
	if err != nil {
		i.metrics.IngestErrors.Inc()
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return i.IngestText(string(body), origin)
}

func (i *Ingestor) ingestFile(path string, origin domain.SourceOrigin) ([]domain.PlantRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		i.metrics.IngestErrors.Inc()
		return nil, fmt.Errorf("reading csv file: %w", err)
	}
	return i.IngestText(string(data), origin)
}

// looksLikeCSV distinguishes inline CSV content from URLs and file paths:
// anything with a line break and a delimiter is treated as content.
func looksLikeCSV(s string) bool {
	return strings.ContainsAny(s, "\n\r") && strings.ContainsAny(s, ",;")
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrShortRow):
		return "short_row"
	case errors.Is(err, domain.ErrEmptyName):
		return "empty_name"
	default:
		return "other"
	}
}
