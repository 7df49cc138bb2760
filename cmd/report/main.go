// Command report ingests a centrales CSV export and prints a dataset summary:
// headline KPIs, the data-quality breakdown, and the top owners and states by
// installed capacity.
//
// Usage:
//
//	go run ./cmd/report -source data/centrales.csv
//	go run ./cmd/report -source https://example.com/centrales.csv -top 5
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
	"github.com/Leonidas-cyber/energia-Mexico/internal/observability"
	"github.com/Leonidas-cyber/energia-Mexico/internal/pipeline"
	"github.com/Leonidas-cyber/energia-Mexico/internal/stats"
)

func main() {
	source := flag.String("source", "", "CSV file path or URL")
	top := flag.Int("top", 10, "number of owners to rank")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout for URL sources")
	flag.Parse()

	if *source == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*source, *top, *timeout); code != 0 {
		os.Exit(code)
	}
}

func run(source string, top int, timeout time.Duration) int {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	ingestor := pipeline.New(&http.Client{Timeout: timeout}, logger, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	records, err := ingestor.IngestSource(ctx, source, domain.OriginUserCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: ingest %s: %v\n", source, err)
		return 1
	}

	printKPIs(records)
	printQuality(records)
	printRankings(records, top)
	return 0
}

func printKPIs(records []domain.PlantRecord) {
	k := stats.KPIs(records)

	fmt.Println("=== Dataset KPIs ===")
	fmt.Printf("  %-24s %d\n", "Plants", k.TotalPlants)
	fmt.Printf("  %-24s %.2f MW\n", "Installed capacity", k.TotalPowerMW)
	fmt.Printf("  %-24s %.1f%%\n", "Public sector", k.PercentPublic)
	fmt.Printf("  %-24s %.1f%%\n", "Private sector", k.PercentPrivate)
	fmt.Printf("  %-24s %d\n", "Unique owners", k.UniqueOwners)
	fmt.Printf("  %-24s %d\n", "Incomplete records", k.IncompleteRecords)

	fmt.Println("\n=== Plants by category ===")
	counts := make(map[domain.EnergyCategory]int)
	for _, r := range records {
		counts[r.Category]++
	}
	for _, cat := range domain.Categories {
		if counts[cat] > 0 {
			fmt.Printf("  %-24s %d\n", cat, counts[cat])
		}
	}
}

func printQuality(records []domain.PlantRecord) {
	q := stats.Quality(records)

	fmt.Println("\n=== Data quality ===")
	fmt.Printf("  %-24s %d\n", "Valid records", q.Valid)
	fmt.Printf("  %-24s %d\n", "Missing coordinates", q.MissingCoordinates)
	fmt.Printf("  %-24s %d\n", "Missing owner", q.MissingOwner)
	fmt.Printf("  %-24s %d\n", "Missing power", q.MissingPower)
	fmt.Printf("  %-24s %d\n", "Undetermined sector", q.MissingSector)
	fmt.Printf("  %-24s %d\n", "Duplicate IDs", q.DuplicateIDs)
}

func printRankings(records []domain.PlantRecord, top int) {
	fmt.Printf("\n=== Top %d owners by capacity ===\n", top)
	for _, o := range stats.TopOwnersByPower(records, top) {
		fmt.Printf("  %-40s %10.2f MW\n", o.Owner, o.PowerMW)
	}

	fmt.Printf("\n=== Top %d owners by plant count ===\n", top)
	for _, o := range stats.TopOwnersByCount(records, top) {
		fmt.Printf("  %-40s %10d\n", o.Owner, o.Count)
	}

	fmt.Println("\n=== Capacity by state ===")
	for _, s := range stats.PowerByState(records) {
		fmt.Printf("  %-24s %10.2f MW  (%d plants)\n", s.State, s.PowerMW, s.Count)
	}
}
