package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Positional CSV columns consumed from a centrales export. Anything beyond
// these indexes is ignored.
const (
	colName       = 0
	colOperator   = 1
	colTechnology = 2
	colFuel       = 4
	colParent     = 5
	colSector     = 6
	colCapacity   = 8
	colState      = 12
	colX          = 17
	colY          = 18

	// minCSVFields is the structural minimum for a data row.
	minCSVFields = 19
)

// PlaceholderName substitutes an empty name on catalog entries. CSV rows
// with an empty name are rejected instead.
const PlaceholderName = "[no name]"

var (
	// ErrShortRow rejects rows with fewer than minCSVFields columns.
	ErrShortRow = errors.New("row has too few fields")
	// ErrEmptyName rejects rows whose name column is empty after trimming.
	ErrEmptyName = errors.New("row has empty name")
)

// BuildCSVRecord constructs one PlantRecord from a tokenized CSV data row.
// index is the 1-based row number after the header and becomes part of the
// record ID. Unparseable numeric and coordinate values resolve to absent
// fields, never to a row rejection.
func BuildCSVRecord(row []string, index int, origin SourceOrigin) (PlantRecord, error) {
	if len(row) < minCSVFields {
		return PlantRecord{}, fmt.Errorf("%w: got %d, need %d", ErrShortRow, len(row), minCSVFields)
	}

	name := strings.TrimSpace(row[colName])
	if name == "" {
		return PlantRecord{}, ErrEmptyName
	}

	operator := strings.TrimSpace(row[colOperator])
	technology := strings.TrimSpace(row[colTechnology])
	fuel := strings.TrimSpace(row[colFuel])
	parent := strings.TrimSpace(row[colParent])
	sectorRaw := strings.TrimSpace(row[colSector])
	state := strings.TrimSpace(row[colState])

	owner := parent
	if owner == "" {
		owner = operator
	}

	var power *float64
	if mw, ok := ParseNumber(row[colCapacity]); ok {
		power = &mw
	}

	var geo *Geo
	if loc, ok := ReprojectMercator(row[colX], row[colY]); ok {
		geo = &loc
	}

	cls := ClassifyTechnology(technology, fuel)

	return PlantRecord{
		ID:          fmt.Sprintf("csv-%d", index),
		Name:        name,
		Operator:    operator,
		Owner:       owner,
		Sector:      FieldClassifier{}.ClassifyFields(sectorRaw, operator, parent),
		PowerMW:     power,
		RawFuel:     fuel,
		RawMethod:   technology,
		Category:    cls.Category,
		Subcategory: cls.Subcategory,
		Geo:         geo,
		State:       state,
		Origin:      origin,
		IngestedAt:  clock.Now(),
	}, nil
}

// CatalogEntry is one raw entry of the hardcoded fallback dataset. Fields are
// already typed; only the source/method tags and operator text still need
// classification.
type CatalogEntry struct {
	ID         string
	Name       string
	Operator   string
	PowerMW    *float64
	Source     string
	Method     string
	WikidataID string
	Geo        *Geo
	State      string
}

// BuildCatalogRecord constructs a PlantRecord from a catalog entry. Catalog
// entries are never rejected: an empty name becomes [PlaceholderName].
func BuildCatalogRecord(e CatalogEntry, classifier SectorClassifier) PlantRecord {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = PlaceholderName
	}

	cls := ClassifySourceMethod(e.Source, e.Method)

	return PlantRecord{
		ID:          e.ID,
		Name:        name,
		Operator:    e.Operator,
		Owner:       e.Operator,
		Sector:      classifier.ClassifySector(e.Operator, e.Operator),
		PowerMW:     e.PowerMW,
		RawFuel:     e.Source,
		RawMethod:   e.Method,
		Category:    cls.Category,
		Subcategory: cls.Subcategory,
		Geo:         e.Geo,
		State:       e.State,
		ExternalID:  e.WikidataID,
		Origin:      OriginCatalog,
		IngestedAt:  clock.Now(),
	}
}
