package domain

import "time"

// EnergyCategory is one of the eight coarse generation-technology classes.
type EnergyCategory string

const (
	CategorySolar      EnergyCategory = "solar"
	CategoryWind       EnergyCategory = "wind"
	CategoryHydro      EnergyCategory = "hydro"
	CategoryThermal    EnergyCategory = "thermal"
	CategoryNuclear    EnergyCategory = "nuclear"
	CategoryGeothermal EnergyCategory = "geothermal"
	CategoryBioenergy  EnergyCategory = "bioenergy"
	CategoryOther      EnergyCategory = "other"
)

// Categories lists every valid energy category in display order.
var Categories = []EnergyCategory{
	CategorySolar, CategoryWind, CategoryHydro, CategoryThermal,
	CategoryNuclear, CategoryGeothermal, CategoryBioenergy, CategoryOther,
}

// Sector is the ownership classification of a plant.
type Sector string

const (
	SectorPublic       Sector = "public"
	SectorPrivate      Sector = "private"
	SectorUndetermined Sector = "undetermined"
)

// SourceOrigin tags which ingestion channel produced a record.
type SourceOrigin string

const (
	OriginUserCSV    SourceOrigin = "user_csv"
	OriginBundledCSV SourceOrigin = "bundled_csv"
	OriginCatalog    SourceOrigin = "catalog"
)

// Geo is a WGS-84 latitude/longitude pair. A record either carries a full
// pair or none at all; there is no half-located plant.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlantRecord is the canonical normalized representation of one
// power-generation facility. Records are immutable once built; filtering and
// aggregation always produce new derived collections.
type PlantRecord struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Operator     string         `json:"operator,omitempty"`
	Owner        string         `json:"owner,omitempty"`
	Sector       Sector         `json:"sector"`
	PowerMW      *float64       `json:"power_mw,omitempty"`
	RawFuel      string         `json:"raw_fuel,omitempty"`
	RawMethod    string         `json:"raw_method,omitempty"`
	Category     EnergyCategory `json:"energy_category"`
	Subcategory  string         `json:"energy_subcategory"`
	Geo          *Geo           `json:"geo,omitempty"`
	State        string         `json:"state,omitempty"`
	Municipality string         `json:"municipality,omitempty"`
	ExternalID   string         `json:"external_id,omitempty"`
	Origin       SourceOrigin   `json:"source_origin"`
	IngestedAt   time.Time      `json:"ingested_at"`
}

// HasLocation reports whether the record carries coordinates.
func (p PlantRecord) HasLocation() bool { return p.Geo != nil }

// Power returns the capacity in MW, or 0 when absent.
func (p PlantRecord) Power() float64 {
	if p.PowerMW == nil {
		return 0
	}
	return *p.PowerMW
}
