// Package stats derives KPIs, data-quality measures, and rankings from a set
// of plant records. All functions are pure over their inputs.
package stats

import (
	"math"
	"sort"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

// Filter narrows a record set. Zero-value fields mean "no constraint"; list
// fields match when the record's value is any of the listed ones.
type Filter struct {
	Categories    []domain.EnergyCategory `json:"categories,omitempty"`
	Subcategories []string                `json:"subcategories,omitempty"`
	States        []string                `json:"states,omitempty"`
	Sectors       []domain.Sector         `json:"sectors,omitempty"`
	Owners        []string                `json:"owners,omitempty"`
	MinPowerMW    *float64                `json:"min_power_mw,omitempty"`
	MaxPowerMW    *float64                `json:"max_power_mw,omitempty"`
}

// Apply returns the records matching every constraint of the filter. Power
// bounds exclude records without a capacity value.
func (f Filter) Apply(records []domain.PlantRecord) []domain.PlantRecord {
	out := make([]domain.PlantRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r domain.PlantRecord) bool {
	if len(f.Categories) > 0 && !containsCategory(f.Categories, r.Category) {
		return false
	}
	if len(f.Subcategories) > 0 && !containsString(f.Subcategories, r.Subcategory) {
		return false
	}
	if len(f.States) > 0 && !containsString(f.States, r.State) {
		return false
	}
	if len(f.Sectors) > 0 && !containsSector(f.Sectors, r.Sector) {
		return false
	}
	if len(f.Owners) > 0 && !containsString(f.Owners, r.Owner) {
		return false
	}
	if f.MinPowerMW != nil && (r.PowerMW == nil || *r.PowerMW < *f.MinPowerMW) {
		return false
	}
	if f.MaxPowerMW != nil && (r.PowerMW == nil || *r.PowerMW > *f.MaxPowerMW) {
		return false
	}
	return true
}

func containsCategory(list []domain.EnergyCategory, v domain.EnergyCategory) bool {
	for _, c := range list {
		if c == v {
			return true
		}
	}
	return false
}

func containsSector(list []domain.Sector, v domain.Sector) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// KPISet summarizes a record set for the dashboard headline figures.
type KPISet struct {
	TotalPlants       int     `json:"total_plants"`
	TotalPowerMW      float64 `json:"total_power_mw"`
	PercentPublic     float64 `json:"percent_public"`
	PercentPrivate    float64 `json:"percent_private"`
	UniqueOwners      int     `json:"unique_owners"`
	IncompleteRecords int     `json:"incomplete_records"`
}

// KPIs computes headline figures. Total power is rounded to two decimals,
// sector percentages to one.
func KPIs(records []domain.PlantRecord) KPISet {
	total := len(records)
	var power float64
	var public, private int
	owners := make(map[string]struct{})
	incomplete := 0

	for _, r := range records {
		power += r.Power()
		switch r.Sector {
		case domain.SectorPublic:
			public++
		case domain.SectorPrivate:
			private++
		}
		if r.Owner != "" {
			owners[r.Owner] = struct{}{}
		}
		if isIncomplete(r) {
			incomplete++
		}
	}

	k := KPISet{
		TotalPlants:       total,
		TotalPowerMW:      round2(power),
		UniqueOwners:      len(owners),
		IncompleteRecords: incomplete,
	}
	if total > 0 {
		k.PercentPublic = round1(float64(public) / float64(total) * 100)
		k.PercentPrivate = round1(float64(private) / float64(total) * 100)
	}
	return k
}

func isIncomplete(r domain.PlantRecord) bool {
	return r.PowerMW == nil || !r.HasLocation() || r.Owner == "" || r.Sector == domain.SectorUndetermined
}

// QualityReport counts defect classes across a record set.
type QualityReport struct {
	Valid              int `json:"valid"`
	MissingCoordinates int `json:"missing_coordinates"`
	MissingOwner       int `json:"missing_owner"`
	MissingPower       int `json:"missing_power"`
	MissingSector      int `json:"missing_sector"`
	DuplicateIDs       int `json:"duplicate_ids"`
}

// Quality computes the data-quality breakdown. A record is valid when it
// carries coordinates, power, an owner, and a determined sector.
func Quality(records []domain.PlantRecord) QualityReport {
	var q QualityReport
	ids := make(map[string]struct{}, len(records))

	for _, r := range records {
		if r.HasLocation() && r.PowerMW != nil && r.Owner != "" && r.Sector != domain.SectorUndetermined {
			q.Valid++
		}
		if !r.HasLocation() {
			q.MissingCoordinates++
		}
		if r.Owner == "" {
			q.MissingOwner++
		}
		if r.PowerMW == nil {
			q.MissingPower++
		}
		if r.Sector == domain.SectorUndetermined {
			q.MissingSector++
		}
		ids[r.ID] = struct{}{}
	}
	q.DuplicateIDs = len(records) - len(ids)
	return q
}

// OwnerPower ranks an owner by installed capacity.
type OwnerPower struct {
	Owner   string  `json:"owner"`
	PowerMW float64 `json:"power_mw"`
}

// TopOwnersByPower returns the n owners with the highest summed capacity.
// Records without an owner are skipped.
func TopOwnersByPower(records []domain.PlantRecord, n int) []OwnerPower {
	sums := make(map[string]float64)
	for _, r := range records {
		if r.Owner != "" {
			sums[r.Owner] += r.Power()
		}
	}

	out := make([]OwnerPower, 0, len(sums))
	for owner, mw := range sums {
		out = append(out, OwnerPower{Owner: owner, PowerMW: round2(mw)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PowerMW != out[j].PowerMW {
			return out[i].PowerMW > out[j].PowerMW
		}
		return out[i].Owner < out[j].Owner
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// OwnerCount ranks an owner by number of plants.
type OwnerCount struct {
	Owner string `json:"owner"`
	Count int    `json:"count"`
}

// TopOwnersByCount returns the n owners with the most plants.
func TopOwnersByCount(records []domain.PlantRecord, n int) []OwnerCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Owner != "" {
			counts[r.Owner]++
		}
	}

	out := make([]OwnerCount, 0, len(counts))
	for owner, c := range counts {
		out = append(out, OwnerCount{Owner: owner, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Owner < out[j].Owner
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// StatePower aggregates capacity and plant count for one state.
type StatePower struct {
	State   string  `json:"state"`
	PowerMW float64 `json:"power_mw"`
	Count   int     `json:"count"`
}

// PowerByState aggregates capacity per state, sorted by capacity descending.
// Records without a state are skipped.
func PowerByState(records []domain.PlantRecord) []StatePower {
	agg := make(map[string]*StatePower)
	for _, r := range records {
		if r.State == "" {
			continue
		}
		e, ok := agg[r.State]
		if !ok {
			e = &StatePower{State: r.State}
			agg[r.State] = e
		}
		e.PowerMW += r.Power()
		e.Count++
	}

	out := make([]StatePower, 0, len(agg))
	for _, e := range agg {
		e.PowerMW = round2(e.PowerMW)
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PowerMW != out[j].PowerMW {
			return out[i].PowerMW > out[j].PowerMW
		}
		return out[i].State < out[j].State
	})
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
