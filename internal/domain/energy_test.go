package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTechnology(t *testing.T) {
	tests := []struct {
		name        string
		technology  string
		fuel        string
		category    EnergyCategory
		subcategory string
	}{
		{"photovoltaic", "Fotovoltaica", "", CategorySolar, "photovoltaic"},
		{"solar general", "Solar", "", CategorySolar, "solar (general)"},
		{"solar thermal", "Solar térmica", "", CategorySolar, "solar thermal"},
		{"geothermal", "Geotermoeléctrica", "", CategoryGeothermal, "geothermal"},
		{"wind", "Eólica", "", CategoryWind, "wind"},
		{"wind by fuel", "", "Viento", CategoryWind, "wind"},
		{"hydro", "Hidroeléctrica", "", CategoryHydro, "hydroelectric"},
		{"nuclear by fuel", "Nucleoeléctrica", "Uranio", CategoryNuclear, "nuclear"},
		{"biogas", "", "Biogás", CategoryBioenergy, "biogas"},
		{"bagasse", "", "Bagazo de caña", CategoryBioenergy, "biomass (bagasse)"},
		{"black liquor", "", "Licor negro", CategoryBioenergy, "biomass"},
		{"combined cycle gas", "Ciclo Combinado", "Gas Natural", CategoryThermal, "combined cycle (natural gas)"},
		{"gas turbine", "Turbina de Gas", "Gas Natural", CategoryThermal, "gas turbine (natural gas)"},
		{"steam turbine fuel oil", "Turbina de Vapor", "Combustóleo", CategoryThermal, "steam turbine (fuel oil)"},
		{"internal combustion diesel", "Combustión Interna", "Diésel", CategoryThermal, "internal combustion (diesel)"},
		{"thermoelectric coal", "Termoeléctrica", "Carbón", CategoryThermal, "thermoelectric (coal)"},
		{"fluidized bed coke", "Lecho Fluidizado", "Coque", CategoryThermal, "fluidized bed (coke)"},
		{"fuel only", "", "Gas LP", CategoryThermal, "thermal (general) (natural gas)"},
		{"unknown technology", "Tecnología experimental", "", CategoryOther, "tecnología experimental"},
		{"empty row", "", "", CategoryOther, "unspecified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTechnology(tt.technology, tt.fuel)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.subcategory, got.Subcategory)
		})
	}
}

// A geothermal plant whose description also carries a thermal keyword must
// classify as geothermal: the geothermal rule precedes the thermal rule.
func TestClassifyTechnology_PriorityOrder(t *testing.T) {
	got := ClassifyTechnology("planta geotérmica de vapor", "")
	assert.Equal(t, CategoryGeothermal, got.Category)
	assert.Equal(t, "geothermal", got.Subcategory)
}

func TestClassifySourceMethod(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		method      string
		category    EnergyCategory
		subcategory string
	}{
		{"photovoltaic", "solar", "photovoltaic", CategorySolar, "photovoltaic"},
		{"solar general", "solar", "", CategorySolar, "solar (general)"},
		{"hybrid solar before thermal", "gas;solar", "photovoltaic;combustion", CategorySolar, "photovoltaic"},
		{"geothermal beats steam method", "geothermal", "steam", CategoryGeothermal, "geothermal"},
		{"wind", "wind", "", CategoryWind, "wind"},
		{"hydro", "hydro", "water-storage", CategoryHydro, "hydroelectric"},
		{"nuclear", "uranium", "", CategoryNuclear, "nuclear"},
		{"biomass", "biomass", "combustion", CategoryBioenergy, "biomass"},
		{"biogas", "biogas", "", CategoryBioenergy, "biogas"},
		{"combined cycle", "gas", "combined_cycle", CategoryThermal, "combined cycle (natural gas)"},
		{"plain combustion coal", "coal", "combustion", CategoryThermal, "thermal (general) (coal)"},
		{"mixed gas oil", "gas;oil", "combustion", CategoryThermal, "thermal (general) (natural gas)"},
		{"oil without method", "oil", "", CategoryThermal, "thermal (general) (fuel oil)"},
		{"unknown tag", "tidal", "", CategoryOther, "tidal"},
		{"empty", "", "", CategoryOther, "unspecified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySourceMethod(tt.source, tt.method)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.subcategory, got.Subcategory)
		})
	}
}
