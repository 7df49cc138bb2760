package domain

import "strings"

// Classification is the normalized result of energy classification.
type Classification struct {
	Category    EnergyCategory `json:"category"`
	Subcategory string         `json:"subcategory"`
}

// energyRule pairs a predicate with a result builder. Rules are evaluated
// top to bottom, first match wins, so the priority order stays auditable:
// solar, geothermal, wind, hydro, nuclear, bioenergy, thermal, other.
type energyRule struct {
	matches  func(a, b string) bool
	classify func(a, b string) Classification
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// The keyword vocabulary below is carried verbatim from the upstream dataset
// tooling. It mixes Spanish and English spellings (with and without accents)
// because the source data does.

// technologyRules classify the CSV channel, keyed by the free-text
// technology and fuel columns.
var technologyRules = []energyRule{
	{ // solar
		matches: func(t, f string) bool {
			return containsAny(t, "fotovolta", "photovoltaic", "solar") || containsAny(f, "sol", "solar")
		},
		classify: func(t, f string) Classification {
			switch {
			case containsAny(t, "fotovolta", "photovoltaic") || containsAny(f, "fotovolta", "photovoltaic"):
				return Classification{CategorySolar, "photovoltaic"}
			case containsAny(t, "térmi", "termi", "thermal"):
				return Classification{CategorySolar, "solar thermal"}
			default:
				return Classification{CategorySolar, "solar (general)"}
			}
		},
	},
	{ // geothermal
		matches: func(t, f string) bool {
			return containsAny(t, "geot") || containsAny(f, "geot")
		},
		classify: func(t, f string) Classification {
			return Classification{CategoryGeothermal, "geothermal"}
		},
	},
	{ // wind
		matches: func(t, f string) bool {
			return containsAny(t, "eólic", "eolic", "wind") || containsAny(f, "viento", "wind")
		},
		classify: func(t, f string) Classification {
			return Classification{CategoryWind, "wind"}
		},
	},
	{ // hydro
		matches: func(t, f string) bool {
			return containsAny(t, "hidro", "hidrául", "hidraul", "hydro") || containsAny(f, "agua", "water")
		},
		classify: func(t, f string) Classification {
			return Classification{CategoryHydro, "hydroelectric"}
		},
	},
	{ // nuclear
		matches: func(t, f string) bool {
			return containsAny(t, "nuclear") || containsAny(f, "uranio", "uranium", "nuclear")
		},
		classify: func(t, f string) Classification {
			return Classification{CategoryNuclear, "nuclear"}
		},
	},
	{ // bioenergy
		matches: func(t, f string) bool {
			return containsAny(f, "biogas", "biogás", "biomasa", "biomass", "bagazo", "bagasse", "licor negro", "black liquor")
		},
		classify: func(t, f string) Classification {
			switch {
			case containsAny(f, "biogas", "biogás"):
				return Classification{CategoryBioenergy, "biogas"}
			case containsAny(f, "bagazo", "bagasse"):
				return Classification{CategoryBioenergy, "biomass (bagasse)"}
			default:
				return Classification{CategoryBioenergy, "biomass"}
			}
		},
	},
	{ // thermal
		matches: func(t, f string) bool {
			return thermalMethodLabel(t) != "" || thermalFuelLabel(f) != ""
		},
		classify: func(t, f string) Classification {
			sub := thermalMethodLabel(t)
			if sub == "" {
				sub = "thermal (general)"
			}
			if fuel := thermalFuelLabel(f); fuel != "" {
				sub += " " + fuel
			}
			return Classification{CategoryThermal, sub}
		},
	},
}

// thermalMethodLabel maps free-text technology to a thermal method
// descriptor, or "" when no thermal method keyword is present.
func thermalMethodLabel(t string) string {
	switch {
	case containsAny(t, "ciclo combinado", "combined cycle"):
		return "combined cycle"
	case containsAny(t, "turbina de gas", "gas turbine"):
		return "gas turbine"
	case containsAny(t, "turbina de vapor", "steam turbine", "steam"):
		return "steam turbine"
	case containsAny(t, "combustión interna", "combustion interna", "internal combustion"):
		return "internal combustion"
	case containsAny(t, "termoeléctrica", "termoelectrica", "thermoelectric"):
		return "thermoelectric"
	case containsAny(t, "lecho fluidizado", "fluidized bed"):
		return "fluidized bed"
	default:
		return ""
	}
}

// thermalFuelLabel maps free-text fuel to a parenthetical fuel descriptor,
// or "" when no thermal fuel keyword is present.
func thermalFuelLabel(f string) string {
	switch {
	case containsAny(f, "gas natural", "natural gas", "gas lp", "gas"):
		return "(natural gas)"
	case containsAny(f, "diésel", "diesel"):
		return "(diesel)"
	case containsAny(f, "carbón", "carbon", "coal"):
		return "(coal)"
	case containsAny(f, "coque", "coke"):
		return "(coke)"
	case containsAny(f, "combustóleo", "combustoleo", "fuel", "oil", "petrol"):
		return "(fuel oil)"
	default:
		return ""
	}
}

// ClassifyTechnology maps the CSV channel's technology and fuel descriptors
// to a category and subcategory. Unmatched rows fall back to CategoryOther
// with the technology text as subcategory ("unspecified" when empty).
func ClassifyTechnology(technology, fuel string) Classification {
	t := strings.ToLower(strings.TrimSpace(technology))
	f := strings.ToLower(strings.TrimSpace(fuel))

	for _, rule := range technologyRules {
		if rule.matches(t, f) {
			return rule.classify(t, f)
		}
	}

	if t == "" {
		return Classification{CategoryOther, "unspecified"}
	}
	return Classification{CategoryOther, t}
}

// sourceMethodRules classify the catalog channel, keyed by the
// OpenInfraMap-style source and method tags (e.g. "gas;oil", "combustion").
var sourceMethodRules = []energyRule{
	{ // solar
		matches: func(s, m string) bool { return strings.Contains(s, "solar") },
		classify: func(s, m string) Classification {
			switch {
			case containsAny(m, "photovoltaic", "fotovoltaic"):
				return Classification{CategorySolar, "photovoltaic"}
			case containsAny(m, "thermal", "termi", "térmi"):
				return Classification{CategorySolar, "solar thermal"}
			default:
				return Classification{CategorySolar, "solar (general)"}
			}
		},
	},
	{ // geothermal
		matches: func(s, m string) bool {
			return containsAny(s, "geotherm", "geotermi", "geotérmi")
		},
		classify: func(s, m string) Classification {
			return Classification{CategoryGeothermal, "geothermal"}
		},
	},
	{ // wind
		matches: func(s, m string) bool { return containsAny(s, "wind", "eolic", "eólic") },
		classify: func(s, m string) Classification {
			return Classification{CategoryWind, "wind"}
		},
	},
	{ // hydro
		matches: func(s, m string) bool { return containsAny(s, "hydro", "hidro", "water") },
		classify: func(s, m string) Classification {
			return Classification{CategoryHydro, "hydroelectric"}
		},
	},
	{ // nuclear
		matches: func(s, m string) bool { return containsAny(s, "nuclear", "uranium") },
		classify: func(s, m string) Classification {
			return Classification{CategoryNuclear, "nuclear"}
		},
	},
	{ // bioenergy
		matches: func(s, m string) bool {
			return containsAny(s, "biomass", "biogas", "biomas", "biogás", "bagasse", "black liquor")
		},
		classify: func(s, m string) Classification {
			switch {
			case containsAny(s, "biogas", "biogás"):
				return Classification{CategoryBioenergy, "biogas"}
			case strings.Contains(s, "bagasse"):
				return Classification{CategoryBioenergy, "biomass (bagasse)"}
			default:
				return Classification{CategoryBioenergy, "biomass"}
			}
		},
	},
	{ // thermal
		matches: func(s, m string) bool {
			return containsAny(s, "gas", "oil", "coal", "diesel", "fuel", "petrol", "carbón") ||
				containsAny(m, "combustion", "combined_cycle", "ciclo_combinado", "steam", "vapor", "turbine", "thermoelectric", "fluidized")
		},
		classify: func(s, m string) Classification {
			sub := tagMethodLabel(m)
			if sub == "" {
				sub = "thermal (general)"
			}
			if fuel := tagFuelLabel(s); fuel != "" {
				sub += " " + fuel
			}
			return Classification{CategoryThermal, sub}
		},
	},
}

// tagMethodLabel maps a catalog method tag to a thermal method descriptor.
func tagMethodLabel(m string) string {
	switch {
	case containsAny(m, "combined", "combinado"):
		return "combined cycle"
	case containsAny(m, "internal_combustion", "internal combustion"):
		return "internal combustion"
	case containsAny(m, "steam", "vapor"):
		return "steam turbine"
	case strings.Contains(m, "fluidized"):
		return "fluidized bed"
	case strings.Contains(m, "thermoelectric"):
		return "thermoelectric"
	case strings.Contains(m, "turbine"):
		return "gas turbine"
	default:
		return ""
	}
}

// tagFuelLabel maps a catalog source tag to a parenthetical fuel descriptor.
// Order follows the upstream tooling: gas first, so "gas;oil" reads as
// natural gas.
func tagFuelLabel(s string) string {
	switch {
	case strings.Contains(s, "gas"):
		return "(natural gas)"
	case containsAny(s, "coal", "carbón"):
		return "(coal)"
	case strings.Contains(s, "coke"):
		return "(coke)"
	case containsAny(s, "oil", "petrol", "fuel"):
		return "(fuel oil)"
	case strings.Contains(s, "diesel"):
		return "(diesel)"
	default:
		return ""
	}
}

// ClassifySourceMethod maps the catalog channel's source and method tags to a
// category and subcategory. Unmatched entries fall back to CategoryOther.
func ClassifySourceMethod(source, method string) Classification {
	s := strings.ToLower(strings.TrimSpace(source))
	m := strings.ToLower(strings.TrimSpace(method))

	for _, rule := range sourceMethodRules {
		if rule.matches(s, m) {
			return rule.classify(s, m)
		}
	}

	if s == "" {
		return Classification{CategoryOther, "unspecified"}
	}
	return Classification{CategoryOther, s}
}
