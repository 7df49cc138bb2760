// Package catalog embeds the fallback plant dataset derived from
// OpenInfraMap's Mexico inventory. It serves as the data source when no CSV
// can be fetched at startup.
package catalog

import (
	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

// stateCentroids maps Mexican state names to approximate WGS-84 centroids,
// used when a catalog entry carries no coordinates of its own.
var stateCentroids = map[string]domain.Geo{
	"Aguascalientes":      {Lat: 21.88, Lon: -102.29},
	"Baja California":     {Lat: 30.84, Lon: -115.28},
	"Baja California Sur": {Lat: 24.14, Lon: -110.31},
	"Campeche":            {Lat: 18.84, Lon: -90.36},
	"Chiapas":             {Lat: 16.75, Lon: -93.12},
	"Chihuahua":           {Lat: 28.63, Lon: -106.09},
	"Ciudad de México":    {Lat: 19.43, Lon: -99.13},
	"Coahuila":            {Lat: 27.06, Lon: -101.71},
	"Colima":              {Lat: 19.24, Lon: -103.72},
	"Durango":             {Lat: 24.02, Lon: -104.66},
	"Estado de México":    {Lat: 19.49, Lon: -99.87},
	"Guanajuato":          {Lat: 21.02, Lon: -101.26},
	"Guerrero":            {Lat: 17.44, Lon: -99.55},
	"Hidalgo":             {Lat: 20.09, Lon: -98.76},
	"Jalisco":             {Lat: 20.66, Lon: -103.35},
	"Michoacán":           {Lat: 19.57, Lon: -101.71},
	"Morelos":             {Lat: 18.68, Lon: -99.23},
	"Nayarit":             {Lat: 21.75, Lon: -104.85},
	"Nuevo León":          {Lat: 25.59, Lon: -99.99},
	"Oaxaca":              {Lat: 17.07, Lon: -96.72},
	"Puebla":              {Lat: 19.04, Lon: -98.20},
	"Querétaro":           {Lat: 20.59, Lon: -100.39},
	"Quintana Roo":        {Lat: 19.18, Lon: -88.48},
	"San Luis Potosí":     {Lat: 22.15, Lon: -100.98},
	"Sinaloa":             {Lat: 24.81, Lon: -107.39},
	"Sonora":              {Lat: 29.07, Lon: -110.96},
	"Tabasco":             {Lat: 17.99, Lon: -92.93},
	"Tamaulipas":          {Lat: 24.27, Lon: -98.84},
	"Tlaxcala":            {Lat: 19.32, Lon: -98.24},
	"Veracruz":            {Lat: 19.18, Lon: -96.14},
	"Yucatán":             {Lat: 20.97, Lon: -89.62},
	"Zacatecas":           {Lat: 22.77, Lon: -102.58},
}

// StateCentroid looks up the approximate centroid for a state name.
func StateCentroid(state string) (domain.Geo, bool) {
	g, ok := stateCentroids[state]
	return g, ok
}

func mw(v float64) *float64 { return &v }

func geo(lat, lon float64) *domain.Geo { return &domain.Geo{Lat: lat, Lon: lon} }

// entries is the raw fallback dataset: the largest plants per generation
// technology from OpenInfraMap's Mexico inventory. Entries without
// coordinates fall back to their state centroid at build time.
var entries = []domain.CatalogEntry{
	// Thermal (gas, oil, coal).
	{ID: "oim-109686948", Name: "Central Termoeléctrica Plutarco Elías Calles", Operator: "Comisión Federal de Electricidad", PowerMW: mw(2778), Source: "coal", Method: "combustion", WikidataID: "Q19818968", Geo: geo(17.99, -102.10), State: "Guerrero"},
	{ID: "oim-318948687", Name: "Central Termoeléctrica General Manuel Álvarez Moreno", Operator: "Comisión Federal de Electricidad", PowerMW: mw(2754), Source: "gas;oil", Method: "combustion", WikidataID: "Q122808952", Geo: geo(19.06, -104.32), State: "Colima"},
	{ID: "oim-113005847", Name: "Central Termoeléctrica Francisco Pérez Ríos", Operator: "CFE", PowerMW: mw(2200), Source: "oil;gas", Method: "combustion", WikidataID: "Q12007849", Geo: geo(20.95, -97.40), State: "Veracruz"},
	{ID: "oim-109358960", Name: "Central Termoeléctrica Adolfo López Mateos", Operator: "Comisión Federal de Electricidad", PowerMW: mw(2100), Source: "oil", Method: "", WikidataID: "Q2919594", Geo: geo(20.95, -97.38), State: "Veracruz"},
	{ID: "oim-908423767", Name: "Centrales de Ciclo Combinado Escobedo y El Carmen", Operator: "Iberdrola", PowerMW: mw(1744), Source: "gas", Method: "combustion", WikidataID: "Q122759630", Geo: geo(25.78, -100.32), State: "Nuevo León"},
	{ID: "oim-1020167969", Name: "Central de Ciclo Combinado Topolobampo II y III", Operator: "Iberdrola", PowerMW: mw(1690), Source: "gas", Method: "combustion", WikidataID: "Q122759669", Geo: geo(25.60, -109.05), State: "Sinaloa"},
	{ID: "oim-753793100", Name: "Central Empalme I y II", Operator: "CFE", PowerMW: mw(1591), Source: "gas", Method: "combustion", Geo: geo(27.96, -110.81), State: "Sonora"},
	{ID: "oim-52302689", Name: "Central de Ciclo Combinado La Rosita", PowerMW: mw(1405), Source: "gas", Method: "combustion", Geo: geo(32.55, -115.47), State: "Baja California"},
	{ID: "oim-101027469", Name: "Central Termoeléctrica Carbón II", Operator: "Comisión Federal de Electricidad", PowerMW: mw(1400), Source: "coal", Method: "combustion", WikidataID: "Q11963104", Geo: geo(28.07, -100.54), State: "Coahuila"},
	{ID: "oim-124801187", Name: "Central de Ciclo Combinado Dulces Nombres", Operator: "Iberdrola", PowerMW: mw(1308), Source: "gas", Method: "combined_cycle", WikidataID: "Q11989898", Geo: geo(25.78, -100.17), State: "Nuevo León"},
	{ID: "oim-325857134", Name: "Central Termoeléctrica Tamazunchale", Operator: "Iberdrola", PowerMW: mw(1200), Source: "gas", Method: "combined_cycle", WikidataID: "Q19391897", Geo: geo(21.26, -98.78), State: "San Luis Potosí"},
	{ID: "oim-108228719", Name: "Central Termoeléctrica Valle de México", Operator: "CFE", PowerMW: mw(1193), Source: "gas", Method: "combustion", Geo: geo(19.59, -99.00), State: "Estado de México"},
	{ID: "oim-1168813607", Name: "Central de Ciclo Combinado Tierra Mojada", Operator: "Saavi Energia", PowerMW: mw(874), Source: "gas", Method: "combustion", Geo: geo(20.37, -103.38), State: "Jalisco"},
	{ID: "oim-686189316", Name: "Nuevo Pemex", Operator: "Pemex", PowerMW: mw(300), Source: "gas", Method: "combined_cycle", Geo: geo(18.00, -93.39), State: "Tabasco"},
	{ID: "oim-544618269", Name: "Central Termoeléctrica Agua Prieta-II ISCC", PowerMW: mw(465), Source: "gas;solar", Method: "photovoltaic;combustion", Geo: geo(31.33, -109.55), State: "Sonora"},
	{ID: "oim-539895538", Name: "Central de Combustión Interna Baja California Sur", Operator: "CFE", PowerMW: mw(210), Source: "", Method: "", Geo: geo(24.14, -110.31), State: "Baja California Sur"},
	{ID: "oim-120234852", Name: "Central Termoeléctrica El Sauz", PowerMW: mw(700), Source: "gas", Method: "combined_cycle", State: "Querétaro"},

	// Nuclear.
	{ID: "oim-95949886", Name: "Central Nuclear Laguna Verde", Operator: "Comisión Federal de Electricidad", PowerMW: mw(1552), Source: "nuclear", Method: "fission", WikidataID: "Q371499", Geo: geo(19.72, -96.40), State: "Veracruz"},

	// Hydro.
	{ID: "oim-353307082", Name: "Presa Chicoasén (Manuel Moreno Torres)", Operator: "Comisión Federal de Electricidad", PowerMW: mw(2400), Source: "hydro", Method: "water-storage", WikidataID: "Q1435446", Geo: geo(16.93, -93.09), State: "Chiapas"},
	{ID: "oim-109684127", Name: "Presa Infiernillo", PowerMW: mw(1200), Source: "hydro", Method: "water-storage", WikidataID: "Q655813", Geo: geo(18.27, -101.89), State: "Michoacán"},
	{ID: "oim-153402696", Name: "Presa Malpaso", PowerMW: mw(1080), Source: "hydro", Method: "water-storage", WikidataID: "Q1355023", Geo: geo(17.17, -93.62), State: "Chiapas"},
	{ID: "oim-189660115", Name: "Presa Aguamilpa", PowerMW: mw(960), Source: "hydro", Method: "water-storage", WikidataID: "Q397881", Geo: geo(21.83, -104.80), State: "Nayarit"},
	{ID: "oim-254327683", Name: "Presa La Angostura", Operator: "Comisión Federal de Electricidad", PowerMW: mw(900), Source: "hydro", Method: "water-storage", WikidataID: "Q624981", Geo: geo(15.78, -92.77), State: "Chiapas"},
	{ID: "oim-109353237", Name: "Central Hidroeléctrica Mazatepec", Operator: "CFE", PowerMW: mw(220), Source: "hydro", Method: "run-of-the-river", WikidataID: "Q19381223", Geo: geo(18.73, -98.64), State: "Puebla"},
	{ID: "oim-1212548857", Name: "Central Hidroeléctrica Tepexic", Operator: "Fénix", PowerMW: mw(60), Source: "hydro", Method: "", WikidataID: "Q27846431", Geo: geo(20.15, -97.89), State: "Puebla"},

	// Wind.
	{ID: "oim-e-amistad", Name: "Parque Eólico Amistad", Operator: "Enel", PowerMW: mw(450), Source: "wind", Method: "", Geo: geo(28.47, -100.86), State: "Coahuila"},
	{ID: "oim-e-reynosa", Name: "Parque Eólico Reynosa", Operator: "Zuma Energía", PowerMW: mw(424), Source: "wind", Method: "wind_turbine", Geo: geo(26.05, -98.28), State: "Tamaulipas"},
	{ID: "oim-e-sur", Name: "Energía Eólica del Sur", PowerMW: mw(396), Source: "wind", Method: "", Geo: geo(16.43, -94.88), State: "Oaxaca"},
	{ID: "oim-e-eurus", Name: "Parque Eólico Eurus", Operator: "Acciona Energía", PowerMW: mw(250), Source: "wind", Method: "", Geo: geo(16.62, -94.76), State: "Oaxaca"},
	{ID: "oim-e-laventa2", Name: "Parque Eólico La Venta II", Operator: "CFE", PowerMW: mw(83), Source: "wind", Method: "", Geo: geo(16.57, -94.78), State: "Oaxaca"},
	{ID: "oim-e-peninsula", Name: "Parque Eólico Península", PowerMW: mw(90), Source: "wind", Method: "wind_turbine", State: "Yucatán"},

	// Solar.
	{ID: "oim-s-villanueva", Name: "Villanueva Solar I y III", Operator: "Enel Green Power Mexico", PowerMW: mw(580), Source: "solar", Method: "photovoltaic", Geo: geo(24.72, -103.48), State: "Coahuila"},
	{ID: "oim-s-potosi", Name: "Planta Fotovoltaica Potosí Solar", Operator: "FRV", PowerMW: mw(300), Source: "solar", Method: "photovoltaic", Geo: geo(22.50, -100.80), State: "San Luis Potosí"},
	{ID: "oim-s-xcala", Name: "Nueva Xcala PV Solar Park", Operator: "Engie", PowerMW: mw(200), Source: "solar", Method: "photovoltaic", Geo: geo(18.43, -99.56), State: "Guerrero"},
	{ID: "oim-s-cuyoaco", Name: "Parque Fotovoltaico Cuyoaco", Operator: "Iberdrola México", PowerMW: mw(200), Source: "solar", Method: "photovoltaic", Geo: geo(19.73, -97.58), State: "Puebla"},
	{ID: "oim-s-guajiro", Name: "Parque Solar Guajiro", Operator: "Atlas Renewable Energy", PowerMW: mw(130), Source: "solar", Method: "photovoltaic", Geo: geo(22.60, -102.28), State: "Aguascalientes"},
	{ID: "oim-s-bluemex", Name: "Bluemex Power 1", Operator: "EDF Renewables Mexico", PowerMW: mw(120), Source: "solar", Method: "photovoltaic", Geo: geo(22.57, -102.30), State: "Aguascalientes"},

	// Geothermal.
	{ID: "oim-186746635", Name: "Planta Geotérmica Cerro Prieto", Operator: "Comisión Federal de Electricidad", PowerMW: mw(570), Source: "geothermal", Method: "geothermal", WikidataID: "Q3624174", Geo: geo(32.41, -115.22), State: "Baja California"},
	{ID: "oim-g-azufres", Name: "Planta Geotérmica Los Azufres", PowerMW: mw(263), Source: "geothermal", Method: "", Geo: geo(19.78, -100.65), State: "Michoacán"},
	{ID: "oim-g-humeros", Name: "Planta Geotérmica Los Humeros", Operator: "Comision Federal de Electricidad", PowerMW: mw(121), Source: "geothermal", Method: "thermal", WikidataID: "Q122853721", Geo: geo(19.68, -97.45), State: "Puebla"},
	{ID: "oim-1212574287", Name: "Central Geotérmica Tres Vírgenes", Operator: "CFE", PowerMW: mw(10), Source: "geothermal", Method: "thermal", Geo: geo(27.47, -112.59), State: "Baja California Sur"},

	// Bioenergy.
	{ID: "oim-703860926", Name: "Igsapak Cogeneración", PowerMW: mw(51), Source: "biomass", Method: "", Geo: geo(20.57, -101.17), State: "Guanajuato"},
	{ID: "oim-201186676", Name: "Ingenio Adolfo López Mateos", PowerMW: mw(50), Source: "biomass", Method: "combustion", Geo: geo(18.86, -96.97), State: "Veracruz"},
	{ID: "oim-426376483", Name: "PTAR Atotonilco - CONAGUA", Operator: "CONAGUA", PowerMW: mw(29.9), Source: "biogas", Method: "", Geo: geo(19.97, -98.98), State: "Hidalgo"},
	{ID: "oim-248721733", Name: "Ingenio San Nicolás", PowerMW: mw(15), Source: "biomass", Method: "combustion", Geo: geo(20.55, -97.28), State: "Veracruz"},
}

// Records builds the normalized fallback dataset, classifying ownership with
// the given classifier. Entries lacking coordinates receive their state
// centroid when one is known.
func Records(classifier domain.SectorClassifier) []domain.PlantRecord {
	out := make([]domain.PlantRecord, 0, len(entries))
	for _, e := range entries {
		if e.Geo == nil {
			if c, ok := StateCentroid(e.State); ok {
				e.Geo = &c
			}
		}
		out = append(out, domain.BuildCatalogRecord(e, classifier))
	}
	return out
}

// Len reports the number of entries in the fallback dataset.
func Len() int { return len(entries) }
