// Package domain models Mexico's power-generation plants as canonical,
// normalized records.
//
// # Data Sources
//
// Plant records come from three channels, all normalized to [PlantRecord]:
//
//   - A user-uploaded CSV export (Spanish-language column headers, comma or
//     semicolon delimited, Web Mercator coordinates).
//   - A bundled default CSV with the same layout, fetched or read at startup.
//   - A hardcoded catalog derived from OpenInfraMap, with typed fields and
//     English source/method tags (e.g. source "gas;oil", method "combustion").
//
// # CSV Conventions
//
// The CSV layout is positional. Columns consumed (0-based):
//
//	0 name, 1 operator, 2 technology, 4 fuel, 5 parent company, 6 sector,
//	8 capacity (MW), 12 state, 17 x (Web Mercator m), 18 y (Web Mercator m)
//
// Rows with fewer than 19 fields or an empty name are rejected. Numeric
// columns mix decimal conventions ("1.234,56" and "1,234.56" both mean
// 1234.56), carry unit clutter, and use placeholder tokens ("ND", "N/D",
// "NA", "N/A", "-", "null") for missing values. See [ParseNumber].
//
// Coordinates are EPSG:3857 Web Mercator meters and are inverse-projected to
// WGS-84 degrees by [ReprojectMercator]. A plant is either fully located
// (both latitude and longitude) or not located at all.
//
// # Classification
//
// Energy classification is an ordered list of keyword rules evaluated
// first-match-wins: solar, geothermal, wind, hydro, nuclear, bioenergy,
// thermal, other. The keyword vocabulary is Mexican energy-sector domain
// knowledge (both Spanish and English spellings) and is preserved verbatim;
// the ordering guarantees, for example, that "planta geotérmica de vapor"
// classifies as geothermal even though "vapor" is a thermal keyword.
//
// Ownership classification has two deliberately distinct strategies:
//
//   - [PatternClassifier] (catalog channel): substring patterns over
//     operator+owner text, unmatched text defaults to private.
//   - [FieldClassifier] (CSV channel): inspects the explicit sector column
//     first, then operator/parent-company keywords, unmatched text defaults
//     to undetermined.
//
// The divergent defaults mirror the two independently-evolved classifiers in
// the upstream dataset tooling and are kept as separate named strategies.
package domain
