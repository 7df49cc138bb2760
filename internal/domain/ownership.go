package domain

import (
	"regexp"
	"strings"
)

// ClassificationPattern maps a substring to a sector. The active pattern list
// is user-editable and persisted outside this package; classification reads
// the whole list once and uses it consistently for an entire pass.
type ClassificationPattern struct {
	Substring string `json:"substring"`
	Sector    Sector `json:"sector"`
}

// DefaultPatterns returns the built-in pattern list used when no user
// customization exists. The substrings identify Mexican public-sector
// entities; anything unmatched is assumed private.
func DefaultPatterns() []ClassificationPattern {
	return []ClassificationPattern{
		{Substring: "cfe", Sector: SectorPublic},
		{Substring: "comisión federal", Sector: SectorPublic},
		{Substring: "comision federal", Sector: SectorPublic},
		{Substring: "pemex", Sector: SectorPublic},
		{Substring: "petróleos mexicanos", Sector: SectorPublic},
		{Substring: "gobierno", Sector: SectorPublic},
		{Substring: "federal de electricidad", Sector: SectorPublic},
	}
}

// SectorClassifier determines the ownership sector of a plant. The two
// implementations serve different ingestion channels and deliberately keep
// different no-match defaults; see the package documentation.
type SectorClassifier interface {
	ClassifySector(operator, owner string) Sector
}

// unknownOwnerTokens are literal values meaning "owner not recorded".
var unknownOwnerTokens = map[string]struct{}{
	"nd": {}, "n/d": {}, "unknown": {}, "desconocido": {},
}

// PatternClassifier classifies by substring patterns over the concatenated
// operator and owner text. Used by the catalog channel. Unmatched non-empty
// text defaults to private: unclassified entities in this dataset are far
// more often private operators than public ones.
type PatternClassifier struct {
	patterns []ClassificationPattern
}

// NewPatternClassifier builds a classifier over the given pattern list,
// falling back to [DefaultPatterns] when the list is empty.
func NewPatternClassifier(patterns []ClassificationPattern) *PatternClassifier {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &PatternClassifier{patterns: patterns}
}

// ClassifySector implements [SectorClassifier].
func (c *PatternClassifier) ClassifySector(operator, owner string) Sector {
	text := strings.ToLower(strings.TrimSpace(operator + " " + owner))
	if text == "" {
		return SectorUndetermined
	}
	if _, ok := unknownOwnerTokens[text]; ok {
		return SectorUndetermined
	}

	for _, p := range c.patterns {
		if strings.Contains(text, strings.ToLower(p.Substring)) {
			return p.Sector
		}
	}
	return SectorPrivate
}

var (
	// publicEntityRe matches public-sector acronyms and keywords as whole
	// words: CFE, Pemex, the energy regulators, and government references.
	publicEntityRe = regexp.MustCompile(`\b(cfe|pemex|sener|cenace|gobierno|estado|federal)\b`)

	// privateEntityRe matches well-known private generators as whole words.
	// Company-form suffixes like "S.A." are deliberately not matched: a
	// dotted suffix alone says nothing about who is behind the entity, so
	// such operators stay undetermined.
	privateEntityRe = regexp.MustCompile(`\b(iberdrola|engie|acciona|enel|mitsui)\b`)
)

// FieldClassifier classifies using the CSV channel's explicit sector column
// first, then keyword matching against operator and parent-company text.
// Unlike [PatternClassifier] it defaults to undetermined when nothing
// matches.
type FieldClassifier struct{}

// ClassifyFields maps the raw sector column plus operator and parent-company
// text to a sector.
func (FieldClassifier) ClassifyFields(sectorField, operator, parent string) Sector {
	s := strings.ToLower(sectorField)
	if strings.Contains(s, "priv") {
		return SectorPrivate
	}
	if strings.Contains(s, "pub") || strings.Contains(s, "púb") {
		return SectorPublic
	}

	ref := strings.ToLower(operator + " " + parent + " " + sectorField)
	if publicEntityRe.MatchString(ref) {
		return SectorPublic
	}
	if privateEntityRe.MatchString(ref) {
		return SectorPrivate
	}
	return SectorUndetermined
}

// ClassifySector implements [SectorClassifier] for sources that carry no
// explicit sector column.
func (c FieldClassifier) ClassifySector(operator, owner string) Sector {
	return c.ClassifyFields("", operator, owner)
}
