package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternClassifier(t *testing.T) {
	c := NewPatternClassifier(nil)

	tests := []struct {
		name     string
		operator string
		owner    string
		expected Sector
	}{
		{"cfe acronym", "CFE", "CFE", SectorPublic},
		{"full commission name", "Comisión Federal de Electricidad", "Comisión Federal de Electricidad", SectorPublic},
		{"pemex", "Pemex Transformación Industrial", "Pemex", SectorPublic},
		{"government", "Gobierno de Sonora", "", SectorPublic},
		{"known private", "Iberdrola", "Iberdrola", SectorPrivate},
		{"unmatched defaults to private", "Desconocido S.A.", "Desconocido S.A.", SectorPrivate},
		{"empty is undetermined", "", "", SectorUndetermined},
		{"nd token", "ND", "", SectorUndetermined},
		{"n/d token", "", "N/D", SectorUndetermined},
		{"unknown token", "Unknown", "", SectorUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.ClassifySector(tt.operator, tt.owner))
		})
	}
}

func TestPatternClassifier_FirstMatchWins(t *testing.T) {
	c := NewPatternClassifier([]ClassificationPattern{
		{Substring: "acme", Sector: SectorPublic},
		{Substring: "acme energy", Sector: SectorPrivate},
	})

	assert.Equal(t, SectorPublic, c.ClassifySector("Acme Energy", ""))
}

func TestPatternClassifier_EmptyListFallsBackToDefaults(t *testing.T) {
	c := NewPatternClassifier([]ClassificationPattern{})
	assert.Equal(t, SectorPublic, c.ClassifySector("CFE Generación V", ""))
}

func TestFieldClassifier(t *testing.T) {
	c := FieldClassifier{}

	tests := []struct {
		name     string
		sector   string
		operator string
		parent   string
		expected Sector
	}{
		{"explicit public", "Público", "", "", SectorPublic},
		{"explicit private", "Privado", "", "", SectorPrivate},
		{"explicit private wins over public operator", "Privado", "CFE", "", SectorPrivate},
		{"cfe keyword", "", "CFE Generación II", "", SectorPublic},
		{"pemex parent", "", "", "Pemex", SectorPublic},
		{"company suffix alone stays undetermined", "", "Energía Azteca X S.A. de C.V.", "", SectorUndetermined},
		{"dotted suffix operator stays undetermined", "", "Desconocido S.A.", "", SectorUndetermined},
		{"known private generator", "", "Iberdrola Renovables", "", SectorPrivate},
		{"unmatched defaults to undetermined", "", "Desconocido", "", SectorUndetermined},
		{"all empty", "", "", "", SectorUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.ClassifyFields(tt.sector, tt.operator, tt.parent))
		})
	}
}

// The two strategies deliberately diverge on the unmatched case: the catalog
// channel assumes private, the CSV channel stays undetermined.
func TestSectorClassifier_DivergentDefaults(t *testing.T) {
	operator := "Desconocido"

	assert.Equal(t, SectorPrivate, NewPatternClassifier(nil).ClassifySector(operator, operator))
	assert.Equal(t, SectorUndetermined, FieldClassifier{}.ClassifySector(operator, operator))
}
