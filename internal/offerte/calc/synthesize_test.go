package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrijzen() PrijsContext {
	producten := make(map[string]ProductPrijs)
	for _, p := range testProducten() {
		producten[p.Naam] = p
	}
	return PrijsContext{Uurtarief: 55, Machinetarief: 85, Producten: producten}
}

func TestSynthesizePrijstPerSoort(t *testing.T) {
	facts := []ScopeFacts{{
		Scope: ScopeGrondwerk,
		Facts: []QuantityFact{
			{Soort: SoortArbeid, Omschrijving: "Ontgraven", Eenheid: "uur", Aantal: 4.5},
			{Soort: SoortMateriaal, Omschrijving: "Afvoer grond", Eenheid: "m³", Aantal: 3.8, Product: ProductGrondafvoer},
			{Soort: SoortMachine, Omschrijving: "Laden", Eenheid: "uur", Aantal: 0.75},
		},
	}}

	regels, err := Synthesize(facts, testPrijzen())
	require.NoError(t, err)
	require.Len(t, regels, 3)

	assert.Equal(t, 55.0, regels[0].PrijsPerEenheid)
	assert.Equal(t, 247.50, regels[0].Totaal)
	assert.Equal(t, OorsprongAfgeleid, regels[0].Oorsprong)

	assert.Equal(t, 45.0, regels[1].PrijsPerEenheid)
	assert.Equal(t, 171.0, regels[1].Totaal)

	assert.Equal(t, 85.0, regels[2].PrijsPerEenheid)
	assert.Equal(t, 63.75, regels[2].Totaal)
}

func TestSynthesizeVerliesPercentage(t *testing.T) {
	facts := []ScopeFacts{{
		Scope: ScopeBestrating,
		Facts: []QuantityFact{
			{Soort: SoortMateriaal, Omschrijving: "Tegels", Eenheid: "m²", Aantal: 10, Product: "betontegel"},
		},
	}}

	regels, err := Synthesize(facts, testPrijzen())
	require.NoError(t, err)
	require.Len(t, regels, 1)

	// 18.50 / (1 - 0.10) = 20.5555... -> 20.56 per bruikbare m2.
	assert.Equal(t, 20.56, regels[0].PrijsPerEenheid)
	assert.Equal(t, 205.60, regels[0].Totaal)
}

func TestSynthesizeOnbekendProductFaaltHard(t *testing.T) {
	facts := []ScopeFacts{{
		Scope: ScopeBestrating,
		Facts: []QuantityFact{
			{Soort: SoortMateriaal, Omschrijving: "Tegels", Eenheid: "m²", Aantal: 10, Product: "marmer"},
		},
	}}

	_, err := Synthesize(facts, testPrijzen())
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "marmer", cerr.Sleutel)
	assert.Equal(t, ScopeBestrating, cerr.Scope)
}

func TestSynthesizeVolgordeEnDeterminisme(t *testing.T) {
	facts := []ScopeFacts{
		{Scope: ScopeGrondwerk, Facts: []QuantityFact{
			{Soort: SoortArbeid, Omschrijving: "Ontgraven", Eenheid: "uur", Aantal: 2},
		}},
		{Scope: ScopeGazon, Facts: []QuantityFact{
			{Soort: SoortArbeid, Omschrijving: "Zaaien", Eenheid: "uur", Aantal: 1},
			{Soort: SoortMateriaal, Omschrijving: "Graszaad", Eenheid: "kg", Aantal: 1.4, Product: ProductGraszaad},
		}},
	}

	eerste, err := Synthesize(facts, testPrijzen())
	require.NoError(t, err)
	tweede, err := Synthesize(facts, testPrijzen())
	require.NoError(t, err)

	// Scope order first, emission order within a scope, and stable IDs: the
	// same input must reproduce the exact same lines.
	require.Equal(t, eerste, tweede)
	assert.Equal(t, []string{ScopeGrondwerk, ScopeGazon, ScopeGazon}, []string{eerste[0].Scope, eerste[1].Scope, eerste[2].Scope})
	assert.NotEqual(t, eerste[1].ID, eerste[2].ID)
}
