package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBerekenBestrating(t *testing.T) {
	rc := testRateContext()
	in := BestratingInput{OppervlakteM2: 20, Materiaal: "betontegel", OndergrondKlasse: "klei", ZandbedDikteCm: 5}

	facts, err := BerekenBestrating(in, vlakTerrein(), rc.VoorScope(ScopeBestrating))
	require.NoError(t, err)
	require.Len(t, facts, 4)

	// 20 * 0.5 * 1.25 = 12.5 u.
	assert.Equal(t, 12.5, facts[0].Aantal)
	assert.Equal(t, SoortArbeid, facts[0].Soort)

	assert.Equal(t, "betontegel", facts[1].Product)
	assert.Equal(t, 20.0, facts[1].Aantal)

	// 20 m2 * 5 cm = 1.0 m3 zand.
	assert.Equal(t, ProductStraatzand, facts[2].Product)
	assert.Equal(t, 1.0, facts[2].Aantal)

	// 20 * 0.015 = 0.3 -> kwartier 0.25.
	assert.Equal(t, SoortMachine, facts[3].Soort)
	assert.Equal(t, 0.25, facts[3].Aantal)
}

func TestBerekenKantopsluiting(t *testing.T) {
	rc := testRateContext()
	facts, err := BerekenKantopsluiting(KantopsluitingInput{LengteM: 12, BandType: "betonband"}, vlakTerrein(), rc.VoorScope(ScopeKantopsluiting))
	require.NoError(t, err)
	require.Len(t, facts, 2)
	// 12 * 0.25 = 3.0 u.
	assert.Equal(t, 3.0, facts[0].Aantal)
	assert.Equal(t, "betonband", facts[1].Product)
	assert.Equal(t, 12.0, facts[1].Aantal)
}

func TestBerekenGazonZaaien(t *testing.T) {
	rc := testRateContext()
	facts, err := BerekenGazon(GazonInput{OppervlakteM2: 40, Aanlegwijze: AanlegZaaien}, vlakTerrein(), rc.VoorScope(ScopeGazon))
	require.NoError(t, err)
	require.Len(t, facts, 2)
	// 40 * 0.15 = 6.0 u.
	assert.Equal(t, 6.0, facts[0].Aantal)
	// 40 * 0.035 = 1.4 kg.
	assert.Equal(t, ProductGraszaad, facts[1].Product)
	assert.Equal(t, 1.4, facts[1].Aantal)
}

func TestBerekenGazonOnbekendeAanlegwijze(t *testing.T) {
	rc := testRateContext()
	_, err := BerekenGazon(GazonInput{OppervlakteM2: 40, Aanlegwijze: "hydrospray"}, vlakTerrein(), rc.VoorScope(ScopeGazon))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "aanlegwijze", verr.Veld)
}

func TestBerekenHoutwerkSchuttingMetComplexiteit(t *testing.T) {
	rc := testRateContext()
	in := HoutwerkInput{Onderdeel: OnderdeelSchutting, LengteM: 10, ComplexiteitKlasse: "gemiddeld"}

	facts, err := BerekenHoutwerk(in, vlakTerrein(), rc.VoorScope(ScopeHoutwerk))
	require.NoError(t, err)
	require.Len(t, facts, 2)
	// 10 * 1.2 * 1.2 = 14.4 -> kwartier 14.5.
	assert.Equal(t, 14.5, facts[0].Aantal)
	assert.Equal(t, "schutting", facts[1].Product)
}

func TestBerekenVerlichting(t *testing.T) {
	rc := testRateContext()
	in := VerlichtingInput{AantalArmaturen: 6, Armatuur: "tuinspot", KabelLengteM: 25}

	facts, err := BerekenVerlichting(in, vlakTerrein(), rc.VoorScope(ScopeVerlichting))
	require.NoError(t, err)
	require.Len(t, facts, 4)
	// 6 * 0.75 = 4.5 u monteren; 25 * 0.1 = 2.5 u kabel.
	assert.Equal(t, 4.5, facts[0].Aantal)
	assert.Equal(t, "tuinspot", facts[1].Product)
	assert.Equal(t, 2.5, facts[2].Aantal)
	assert.Equal(t, ProductGrondkabel, facts[3].Product)
}

func TestBerekenHaagTeltPlantenOpNaarHeleStuks(t *testing.T) {
	rc := testRateContext()
	in := HaagInput{LengteM: 7.3, HaagType: "beukenhaag"}

	facts, err := BerekenHaag(in, vlakTerrein(), rc.VoorScope(ScopeHaag))
	require.NoError(t, err)
	require.Len(t, facts, 2)
	// 7.3 m * 4 planten/m = 29.2 -> 30 stuks.
	assert.Equal(t, 30.0, facts[1].Aantal)
}

func TestBerekenBomenZwaarKrijgtGrondboor(t *testing.T) {
	rc := testRateContext()
	in := BomenInput{Aantal: 2, Soort: "lindeboom", PlantmaatKlasse: "zwaar"}

	facts, err := BerekenBomen(in, vlakTerrein(), rc.VoorScope(ScopeBomen))
	require.NoError(t, err)
	require.Len(t, facts, 3)
	// 2 * 1.5 * 1.5 = 4.5 u.
	assert.Equal(t, 4.5, facts[0].Aantal)
	assert.Equal(t, SoortMachine, facts[2].Soort)
	assert.Equal(t, 1.0, facts[2].Aantal)
}

func TestBerekenGazonOnderhoudWeegtAchterstand(t *testing.T) {
	rc := testRateContext()
	site := SiteConditions{Bereikbaarheid: 1.0, Achterstalligheid: 1.35}
	in := GazonOnderhoudInput{OppervlakteM2: 200, Beurten: 10}

	facts, err := BerekenGazonOnderhoud(in, site, rc.VoorScope(ScopeGazonOnderhoud))
	require.NoError(t, err)
	require.Len(t, facts, 1)
	// 200 * 0.02 * 1.35 * 10 = 54.0 u.
	assert.Equal(t, 54.0, facts[0].Aantal)
}

func TestBerekenHaagOnderhoudMetAfvoer(t *testing.T) {
	rc := testRateContext()
	in := HaagOnderhoudInput{LengteM: 20, HoogteM: 2.0, AfvoerSnoeisel: true}

	facts, err := BerekenHaagOnderhoud(in, vlakTerrein(), rc.VoorScope(ScopeHaagOnderhoud))
	require.NoError(t, err)
	require.Len(t, facts, 2)
	// 20 * 1.3 (hoog) * 0.3 = 7.8 -> kwartier 7.75.
	assert.Equal(t, 7.75, facts[0].Aantal)
	// 20 * 2.0 * 0.06 = 2.4 m3.
	assert.Equal(t, 2.4, facts[1].Aantal)
	assert.Equal(t, ProductGroenafval, facts[1].Product)
}

func TestBerekenBoomOnderhoudRooien(t *testing.T) {
	rc := testRateContext()
	in := BoomOnderhoudInput{Aantal: 3, Ingreep: ActiviteitRooien}

	facts, err := BerekenBoomOnderhoud(in, vlakTerrein(), rc.VoorScope(ScopeBoomOnderhoud))
	require.NoError(t, err)
	require.Len(t, facts, 3)
	// 3 * 2.5 = 7.5 u.
	assert.Equal(t, 7.5, facts[0].Aantal)
	// 3 * 0.75 = 2.25 u frezen.
	assert.Equal(t, 2.25, facts[1].Aantal)
	// 3 * 0.4 = 1.2 m3 afval.
	assert.Equal(t, 1.2, facts[2].Aantal)
}

func TestBerekenOverig(t *testing.T) {
	rc := testRateContext()
	in := OverigInput{Omschrijving: "Vijver schoonmaken", Uren: 3.4}

	facts, err := BerekenOverig(in, vlakTerrein(), rc.VoorScope(ScopeOverig))
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, 3.5, facts[0].Aantal)
	assert.Equal(t, "Vijver schoonmaken", facts[0].Omschrijving)
}

func TestNulInvoerGeeftGeenFactsGeenFout(t *testing.T) {
	rc := testRateContext()
	site := vlakTerrein()

	tests := []struct {
		naam  string
		bereken func() ([]QuantityFact, error)
	}{
		{"bestrating", func() ([]QuantityFact, error) {
			return BerekenBestrating(BestratingInput{}, site, rc.VoorScope(ScopeBestrating))
		}},
		{"kantopsluiting", func() ([]QuantityFact, error) {
			return BerekenKantopsluiting(KantopsluitingInput{}, site, rc.VoorScope(ScopeKantopsluiting))
		}},
		{"gazon", func() ([]QuantityFact, error) {
			return BerekenGazon(GazonInput{}, site, rc.VoorScope(ScopeGazon))
		}},
		{"houtwerk", func() ([]QuantityFact, error) {
			return BerekenHoutwerk(HoutwerkInput{Onderdeel: OnderdeelSchutting}, site, rc.VoorScope(ScopeHoutwerk))
		}},
		{"verlichting", func() ([]QuantityFact, error) {
			return BerekenVerlichting(VerlichtingInput{}, site, rc.VoorScope(ScopeVerlichting))
		}},
		{"haag", func() ([]QuantityFact, error) {
			return BerekenHaag(HaagInput{}, site, rc.VoorScope(ScopeHaag))
		}},
		{"bomen", func() ([]QuantityFact, error) {
			return BerekenBomen(BomenInput{}, site, rc.VoorScope(ScopeBomen))
		}},
		{"overig", func() ([]QuantityFact, error) {
			return BerekenOverig(OverigInput{}, site, rc.VoorScope(ScopeOverig))
		}},
		{"gazononderhoud", func() ([]QuantityFact, error) {
			return BerekenGazonOnderhoud(GazonOnderhoudInput{}, site, rc.VoorScope(ScopeGazonOnderhoud))
		}},
		{"haagonderhoud", func() ([]QuantityFact, error) {
			return BerekenHaagOnderhoud(HaagOnderhoudInput{}, site, rc.VoorScope(ScopeHaagOnderhoud))
		}},
		{"boomonderhoud", func() ([]QuantityFact, error) {
			return BerekenBoomOnderhoud(BoomOnderhoudInput{}, site, rc.VoorScope(ScopeBoomOnderhoud))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.naam, func(t *testing.T) {
			facts, err := tc.bereken()
			require.NoError(t, err)
			assert.Empty(t, facts)
		})
	}
}
