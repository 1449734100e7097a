package calc

// Shared fixtures for the calculator tests: a rate context filled the way the
// seeder fills a fresh installation.

func testFactoren() map[string]map[string]float64 {
	return map[string]map[string]float64{
		ConditieBereikbaarheid:    {"goed": 1.0, "beperkt": 1.2, "slecht": 1.4},
		ConditieAchterstalligheid: {"geen": 1.0, "licht": 1.15, "zwaar": 1.35},
		ConditieDiepte:            {"ondiep": 1.0, "standaard": 1.5, "diep": 2.0},
		ConditieComplexiteit:      {"eenvoudig": 1.0, "gemiddeld": 1.2, "complex": 1.45},
		ConditieOndergrond:        {"zand": 1.0, "klei": 1.25, "puin": 1.4},
	}
}

func testNormUren() []NormUur {
	return []NormUur{
		{Scope: ScopeGrondwerk, Activiteit: ActiviteitOntgraven, UrenPerEenheid: 0.2, Eenheid: "m²"},
		{Scope: ScopeBestrating, Activiteit: ActiviteitLeggen, UrenPerEenheid: 0.5, Eenheid: "m²"},
		{Scope: ScopeKantopsluiting, Activiteit: ActiviteitPlaatsen, UrenPerEenheid: 0.25, Eenheid: "m"},
		{Scope: ScopeGazon, Activiteit: AanlegZaaien, UrenPerEenheid: 0.15, Eenheid: "m²"},
		{Scope: ScopeGazon, Activiteit: AanlegGraszoden, UrenPerEenheid: 0.12, Eenheid: "m²"},
		{Scope: ScopeHoutwerk, Activiteit: OnderdeelSchutting, UrenPerEenheid: 1.2, Eenheid: "m"},
		{Scope: ScopeHoutwerk, Activiteit: OnderdeelVlonder, UrenPerEenheid: 0.9, Eenheid: "m²"},
		{Scope: ScopeVerlichting, Activiteit: ActiviteitArmatuurMonteren, UrenPerEenheid: 0.75, Eenheid: "st"},
		{Scope: ScopeVerlichting, Activiteit: ActiviteitKabelLeggen, UrenPerEenheid: 0.1, Eenheid: "m"},
		{Scope: ScopeHaag, Activiteit: ActiviteitPlanten, UrenPerEenheid: 0.4, Eenheid: "m"},
		{Scope: ScopeBomen, Activiteit: ActiviteitPlanten, UrenPerEenheid: 1.5, Eenheid: "st"},
		{Scope: ScopeGazonOnderhoud, Activiteit: ActiviteitMaaien, UrenPerEenheid: 0.02, Eenheid: "m²"},
		{Scope: ScopeHaagOnderhoud, Activiteit: ActiviteitSnoeien, UrenPerEenheid: 0.3, Eenheid: "m"},
		{Scope: ScopeBoomOnderhoud, Activiteit: ActiviteitSnoeien, UrenPerEenheid: 1.0, Eenheid: "st"},
		{Scope: ScopeBoomOnderhoud, Activiteit: ActiviteitRooien, UrenPerEenheid: 2.5, Eenheid: "st"},
	}
}

func testProducten() []ProductPrijs {
	return []ProductPrijs{
		{Naam: ProductGrondafvoer, Verkoopprijs: 45, Eenheid: "m³"},
		{Naam: ProductStraatzand, Verkoopprijs: 38.5, Eenheid: "m³"},
		{Naam: ProductGraszaad, Verkoopprijs: 12.5, Eenheid: "kg"},
		{Naam: ProductGraszoden, Verkoopprijs: 6.75, VerliesPercentage: 0.05, Eenheid: "m²"},
		{Naam: ProductGrondkabel, Verkoopprijs: 2.4, Eenheid: "m"},
		{Naam: ProductGroenafval, Verkoopprijs: 32, Eenheid: "m³"},
		{Naam: "betontegel", Verkoopprijs: 18.5, VerliesPercentage: 0.1, Eenheid: "m²"},
		{Naam: "beukenhaag", Verkoopprijs: 4.25, Eenheid: "st"},
	}
}

func testRateContext() *RateContext {
	return NewRateContext(testFactoren(), testNormUren(), testProducten())
}

func vlakTerrein() SiteConditions {
	return SiteConditions{Bereikbaarheid: 1.0, Achterstalligheid: 1.0}
}
