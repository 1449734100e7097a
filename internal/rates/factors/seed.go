package factors

// standaardFactoren is the fixed seed set of system defaults. Inserted once
// by InitialiseerStandaarden; users override individual entries from here.
var standaardFactoren = []CorrectieFactor{
	{ConditieType: "bereikbaarheid", ConditieWaarde: "goed", Factor: 1.0},
	{ConditieType: "bereikbaarheid", ConditieWaarde: "beperkt", Factor: 1.2},
	{ConditieType: "bereikbaarheid", ConditieWaarde: "slecht", Factor: 1.4},

	{ConditieType: "achterstalligheid", ConditieWaarde: "geen", Factor: 1.0},
	{ConditieType: "achterstalligheid", ConditieWaarde: "licht", Factor: 1.15},
	{ConditieType: "achterstalligheid", ConditieWaarde: "zwaar", Factor: 1.35},

	{ConditieType: "diepte", ConditieWaarde: "ondiep", Factor: 1.0},
	{ConditieType: "diepte", ConditieWaarde: "standaard", Factor: 1.5},
	{ConditieType: "diepte", ConditieWaarde: "diep", Factor: 2.0},

	{ConditieType: "complexiteit", ConditieWaarde: "eenvoudig", Factor: 1.0},
	{ConditieType: "complexiteit", ConditieWaarde: "gemiddeld", Factor: 1.2},
	{ConditieType: "complexiteit", ConditieWaarde: "complex", Factor: 1.45},

	{ConditieType: "ondergrond", ConditieWaarde: "zand", Factor: 1.0},
	{ConditieType: "ondergrond", ConditieWaarde: "klei", Factor: 1.25},
	{ConditieType: "ondergrond", ConditieWaarde: "puin", Factor: 1.4},
}
