package calc

// Scope identifiers. Each selectable unit of work has its own input shape and
// calculator; maintenance scopes additionally weigh the site's maintenance
// backlog.
const (
	ScopeGrondwerk       = "grondwerk"
	ScopeBestrating      = "bestrating"
	ScopeKantopsluiting  = "kantopsluiting"
	ScopeGazon           = "gazon"
	ScopeHoutwerk        = "houtwerk"
	ScopeVerlichting     = "verlichting"
	ScopeHaag            = "haag"
	ScopeBomen           = "bomen"
	ScopeOverig          = "overig"
	ScopeGazonOnderhoud  = "gazononderhoud"
	ScopeHaagOnderhoud   = "haagonderhoud"
	ScopeBoomOnderhoud   = "boomonderhoud"
)

// Catalog product names the calculators reference for bulk goods. These are
// seeded alongside the demo data; a missing entry surfaces as a
// ConfigurationError at synthesis time.
const (
	ProductGrondafvoer = "grondafvoer"
	ProductStraatzand  = "straatzand"
	ProductGraszaad    = "graszaad"
	ProductGraszoden   = "graszoden"
	ProductGrondkabel  = "grondkabel"
	ProductGroenafval  = "groenafval afvoer"
)
