package offerte

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
	"github.com/groenwerk/groenwerk/internal/settings"
)

var (
	// ErrOfferteVerzonden gates recompute and input edits on sent quotes.
	ErrOfferteVerzonden = errors.New("offerte: al verzonden; herberekenen vereist een nieuwe versie")
	// ErrOngeldigeOvergang rejects lifecycle transitions outside the state machine.
	ErrOngeldigeOvergang = errors.New("offerte: ongeldige statusovergang")
	// ErrRegelNietGevonden indicates a line-item edit referenced an unknown line.
	ErrRegelNietGevonden = errors.New("offerte: regel niet gevonden")
	// ErrOnbekendeScope rejects scope ids outside the closed set.
	ErrOnbekendeScope = errors.New("offerte: onbekende scope")
)

const (
	standaardPaginaGrootte = 50
	maxPaginaGrootte       = 200
)

// FactorBron supplies the effective correction-factor set for an owner.
type FactorBron interface {
	EffectieveSet(ctx context.Context, eigenaarID *int64, conditieTypes []string) (map[string]map[string]float64, error)
}

// NormBron supplies norm hours for a set of scopes in one batch.
type NormBron interface {
	LaadVoorScopes(ctx context.Context, eigenaarID int64, scopes []string) ([]calc.NormUur, error)
}

// PrijsBron supplies the active product prices.
type PrijsBron interface {
	LaadPrijzen(ctx context.Context, eigenaarID int64) ([]calc.ProductPrijs, error)
}

// InstellingenBron supplies the owner's pricing parameters.
type InstellingenBron interface {
	Get(ctx context.Context, eigenaarID int64) (*settings.Instellingen, error)
}

// Service is the quote document assembler: it orchestrates the calculators,
// the synthesizer and the aggregator over the stored document.
type Service struct {
	repo         Repository
	factoren     FactorBron
	normen       NormBron
	prijzen      PrijsBron
	instellingen InstellingenBron
	nummers      NummerBron
	log          *slog.Logger
	now          func() time.Time
}

func NewService(repo Repository, factoren FactorBron, normen NormBron, prijzen PrijsBron, instellingen InstellingenBron, log *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		factoren:     factoren,
		normen:       normen,
		prijzen:      prijzen,
		instellingen: instellingen,
		log:          log,
		now:          time.Now,
	}
}

// alleScopes is the closed set of selectable scopes, in presentation order.
var alleScopes = []string{
	calc.ScopeGrondwerk,
	calc.ScopeBestrating,
	calc.ScopeKantopsluiting,
	calc.ScopeGazon,
	calc.ScopeHoutwerk,
	calc.ScopeVerlichting,
	calc.ScopeHaag,
	calc.ScopeBomen,
	calc.ScopeOverig,
	calc.ScopeGazonOnderhoud,
	calc.ScopeHaagOnderhoud,
	calc.ScopeBoomOnderhoud,
}

func geldigeScope(scope string) bool {
	for _, s := range alleScopes {
		if s == scope {
			return true
		}
	}
	return false
}

// NummerBron claims quote sequence numbers.
type NummerBron interface {
	VolgendNummer(ctx context.Context, eigenaarID int64) (int64, error)
}

// WithNummerBron wires the sequence source. Kept separate from the
// constructor because the seeder builds a Service without one.
func (s *Service) WithNummerBron(bron NummerBron) *Service {
	s.nummers = bron
	return s
}

// Create stores a new concept quote with a claimed sequence number.
func (s *Service) Create(ctx context.Context, o Offerte) (*Offerte, error) {
	for _, scope := range o.Scopes {
		if !geldigeScope(scope) {
			return nil, fmt.Errorf("%w: %s", ErrOnbekendeScope, scope)
		}
	}
	if s.nummers != nil {
		volg, err := s.nummers.VolgendNummer(ctx, o.EigenaarID)
		if err != nil {
			return nil, err
		}
		o.Nummer = fmt.Sprintf("OFF-%d-%04d", s.now().Year(), volg)
	}
	o.Status = StatusConcept
	o.Regels = []calc.Regel{}
	o.Totalen = calc.Totalen{}

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		return nil, err
	}
	o.ID = id
	s.log.Info("offerte aangemaakt", slog.Int64("eigenaar", o.EigenaarID),
		slog.Int64("id", id), slog.String("nummer", o.Nummer))
	return &o, nil
}

func (s *Service) Get(ctx context.Context, eigenaarID, id int64) (*Offerte, error) {
	return s.repo.Find(ctx, eigenaarID, id)
}

func (s *Service) List(ctx context.Context, eigenaarID int64, filter ListFilter) ([]Offerte, error) {
	if filter.Status != "" && !filter.Status.Geldig() {
		return nil, fmt.Errorf("%w: onbekende status %q", ErrOngeldigeOvergang, filter.Status)
	}
	if filter.Limit <= 0 || filter.Limit > maxPaginaGrootte {
		filter.Limit = standaardPaginaGrootte
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, eigenaarID, filter)
}

func (s *Service) Versies(ctx context.Context, eigenaarID, id int64) ([]Versie, error) {
	if _, err := s.repo.Find(ctx, eigenaarID, id); err != nil {
		return nil, err
	}
	return s.repo.ListVersies(ctx, id)
}

// UpdateInvoer replaces the quote's inputs and recomputes the derived lines
// so the document never shows totals for inputs it no longer has. Sent and
// decided quotes are immutable.
func (s *Service) UpdateInvoer(ctx context.Context, o Offerte) (*Offerte, error) {
	bestaand, err := s.repo.Find(ctx, o.EigenaarID, o.ID)
	if err != nil {
		return nil, err
	}
	if bestaand.Status != StatusConcept && bestaand.Status != StatusDefinitief {
		return nil, ErrOfferteVerzonden
	}
	for _, scope := range o.Scopes {
		if !geldigeScope(scope) {
			return nil, fmt.Errorf("%w: %s", ErrOnbekendeScope, scope)
		}
	}
	if err := s.repo.UpdateInvoer(ctx, o); err != nil {
		return nil, err
	}
	return s.Herbereken(ctx, o.EigenaarID, o.ID, false)
}

// conditieTypes is every condition family a recompute may consult.
var conditieTypes = []string{
	calc.ConditieBereikbaarheid,
	calc.ConditieAchterstalligheid,
	calc.ConditieDiepte,
	calc.ConditieComplexiteit,
	calc.ConditieOndergrond,
}

// Herbereken recomputes the quote's derived lines and totals from its
// stored inputs. Rates, norms and prices are loaded once per call, not per
// scope. On a sent quote the call fails unless forceer is set, in which
// case the fresh result is also frozen as a new version.
func (s *Service) Herbereken(ctx context.Context, eigenaarID, id int64, forceer bool) (*Offerte, error) {
	o, err := s.repo.Find(ctx, eigenaarID, id)
	if err != nil {
		return nil, err
	}
	naVerzending := o.Status != StatusConcept && o.Status != StatusDefinitief
	if naVerzending && !forceer {
		return nil, ErrOfferteVerzonden
	}

	regels, totalen, err := s.bereken(ctx, o)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateResultaat(ctx, eigenaarID, id, regels, *totalen); err != nil {
		return nil, err
	}
	if naVerzending {
		versie, err := s.repo.SnapshotVersie(ctx, id, regels, *totalen)
		if err != nil {
			return nil, err
		}
		s.log.Info("offerte herberekend als nieuwe versie",
			slog.Int64("id", id), slog.Int("versie", versie))
	}

	o.Regels = regels
	o.Totalen = *totalen
	return o, nil
}

// bereken runs the full pipeline without persisting: batched rate loads,
// per-scope calculators, synthesis, manual-line merge, aggregation.
func (s *Service) bereken(ctx context.Context, o *Offerte) ([]calc.Regel, *calc.Totalen, error) {
	inst, err := s.instellingen.Get(ctx, o.EigenaarID)
	if err != nil {
		return nil, nil, err
	}
	factoren, err := s.factoren.EffectieveSet(ctx, &o.EigenaarID, conditieTypes)
	if err != nil {
		return nil, nil, err
	}
	normen, err := s.normen.LaadVoorScopes(ctx, o.EigenaarID, o.Scopes)
	if err != nil {
		return nil, nil, err
	}
	prijzen, err := s.prijzen.LaadPrijzen(ctx, o.EigenaarID)
	if err != nil {
		return nil, nil, err
	}

	rc := calc.NewRateContext(factoren, normen, prijzen)
	site, err := resolveSite(rc, o.AlgemeneParams)
	if err != nil {
		return nil, nil, err
	}

	// Scopes compute independently; results rejoin in selection order so
	// the line list is deterministic.
	perScope := make([]calc.ScopeFacts, len(o.Scopes))
	g, gctx := errgroup.WithContext(ctx)
	for i, scope := range o.Scopes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			facts, err := berekenScope(scope, o.ScopeData, site, rc.VoorScope(scope))
			if err != nil {
				return err
			}
			perScope[i] = calc.ScopeFacts{Scope: scope, Facts: facts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	productPrijzen := make(map[string]calc.ProductPrijs, len(prijzen))
	for _, p := range prijzen {
		productPrijzen[p.Naam] = p
	}
	regels, err := calc.Synthesize(perScope, calc.PrijsContext{
		Uurtarief:     inst.Uurtarief,
		Machinetarief: inst.Machinetarief,
		Producten:     productPrijzen,
	})
	if err != nil {
		return nil, nil, err
	}

	// Manual lines survive recompute. A manual line that overrode a derived
	// line (same id) replaces the regenerated one in place; the rest are
	// appended after the derived lines in their stored order.
	handmatig := make(map[string]calc.Regel)
	var volgorde []string
	for _, r := range o.Regels {
		if r.Oorsprong == calc.OorsprongHandmatig {
			handmatig[r.ID] = r
			volgorde = append(volgorde, r.ID)
		}
	}
	for i := range regels {
		if m, ok := handmatig[regels[i].ID]; ok {
			regels[i] = m
			delete(handmatig, m.ID)
		}
	}
	for _, id := range volgorde {
		if m, ok := handmatig[id]; ok {
			regels = append(regels, m)
		}
	}

	totalen := calc.Aggregate(regels, inst.MargePercentage, inst.BtwPercentage, inst.MachinePolicy())
	return regels, &totalen, nil
}

// resolveSite turns the quote's site parameters into multipliers. A value
// missing from both tiers is reported against the shared "algemeen" scope
// so the UI can point at the field.
func resolveSite(rc *calc.RateContext, params AlgemeneParams) (calc.SiteConditions, error) {
	sc := rc.VoorScope("algemeen")
	bereikbaarheid, err := sc.Factor(calc.ConditieBereikbaarheid, params.Bereikbaarheid)
	if err != nil {
		return calc.SiteConditions{}, err
	}
	achterstalligheid, err := sc.Factor(calc.ConditieAchterstalligheid, params.Achterstalligheid)
	if err != nil {
		return calc.SiteConditions{}, err
	}
	return calc.SiteConditions{
		Bereikbaarheid:    bereikbaarheid,
		Achterstalligheid: achterstalligheid,
	}, nil
}

// berekenScope dispatches one selected scope to its calculator. A selected
// scope without input data is a validation error, not an empty result.
func berekenScope(scope string, data ScopeData, site calc.SiteConditions, sc *calc.ScopeContext) ([]calc.QuantityFact, error) {
	ontbreekt := func() error {
		return &calc.ValidationError{Scope: scope, Veld: "scopeData", Reden: "geen invoer voor geselecteerde scope"}
	}
	switch scope {
	case calc.ScopeGrondwerk:
		if data.Grondwerk == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenGrondwerk(*data.Grondwerk, site, sc)
	case calc.ScopeBestrating:
		if data.Bestrating == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenBestrating(*data.Bestrating, site, sc)
	case calc.ScopeKantopsluiting:
		if data.Kantopsluiting == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenKantopsluiting(*data.Kantopsluiting, site, sc)
	case calc.ScopeGazon:
		if data.Gazon == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenGazon(*data.Gazon, site, sc)
	case calc.ScopeHoutwerk:
		if data.Houtwerk == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenHoutwerk(*data.Houtwerk, site, sc)
	case calc.ScopeVerlichting:
		if data.Verlichting == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenVerlichting(*data.Verlichting, site, sc)
	case calc.ScopeHaag:
		if data.Haag == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenHaag(*data.Haag, site, sc)
	case calc.ScopeBomen:
		if data.Bomen == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenBomen(*data.Bomen, site, sc)
	case calc.ScopeOverig:
		if data.Overig == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenOverig(*data.Overig, site, sc)
	case calc.ScopeGazonOnderhoud:
		if data.GazonOnderhoud == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenGazonOnderhoud(*data.GazonOnderhoud, site, sc)
	case calc.ScopeHaagOnderhoud:
		if data.HaagOnderhoud == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenHaagOnderhoud(*data.HaagOnderhoud, site, sc)
	case calc.ScopeBoomOnderhoud:
		if data.BoomOnderhoud == nil {
			return nil, ontbreekt()
		}
		return calc.BerekenBoomOnderhoud(*data.BoomOnderhoud, site, sc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrOnbekendeScope, scope)
	}
}

// BewerkRegel overwrites one line by id. Editing a derived line converts it
// to a manual line, which the next recompute then leaves alone. Totals are
// re-aggregated immediately.
func (s *Service) BewerkRegel(ctx context.Context, eigenaarID, id int64, regel calc.Regel) (*Offerte, error) {
	o, err := s.repo.Find(ctx, eigenaarID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusConcept && o.Status != StatusDefinitief {
		return nil, ErrOfferteVerzonden
	}

	gevonden := false
	for i := range o.Regels {
		if o.Regels[i].ID == regel.ID {
			regel.Oorsprong = calc.OorsprongHandmatig
			regel.Totaal = calc.RondBedrag(regel.Aantal * regel.PrijsPerEenheid)
			o.Regels[i] = regel
			gevonden = true
			break
		}
	}
	if !gevonden {
		return nil, ErrRegelNietGevonden
	}
	return s.herAggregeer(ctx, o)
}

// VoegRegelToe appends a manual line.
func (s *Service) VoegRegelToe(ctx context.Context, eigenaarID, id int64, regel calc.Regel) (*Offerte, error) {
	o, err := s.repo.Find(ctx, eigenaarID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusConcept && o.Status != StatusDefinitief {
		return nil, ErrOfferteVerzonden
	}

	regel.ID = nieuwRegelID()
	regel.Oorsprong = calc.OorsprongHandmatig
	regel.Totaal = calc.RondBedrag(regel.Aantal * regel.PrijsPerEenheid)
	o.Regels = append(o.Regels, regel)
	return s.herAggregeer(ctx, o)
}

// VerwijderRegel drops one line. A dropped derived line reappears on the
// next recompute; a dropped manual line is gone for good.
func (s *Service) VerwijderRegel(ctx context.Context, eigenaarID, id int64, regelID string) (*Offerte, error) {
	o, err := s.repo.Find(ctx, eigenaarID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusConcept && o.Status != StatusDefinitief {
		return nil, ErrOfferteVerzonden
	}

	gevonden := false
	for i := range o.Regels {
		if o.Regels[i].ID == regelID {
			o.Regels = append(o.Regels[:i], o.Regels[i+1:]...)
			gevonden = true
			break
		}
	}
	if !gevonden {
		return nil, ErrRegelNietGevonden
	}
	return s.herAggregeer(ctx, o)
}

// nieuwRegelID ids manual lines. Unlike derived lines these are not
// content-addressed: the same manual line added twice is two lines.
func nieuwRegelID() string {
	return uuid.NewString()
}

// herAggregeer re-sums the (edited) line list and persists the result.
// Only the totals pipeline runs; no calculator is consulted.
func (s *Service) herAggregeer(ctx context.Context, o *Offerte) (*Offerte, error) {
	inst, err := s.instellingen.Get(ctx, o.EigenaarID)
	if err != nil {
		return nil, err
	}
	o.Totalen = calc.Aggregate(o.Regels, inst.MargePercentage, inst.BtwPercentage, inst.MachinePolicy())
	if err := s.repo.UpdateResultaat(ctx, o.EigenaarID, o.ID, o.Regels, o.Totalen); err != nil {
		return nil, err
	}
	return o, nil
}

// WijzigStatus moves the quote through its lifecycle. Sending freezes the
// current lines and totals as version 1 (or the next number).
func (s *Service) WijzigStatus(ctx context.Context, eigenaarID, id int64, doel Status) (*Offerte, error) {
	if !doel.Geldig() {
		return nil, fmt.Errorf("%w: onbekende status %q", ErrOngeldigeOvergang, doel)
	}
	o, err := s.repo.Find(ctx, eigenaarID, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.KanNaar(doel) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrOngeldigeOvergang, o.Status, doel)
	}

	if doel == StatusVerzonden {
		versie, err := s.repo.SnapshotVersie(ctx, id, o.Regels, o.Totalen)
		if err != nil {
			return nil, err
		}
		s.log.Info("offerte verzonden", slog.Int64("id", id), slog.Int("versie", versie))
	}
	if err := s.repo.UpdateStatus(ctx, eigenaarID, id, doel); err != nil {
		return nil, err
	}
	o.Status = doel
	return o, nil
}
