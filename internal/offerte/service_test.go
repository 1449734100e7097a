package offerte

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
	"github.com/groenwerk/groenwerk/internal/settings"
)

type fakeRepo struct {
	offertes map[int64]Offerte
	versies  map[int64][]Versie
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{offertes: map[int64]Offerte{}, versies: map[int64][]Versie{}}
}

func (r *fakeRepo) Find(_ context.Context, eigenaarID, id int64) (*Offerte, error) {
	o, ok := r.offertes[id]
	if !ok || o.EigenaarID != eigenaarID {
		return nil, ErrNotFound
	}
	kopie := o
	kopie.Regels = append([]calc.Regel(nil), o.Regels...)
	return &kopie, nil
}

func (r *fakeRepo) List(_ context.Context, eigenaarID int64, filter ListFilter) ([]Offerte, error) {
	var out []Offerte
	for _, o := range r.offertes {
		if o.EigenaarID == eigenaarID && (filter.Status == "" || o.Status == filter.Status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) Insert(_ context.Context, o Offerte) (int64, error) {
	r.nextID++
	o.ID = r.nextID
	r.offertes[o.ID] = o
	return o.ID, nil
}

func (r *fakeRepo) UpdateInvoer(_ context.Context, o Offerte) error {
	bestaand, ok := r.offertes[o.ID]
	if !ok {
		return ErrNotFound
	}
	bestaand.Klant = o.Klant
	bestaand.AlgemeneParams = o.AlgemeneParams
	bestaand.Scopes = o.Scopes
	bestaand.ScopeData = o.ScopeData
	r.offertes[o.ID] = bestaand
	return nil
}

func (r *fakeRepo) UpdateResultaat(_ context.Context, eigenaarID, id int64, regels []calc.Regel, totalen calc.Totalen) error {
	o, ok := r.offertes[id]
	if !ok || o.EigenaarID != eigenaarID {
		return ErrNotFound
	}
	o.Regels = append([]calc.Regel(nil), regels...)
	o.Totalen = totalen
	r.offertes[id] = o
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, eigenaarID, id int64, status Status) error {
	o, ok := r.offertes[id]
	if !ok || o.EigenaarID != eigenaarID {
		return ErrNotFound
	}
	o.Status = status
	r.offertes[id] = o
	return nil
}

func (r *fakeRepo) SnapshotVersie(_ context.Context, offerteID int64, regels []calc.Regel, totalen calc.Totalen) (int, error) {
	versie := len(r.versies[offerteID]) + 1
	r.versies[offerteID] = append(r.versies[offerteID], Versie{
		OfferteID: offerteID,
		Versie:    versie,
		Regels:    append([]calc.Regel(nil), regels...),
		Totalen:   totalen,
		CreatedAt: time.Now(),
	})
	return versie, nil
}

func (r *fakeRepo) ListVersies(_ context.Context, offerteID int64) ([]Versie, error) {
	return r.versies[offerteID], nil
}

type fakeFactoren struct{}

func (fakeFactoren) EffectieveSet(_ context.Context, _ *int64, _ []string) (map[string]map[string]float64, error) {
	return map[string]map[string]float64{
		calc.ConditieBereikbaarheid:    {"goed": 1.0, "beperkt": 1.2, "slecht": 1.4},
		calc.ConditieAchterstalligheid: {"geen": 1.0, "licht": 1.15, "zwaar": 1.35},
		calc.ConditieDiepte:            {"ondiep": 1.0, "standaard": 1.5, "diep": 2.0},
		calc.ConditieComplexiteit:      {"eenvoudig": 1.0, "gemiddeld": 1.2, "complex": 1.45},
		calc.ConditieOndergrond:        {"zand": 1.0, "klei": 1.25, "puin": 1.4},
	}, nil
}

type fakeNormen struct{}

func (fakeNormen) LaadVoorScopes(_ context.Context, _ int64, _ []string) ([]calc.NormUur, error) {
	return []calc.NormUur{
		{Scope: calc.ScopeGrondwerk, Activiteit: calc.ActiviteitOntgraven, UrenPerEenheid: 0.2, Eenheid: "m2"},
		{Scope: calc.ScopeHaag, Activiteit: calc.ActiviteitPlanten, UrenPerEenheid: 0.4, Eenheid: "stuk"},
	}, nil
}

type fakePrijzen struct{}

func (fakePrijzen) LaadPrijzen(_ context.Context, _ int64) ([]calc.ProductPrijs, error) {
	return []calc.ProductPrijs{
		{Naam: calc.ProductGrondafvoer, Verkoopprijs: 30, Eenheid: "m³"},
	}, nil
}

type fakeInstellingen struct{}

func (fakeInstellingen) Get(_ context.Context, eigenaarID int64) (*settings.Instellingen, error) {
	return &settings.Instellingen{
		EigenaarID:          eigenaarID,
		Uurtarief:           55,
		Machinetarief:       85,
		MargePercentage:     20,
		BtwPercentage:       21,
		MachineKostenBucket: calc.MachineInArbeid,
	}, nil
}

type fakeNummers struct{ teller int64 }

func (n *fakeNummers) VolgendNummer(context.Context, int64) (int64, error) {
	n.teller++
	return n.teller, nil
}

func newTestService(repo Repository) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(repo, fakeFactoren{}, fakeNormen{}, fakePrijzen{}, fakeInstellingen{}, logger)
	return svc.WithNummerBron(&fakeNummers{})
}

func grondwerkOfferte() Offerte {
	return Offerte{
		EigenaarID:     7,
		Klant:          Klant{Naam: "Fam. Jansen"},
		AlgemeneParams: AlgemeneParams{Bereikbaarheid: "goed", Achterstalligheid: "geen"},
		Scopes:         []string{calc.ScopeGrondwerk},
		ScopeData: ScopeData{
			Grondwerk: &calc.GrondwerkInput{OppervlakteM2: 15, DiepteKlasse: "standaard", AfvoerGrond: true},
		},
	}
}

func TestHerberekenGrondwerk(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	assert.Equal(t, StatusConcept, o.Status)
	assert.Contains(t, o.Nummer, "OFF-")

	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)
	require.Len(t, o.Regels, 3)

	// 15 m2 at 0.2 h/m2, depth factor 1.5: 4.5 h labor.
	assert.Equal(t, calc.SoortArbeid, o.Regels[0].Soort)
	assert.Equal(t, 4.5, o.Regels[0].Aantal)
	assert.Equal(t, 247.50, o.Regels[0].Totaal)

	// Haul-away volume 3.75 rounds to 3.8 at the calculator boundary.
	assert.Equal(t, calc.SoortMateriaal, o.Regels[1].Soort)
	assert.Equal(t, 3.8, o.Regels[1].Aantal)
	assert.Equal(t, 114.00, o.Regels[1].Totaal)

	// Machine loading time 0.76 h rounds to the quarter hour.
	assert.Equal(t, calc.SoortMachine, o.Regels[2].Soort)
	assert.Equal(t, 0.75, o.Regels[2].Aantal)
	assert.Equal(t, 63.75, o.Regels[2].Totaal)

	t1 := o.Totalen
	assert.Equal(t, 425.25, t1.Subtotaal)
	assert.Equal(t, 85.05, t1.Marge)
	assert.Equal(t, 510.30, t1.TotaalExBtw)
	assert.Equal(t, 107.16, t1.Btw)
	assert.Equal(t, 617.46, t1.TotaalInclBtw)

	// Machine cost lands in the labor bucket; machine hours do not bill.
	assert.Equal(t, 311.25, t1.Arbeidskosten)
	assert.Equal(t, 114.00, t1.Materiaalkosten)
	assert.Equal(t, 4.5, t1.TotaalUren)
}

func TestHerberekenReconciliatie(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)

	som := 0.0
	for _, r := range o.Regels {
		som += r.Totaal
	}
	assert.InDelta(t, o.Totalen.Subtotaal, som, 0.005)
	assert.InDelta(t, o.Totalen.TotaalInclBtw, o.Totalen.TotaalExBtw+o.Totalen.Btw, 0.005)
}

func TestUpdateInvoerHerberekent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 617.46, o.Totalen.TotaalInclBtw)

	invoer := grondwerkOfferte()
	invoer.ID = o.ID
	invoer.ScopeData.Grondwerk.OppervlakteM2 = 30

	o, err = svc.UpdateInvoer(ctx, invoer)
	require.NoError(t, err)
	// Double the area: 9 h labor, the totals follow without a separate
	// recompute call.
	assert.Equal(t, 9.0, o.Regels[0].Aantal)
	assert.NotEqual(t, 617.46, o.Totalen.TotaalInclBtw)
}

func TestHerberekenIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)

	eerste, err := svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)
	tweede, err := svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)

	assert.Equal(t, eerste.Regels, tweede.Regels)
	assert.Equal(t, eerste.Totalen, tweede.Totalen)
}

func TestHerberekenBewaartHandmatigeRegels(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	_, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)

	o, err = svc.VoegRegelToe(ctx, 7, o.ID, calc.Regel{
		Omschrijving:    "Container huur",
		Eenheid:         "week",
		Aantal:          1,
		PrijsPerEenheid: 150,
		Soort:           calc.SoortMateriaal,
	})
	require.NoError(t, err)
	require.Len(t, o.Regels, 4)

	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)
	require.Len(t, o.Regels, 4)

	laatste := o.Regels[len(o.Regels)-1]
	assert.Equal(t, calc.OorsprongHandmatig, laatste.Oorsprong)
	assert.Equal(t, "Container huur", laatste.Omschrijving)
	assert.Equal(t, 150.00, laatste.Totaal)
}

func TestBewerkRegelMaaktHandmatig(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)

	bewerkt := o.Regels[1]
	bewerkt.PrijsPerEenheid = 35
	o, err = svc.BewerkRegel(ctx, 7, o.ID, bewerkt)
	require.NoError(t, err)
	assert.Equal(t, calc.OorsprongHandmatig, o.Regels[1].Oorsprong)
	assert.Equal(t, 133.00, o.Regels[1].Totaal)

	// The edited line now survives recompute in place of the regenerated
	// derived line.
	o, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)
	require.Len(t, o.Regels, 3)
	assert.Equal(t, calc.OorsprongHandmatig, o.Regels[1].Oorsprong)
	assert.Equal(t, 35.00, o.Regels[1].PrijsPerEenheid)
	assert.Equal(t, 133.00, o.Regels[1].Totaal)
}

func TestHerberekenOntbrekendeScopeData(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	invoer := grondwerkOfferte()
	invoer.ScopeData = ScopeData{}
	o, err := svc.Create(ctx, invoer)
	require.NoError(t, err)

	_, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.Error(t, err)
	var valErr *calc.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, calc.ScopeGrondwerk, valErr.Scope)
}

func TestHerberekenOnbekendeSiteConditie(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	invoer := grondwerkOfferte()
	invoer.AlgemeneParams.Bereikbaarheid = "matigg"
	o, err := svc.Create(ctx, invoer)
	require.NoError(t, err)

	_, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.Error(t, err)
	var valErr *calc.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "algemeen", valErr.Scope)
	assert.Equal(t, calc.ConditieBereikbaarheid, valErr.Veld)
}

func TestStatusMachine(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	o, err := svc.Create(ctx, grondwerkOfferte())
	require.NoError(t, err)
	_, err = svc.Herbereken(ctx, 7, o.ID, false)
	require.NoError(t, err)

	// concept -> verzonden skips definitief and is rejected.
	_, err = svc.WijzigStatus(ctx, 7, o.ID, StatusVerzonden)
	assert.ErrorIs(t, err, ErrOngeldigeOvergang)

	_, err = svc.WijzigStatus(ctx, 7, o.ID, StatusDefinitief)
	require.NoError(t, err)
	_, err = svc.WijzigStatus(ctx, 7, o.ID, StatusVerzonden)
	require.NoError(t, err)

	// Sending froze version 1.
	versies, err := svc.Versies(ctx, 7, o.ID)
	require.NoError(t, err)
	require.Len(t, versies, 1)
	assert.Equal(t, 1, versies[0].Versie)

	// A sent quote rejects plain recompute and input edits.
	_, err = svc.Herbereken(ctx, 7, o.ID, false)
	assert.ErrorIs(t, err, ErrOfferteVerzonden)
	invoer := grondwerkOfferte()
	invoer.ID = o.ID
	_, err = svc.UpdateInvoer(ctx, invoer)
	assert.ErrorIs(t, err, ErrOfferteVerzonden)

	// Forced recompute freezes a new version.
	_, err = svc.Herbereken(ctx, 7, o.ID, true)
	require.NoError(t, err)
	versies, err = svc.Versies(ctx, 7, o.ID)
	require.NoError(t, err)
	assert.Len(t, versies, 2)

	_, err = svc.WijzigStatus(ctx, 7, o.ID, StatusGeaccepteerd)
	require.NoError(t, err)
	_, err = svc.WijzigStatus(ctx, 7, o.ID, StatusConcept)
	assert.ErrorIs(t, err, ErrOngeldigeOvergang)
}

func TestCreateWeigertOnbekendeScope(t *testing.T) {
	svc := newTestService(newFakeRepo())

	invoer := grondwerkOfferte()
	invoer.Scopes = []string{"zwembad"}
	_, err := svc.Create(context.Background(), invoer)
	assert.ErrorIs(t, err, ErrOnbekendeScope)
}
