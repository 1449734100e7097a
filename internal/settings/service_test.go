package settings

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

type fakeRepo struct {
	rows map[int64]Instellingen
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]Instellingen{}}
}

func (r *fakeRepo) Find(_ context.Context, eigenaarID int64) (*Instellingen, error) {
	i, ok := r.rows[eigenaarID]
	if !ok {
		return nil, ErrNotFound
	}
	return &i, nil
}

func (r *fakeRepo) Upsert(_ context.Context, i Instellingen) error {
	if bestaand, ok := r.rows[i.EigenaarID]; ok {
		i.OfferteVolgnummer = bestaand.OfferteVolgnummer
	}
	r.rows[i.EigenaarID] = i
	return nil
}

func (r *fakeRepo) VolgendNummer(_ context.Context, eigenaarID int64) (int64, error) {
	i, ok := r.rows[eigenaarID]
	if !ok {
		return 0, ErrNotFound
	}
	i.OfferteVolgnummer++
	r.rows[eigenaarID] = i
	return i.OfferteVolgnummer, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetValtTerugOpStandaard(t *testing.T) {
	svc := newTestService(newFakeRepo())

	i, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 21.0, i.BtwPercentage)
	assert.Equal(t, calc.MachineInArbeid, i.MachineKostenBucket)
	assert.False(t, i.MachineUrenTellen)
}

func TestUpdateValideert(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Update(ctx, Instellingen{EigenaarID: 7, Uurtarief: 0, Machinetarief: 85})
	assert.Error(t, err)

	_, err = svc.Update(ctx, Instellingen{EigenaarID: 7, Uurtarief: 55, Machinetarief: 85, MachineKostenBucket: "overig"})
	assert.Error(t, err)

	i, err := svc.Update(ctx, Instellingen{EigenaarID: 7, Uurtarief: 60, Machinetarief: 90, MargePercentage: 18, BtwPercentage: 21})
	require.NoError(t, err)
	assert.Equal(t, calc.MachineInArbeid, i.MachineKostenBucket)
}

func TestVolgendNummerMaaktRijAan(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	nummer, err := svc.VolgendNummer(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nummer)

	nummer, err = svc.VolgendNummer(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), nummer)
}
