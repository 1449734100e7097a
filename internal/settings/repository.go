package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the owner has no settings row yet.
var ErrNotFound = errors.New("settings: instellingen niet gevonden")

type Repository interface {
	Find(ctx context.Context, eigenaarID int64) (*Instellingen, error)
	Upsert(ctx context.Context, i Instellingen) error
	VolgendNummer(ctx context.Context, eigenaarID int64) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Find(ctx context.Context, eigenaarID int64) (*Instellingen, error) {
	const query = `SELECT eigenaar_id, uurtarief, machinetarief, marge_percentage, btw_percentage,
			machine_kosten_bucket, machine_uren_tellen, offerte_volgnummer, updated_at
		FROM instellingen
		WHERE eigenaar_id = $1`
	var i Instellingen
	err := r.pool.QueryRow(ctx, query, eigenaarID).Scan(&i.EigenaarID, &i.Uurtarief, &i.Machinetarief,
		&i.MargePercentage, &i.BtwPercentage, &i.MachineKostenBucket, &i.MachineUrenTellen,
		&i.OfferteVolgnummer, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *repository) Upsert(ctx context.Context, i Instellingen) error {
	const query = `INSERT INTO instellingen
			(eigenaar_id, uurtarief, machinetarief, marge_percentage, btw_percentage,
			 machine_kosten_bucket, machine_uren_tellen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (eigenaar_id) DO UPDATE SET
			uurtarief = EXCLUDED.uurtarief,
			machinetarief = EXCLUDED.machinetarief,
			marge_percentage = EXCLUDED.marge_percentage,
			btw_percentage = EXCLUDED.btw_percentage,
			machine_kosten_bucket = EXCLUDED.machine_kosten_bucket,
			machine_uren_tellen = EXCLUDED.machine_uren_tellen,
			updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, i.EigenaarID, i.Uurtarief, i.Machinetarief,
		i.MargePercentage, i.BtwPercentage, i.MachineKostenBucket, i.MachineUrenTellen); err != nil {
		return fmt.Errorf("settings: upsert: %w", err)
	}
	return nil
}

// VolgendNummer atomically claims the next quote sequence number for the
// owner. The single UPDATE..RETURNING keeps two concurrent creates from
// getting the same number.
func (r *repository) VolgendNummer(ctx context.Context, eigenaarID int64) (int64, error) {
	const query = `UPDATE instellingen
		SET offerte_volgnummer = offerte_volgnummer + 1, updated_at = now()
		WHERE eigenaar_id = $1
		RETURNING offerte_volgnummer`
	var nummer int64
	err := r.pool.QueryRow(ctx, query, eigenaarID).Scan(&nummer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("settings: volgend nummer: %w", err)
	}
	return nummer, nil
}
