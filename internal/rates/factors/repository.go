package factors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groenwerk/groenwerk/internal/platform/db"
)

// ErrNotFound indicates no factor record matched.
var ErrNotFound = errors.New("factors: record niet gevonden")

// Repository provides persistence for the two-tier correction-factor table.
// Default-tier and owner-tier queries are kept separate on purpose; the
// service layer decides how they combine.
type Repository interface {
	FindStandaard(ctx context.Context, conditieType, conditieWaarde string) (*CorrectieFactor, error)
	FindVoorEigenaar(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string) (*CorrectieFactor, error)
	ListStandaard(ctx context.Context) ([]CorrectieFactor, error)
	ListStandaardVoorType(ctx context.Context, conditieType string) ([]CorrectieFactor, error)
	ListVoorEigenaar(ctx context.Context, eigenaarID int64) ([]CorrectieFactor, error)
	ListVoorEigenaarType(ctx context.Context, eigenaarID int64, conditieType string) ([]CorrectieFactor, error)
	Insert(ctx context.Context, f CorrectieFactor) (int64, error)
	InsertStandaarden(ctx context.Context, factoren []CorrectieFactor) (int, error)
	UpdateFactor(ctx context.Context, id int64, factor float64) error
	DeleteOverride(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string) (bool, error)
	CountStandaard(ctx context.Context) (int, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a pgx-backed factor repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const factorColumns = `id, eigenaar_id, conditie_type, conditie_waarde, factor, created_at, updated_at`

func scanFactor(row pgx.Row) (*CorrectieFactor, error) {
	var f CorrectieFactor
	err := row.Scan(&f.ID, &f.EigenaarID, &f.ConditieType, &f.ConditieWaarde, &f.Factor, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) FindStandaard(ctx context.Context, conditieType, conditieWaarde string) (*CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id IS NULL AND conditie_type = $1 AND conditie_waarde = $2
		LIMIT 1`
	return scanFactor(r.pool.QueryRow(ctx, query, conditieType, conditieWaarde))
}

func (r *repository) FindVoorEigenaar(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string) (*CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id = $1 AND conditie_type = $2 AND conditie_waarde = $3
		LIMIT 1`
	return scanFactor(r.pool.QueryRow(ctx, query, eigenaarID, conditieType, conditieWaarde))
}

func (r *repository) collect(ctx context.Context, query string, args ...any) ([]CorrectieFactor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var factoren []CorrectieFactor
	for rows.Next() {
		var f CorrectieFactor
		if err := rows.Scan(&f.ID, &f.EigenaarID, &f.ConditieType, &f.ConditieWaarde, &f.Factor, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		factoren = append(factoren, f)
	}
	return factoren, rows.Err()
}

func (r *repository) ListStandaard(ctx context.Context) ([]CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id IS NULL
		ORDER BY conditie_type, conditie_waarde`
	return r.collect(ctx, query)
}

func (r *repository) ListStandaardVoorType(ctx context.Context, conditieType string) ([]CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id IS NULL AND conditie_type = $1
		ORDER BY conditie_waarde`
	return r.collect(ctx, query, conditieType)
}

func (r *repository) ListVoorEigenaar(ctx context.Context, eigenaarID int64) ([]CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id = $1
		ORDER BY conditie_type, conditie_waarde`
	return r.collect(ctx, query, eigenaarID)
}

func (r *repository) ListVoorEigenaarType(ctx context.Context, eigenaarID int64, conditieType string) ([]CorrectieFactor, error) {
	const query = `SELECT ` + factorColumns + `
		FROM correctie_factoren
		WHERE eigenaar_id = $1 AND conditie_type = $2
		ORDER BY conditie_waarde`
	return r.collect(ctx, query, eigenaarID, conditieType)
}

func (r *repository) Insert(ctx context.Context, f CorrectieFactor) (int64, error) {
	const query = `INSERT INTO correctie_factoren (eigenaar_id, conditie_type, conditie_waarde, factor)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	if err := r.pool.QueryRow(ctx, query, f.EigenaarID, f.ConditieType, f.ConditieWaarde, f.Factor).Scan(&id); err != nil {
		return 0, fmt.Errorf("factors: insert: %w", err)
	}
	return id, nil
}

// InsertStandaarden writes the full default set in one transaction: either
// the entire catalog lands or none of it.
func (r *repository) InsertStandaarden(ctx context.Context, factoren []CorrectieFactor) (int, error) {
	const query = `INSERT INTO correctie_factoren (eigenaar_id, conditie_type, conditie_waarde, factor)
		VALUES (NULL, $1, $2, $3)`
	var inserted int
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, f := range factoren {
			if _, err := tx.Exec(ctx, query, f.ConditieType, f.ConditieWaarde, f.Factor); err != nil {
				return fmt.Errorf("factors: seed %s=%s: %w", f.ConditieType, f.ConditieWaarde, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *repository) UpdateFactor(ctx context.Context, id int64, factor float64) error {
	const query = `UPDATE correctie_factoren SET factor = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, factor)
	if err != nil {
		return fmt.Errorf("factors: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteOverride(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string) (bool, error) {
	const query = `DELETE FROM correctie_factoren
		WHERE eigenaar_id = $1 AND conditie_type = $2 AND conditie_waarde = $3`
	tag, err := r.pool.Exec(ctx, query, eigenaarID, conditieType, conditieWaarde)
	if err != nil {
		return false, fmt.Errorf("factors: delete override: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repository) CountStandaard(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM correctie_factoren WHERE eigenaar_id IS NULL`
	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
