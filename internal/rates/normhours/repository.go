package normhours

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no norm-hour record matched.
var ErrNotFound = errors.New("normhours: record niet gevonden")

type Repository interface {
	Find(ctx context.Context, eigenaarID int64, scope, activiteit string) (*NormUur, error)
	ListVoorEigenaar(ctx context.Context, eigenaarID int64) ([]NormUur, error)
	ListVoorScopes(ctx context.Context, eigenaarID int64, scopes []string) ([]NormUur, error)
	Insert(ctx context.Context, n NormUur) (int64, error)
	Update(ctx context.Context, id int64, urenPerEenheid float64, eenheid string) error
	Delete(ctx context.Context, eigenaarID, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const normColumns = `id, eigenaar_id, scope, activiteit, uren_per_eenheid, eenheid, created_at, updated_at`

func (r *repository) Find(ctx context.Context, eigenaarID int64, scope, activiteit string) (*NormUur, error) {
	const query = `SELECT ` + normColumns + `
		FROM norm_uren
		WHERE eigenaar_id = $1 AND scope = $2 AND activiteit = $3
		LIMIT 1`
	var n NormUur
	err := r.pool.QueryRow(ctx, query, eigenaarID, scope, activiteit).
		Scan(&n.ID, &n.EigenaarID, &n.Scope, &n.Activiteit, &n.UrenPerEenheid, &n.Eenheid, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) collect(ctx context.Context, query string, args ...any) ([]NormUur, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var normen []NormUur
	for rows.Next() {
		var n NormUur
		if err := rows.Scan(&n.ID, &n.EigenaarID, &n.Scope, &n.Activiteit, &n.UrenPerEenheid, &n.Eenheid, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		normen = append(normen, n)
	}
	return normen, rows.Err()
}

func (r *repository) ListVoorEigenaar(ctx context.Context, eigenaarID int64) ([]NormUur, error) {
	const query = `SELECT ` + normColumns + `
		FROM norm_uren
		WHERE eigenaar_id = $1
		ORDER BY scope, activiteit`
	return r.collect(ctx, query, eigenaarID)
}

// ListVoorScopes loads every norm for the given scopes in one round trip,
// so a recompute run issues a single query instead of one per scope.
func (r *repository) ListVoorScopes(ctx context.Context, eigenaarID int64, scopes []string) ([]NormUur, error) {
	const query = `SELECT ` + normColumns + `
		FROM norm_uren
		WHERE eigenaar_id = $1 AND scope = ANY($2)
		ORDER BY scope, activiteit`
	return r.collect(ctx, query, eigenaarID, scopes)
}

func (r *repository) Insert(ctx context.Context, n NormUur) (int64, error) {
	const query = `INSERT INTO norm_uren (eigenaar_id, scope, activiteit, uren_per_eenheid, eenheid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	if err := r.pool.QueryRow(ctx, query, n.EigenaarID, n.Scope, n.Activiteit, n.UrenPerEenheid, n.Eenheid).Scan(&id); err != nil {
		return 0, fmt.Errorf("normhours: insert: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, urenPerEenheid float64, eenheid string) error {
	const query = `UPDATE norm_uren SET uren_per_eenheid = $2, eenheid = $3, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, urenPerEenheid, eenheid)
	if err != nil {
		return fmt.Errorf("normhours: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, eigenaarID, id int64) error {
	const query = `DELETE FROM norm_uren WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, eigenaarID)
	if err != nil {
		return fmt.Errorf("normhours: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
