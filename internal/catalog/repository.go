package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no product matched.
var ErrNotFound = errors.New("catalog: product niet gevonden")

type Repository interface {
	FindByNaam(ctx context.Context, eigenaarID int64, naam string) (*Product, error)
	FindByID(ctx context.Context, eigenaarID, id int64) (*Product, error)
	ListActief(ctx context.Context, eigenaarID int64) ([]Product, error)
	List(ctx context.Context, eigenaarID int64) ([]Product, error)
	Insert(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	SetActief(ctx context.Context, eigenaarID, id int64, actief bool) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = `id, eigenaar_id, naam, categorie, inkoopprijs, verkoopprijs, eenheid, verlies_percentage, actief, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.EigenaarID, &p.Naam, &p.Categorie, &p.Inkoopprijs, &p.Verkoopprijs,
		&p.Eenheid, &p.VerliesPercentage, &p.Actief, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByNaam(ctx context.Context, eigenaarID int64, naam string) (*Product, error) {
	const query = `SELECT ` + productColumns + `
		FROM producten
		WHERE eigenaar_id = $1 AND naam = $2
		LIMIT 1`
	return scanProduct(r.pool.QueryRow(ctx, query, eigenaarID, naam))
}

func (r *repository) FindByID(ctx context.Context, eigenaarID, id int64) (*Product, error) {
	const query = `SELECT ` + productColumns + `
		FROM producten
		WHERE id = $1 AND eigenaar_id = $2`
	return scanProduct(r.pool.QueryRow(ctx, query, id, eigenaarID))
}

func (r *repository) collect(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var producten []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.EigenaarID, &p.Naam, &p.Categorie, &p.Inkoopprijs, &p.Verkoopprijs,
			&p.Eenheid, &p.VerliesPercentage, &p.Actief, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		producten = append(producten, p)
	}
	return producten, rows.Err()
}

func (r *repository) ListActief(ctx context.Context, eigenaarID int64) ([]Product, error) {
	const query = `SELECT ` + productColumns + `
		FROM producten
		WHERE eigenaar_id = $1 AND actief
		ORDER BY categorie, naam`
	return r.collect(ctx, query, eigenaarID)
}

func (r *repository) List(ctx context.Context, eigenaarID int64) ([]Product, error) {
	const query = `SELECT ` + productColumns + `
		FROM producten
		WHERE eigenaar_id = $1
		ORDER BY categorie, naam`
	return r.collect(ctx, query, eigenaarID)
}

func (r *repository) Insert(ctx context.Context, p Product) (int64, error) {
	const query = `INSERT INTO producten (eigenaar_id, naam, categorie, inkoopprijs, verkoopprijs, eenheid, verlies_percentage, actief)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query, p.EigenaarID, p.Naam, p.Categorie, p.Inkoopprijs, p.Verkoopprijs,
		p.Eenheid, p.VerliesPercentage, p.Actief).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("catalog: insert: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, p Product) error {
	const query = `UPDATE producten
		SET naam = $3, categorie = $4, inkoopprijs = $5, verkoopprijs = $6,
			eenheid = $7, verlies_percentage = $8, updated_at = now()
		WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, p.ID, p.EigenaarID, p.Naam, p.Categorie,
		p.Inkoopprijs, p.Verkoopprijs, p.Eenheid, p.VerliesPercentage)
	if err != nil {
		return fmt.Errorf("catalog: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) SetActief(ctx context.Context, eigenaarID, id int64, actief bool) error {
	const query = `UPDATE producten SET actief = $3, updated_at = now() WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, eigenaarID, actief)
	if err != nil {
		return fmt.Errorf("catalog: set actief: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
