package offerte

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// ErrNotFound indicates no quote matched.
var ErrNotFound = errors.New("offerte: niet gevonden")

type Repository interface {
	Find(ctx context.Context, eigenaarID, id int64) (*Offerte, error)
	List(ctx context.Context, eigenaarID int64, filter ListFilter) ([]Offerte, error)
	Insert(ctx context.Context, o Offerte) (int64, error)
	UpdateInvoer(ctx context.Context, o Offerte) error
	UpdateResultaat(ctx context.Context, eigenaarID, id int64, regels []calc.Regel, totalen calc.Totalen) error
	UpdateStatus(ctx context.Context, eigenaarID, id int64, status Status) error
	SnapshotVersie(ctx context.Context, offerteID int64, regels []calc.Regel, totalen calc.Totalen) (int, error)
	ListVersies(ctx context.Context, offerteID int64) ([]Versie, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const offerteColumns = `id, nummer, eigenaar_id, status, klant, algemene_params, scopes, scope_data, regels, totalen, created_at, updated_at`

func scanOfferte(row pgx.Row) (*Offerte, error) {
	var (
		o         Offerte
		klant     []byte
		params    []byte
		scopes    []byte
		scopeData []byte
		regels    []byte
		totalen   []byte
	)
	err := row.Scan(&o.ID, &o.Nummer, &o.EigenaarID, &o.Status, &klant, &params, &scopes, &scopeData, &regels, &totalen, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	for _, pair := range []struct {
		raw []byte
		dst any
	}{
		{klant, &o.Klant},
		{params, &o.AlgemeneParams},
		{scopes, &o.Scopes},
		{scopeData, &o.ScopeData},
		{regels, &o.Regels},
		{totalen, &o.Totalen},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, fmt.Errorf("offerte: decode document %d: %w", o.ID, err)
		}
	}
	return &o, nil
}

func (r *repository) Find(ctx context.Context, eigenaarID, id int64) (*Offerte, error) {
	const query = `SELECT ` + offerteColumns + `
		FROM offertes
		WHERE id = $1 AND eigenaar_id = $2`
	return scanOfferte(r.pool.QueryRow(ctx, query, id, eigenaarID))
}

func (r *repository) List(ctx context.Context, eigenaarID int64, filter ListFilter) ([]Offerte, error) {
	query := `SELECT ` + offerteColumns + `
		FROM offertes
		WHERE eigenaar_id = $1`
	args := []any{eigenaarID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offertes []Offerte
	for rows.Next() {
		o, err := scanOfferte(rows)
		if err != nil {
			return nil, err
		}
		offertes = append(offertes, *o)
	}
	return offertes, rows.Err()
}

func marshalDocument(o Offerte) (klant, params, scopes, scopeData, regels, totalen []byte, err error) {
	if klant, err = json.Marshal(o.Klant); err != nil {
		return
	}
	if params, err = json.Marshal(o.AlgemeneParams); err != nil {
		return
	}
	if o.Scopes == nil {
		o.Scopes = []string{}
	}
	if scopes, err = json.Marshal(o.Scopes); err != nil {
		return
	}
	if scopeData, err = json.Marshal(o.ScopeData); err != nil {
		return
	}
	if o.Regels == nil {
		o.Regels = []calc.Regel{}
	}
	if regels, err = json.Marshal(o.Regels); err != nil {
		return
	}
	totalen, err = json.Marshal(o.Totalen)
	return
}

func (r *repository) Insert(ctx context.Context, o Offerte) (int64, error) {
	klant, params, scopes, scopeData, regels, totalen, err := marshalDocument(o)
	if err != nil {
		return 0, fmt.Errorf("offerte: encode document: %w", err)
	}
	const query = `INSERT INTO offertes (nummer, eigenaar_id, status, klant, algemene_params, scopes, scope_data, regels, totalen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err = r.pool.QueryRow(ctx, query, o.Nummer, o.EigenaarID, o.Status, klant, params, scopes, scopeData, regels, totalen).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("offerte: insert: %w", err)
	}
	return id, nil
}

// UpdateInvoer replaces the input half of the document: customer, site
// parameters, scope selection and scope data. Derived fields are untouched;
// callers recompute afterwards.
func (r *repository) UpdateInvoer(ctx context.Context, o Offerte) error {
	klant, params, scopes, scopeData, _, _, err := marshalDocument(o)
	if err != nil {
		return fmt.Errorf("offerte: encode document: %w", err)
	}
	const query = `UPDATE offertes
		SET klant = $3, algemene_params = $4, scopes = $5, scope_data = $6, updated_at = now()
		WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, o.ID, o.EigenaarID, klant, params, scopes, scopeData)
	if err != nil {
		return fmt.Errorf("offerte: update invoer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateResultaat replaces the derived half wholesale. Last write wins: a
// later recompute simply overwrites an earlier one.
func (r *repository) UpdateResultaat(ctx context.Context, eigenaarID, id int64, regels []calc.Regel, totalen calc.Totalen) error {
	if regels == nil {
		regels = []calc.Regel{}
	}
	rawRegels, err := json.Marshal(regels)
	if err != nil {
		return fmt.Errorf("offerte: encode regels: %w", err)
	}
	rawTotalen, err := json.Marshal(totalen)
	if err != nil {
		return fmt.Errorf("offerte: encode totalen: %w", err)
	}
	const query = `UPDATE offertes
		SET regels = $3, totalen = $4, updated_at = now()
		WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, eigenaarID, rawRegels, rawTotalen)
	if err != nil {
		return fmt.Errorf("offerte: update resultaat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, eigenaarID, id int64, status Status) error {
	const query = `UPDATE offertes
		SET status = $3, updated_at = now()
		WHERE id = $1 AND eigenaar_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, eigenaarID, status)
	if err != nil {
		return fmt.Errorf("offerte: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SnapshotVersie freezes the current lines and totals as the next version
// number for the quote.
func (r *repository) SnapshotVersie(ctx context.Context, offerteID int64, regels []calc.Regel, totalen calc.Totalen) (int, error) {
	if regels == nil {
		regels = []calc.Regel{}
	}
	rawRegels, err := json.Marshal(regels)
	if err != nil {
		return 0, fmt.Errorf("offerte: encode regels: %w", err)
	}
	rawTotalen, err := json.Marshal(totalen)
	if err != nil {
		return 0, fmt.Errorf("offerte: encode totalen: %w", err)
	}
	const query = `INSERT INTO offerte_versies (offerte_id, versie, regels, totalen)
		SELECT $1, COALESCE(MAX(versie), 0) + 1, $2, $3
		FROM offerte_versies
		WHERE offerte_id = $1
		RETURNING versie`
	var versie int
	if err := r.pool.QueryRow(ctx, query, offerteID, rawRegels, rawTotalen).Scan(&versie); err != nil {
		return 0, fmt.Errorf("offerte: snapshot versie: %w", err)
	}
	return versie, nil
}

func (r *repository) ListVersies(ctx context.Context, offerteID int64) ([]Versie, error) {
	const query = `SELECT id, offerte_id, versie, regels, totalen, created_at
		FROM offerte_versies
		WHERE offerte_id = $1
		ORDER BY versie DESC`
	rows, err := r.pool.Query(ctx, query, offerteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versies []Versie
	for rows.Next() {
		var (
			v       Versie
			regels  []byte
			totalen []byte
		)
		if err := rows.Scan(&v.ID, &v.OfferteID, &v.Versie, &regels, &totalen, &v.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(regels, &v.Regels); err != nil {
			return nil, fmt.Errorf("offerte: decode versie %d: %w", v.ID, err)
		}
		if err := json.Unmarshal(totalen, &v.Totalen); err != nil {
			return nil, fmt.Errorf("offerte: decode versie %d: %w", v.ID, err)
		}
		versies = append(versies, v)
	}
	return versies, rows.Err()
}
