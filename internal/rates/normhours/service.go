package normhours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// Service manages a contractor's norm-hour table.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, eigenaarID int64) ([]NormUur, error) {
	return s.repo.ListVoorEigenaar(ctx, eigenaarID)
}

// LaadVoorScopes fetches all norms a recompute run needs, converted to the
// engine's lookup shape.
func (s *Service) LaadVoorScopes(ctx context.Context, eigenaarID int64, scopes []string) ([]calc.NormUur, error) {
	normen, err := s.repo.ListVoorScopes(ctx, eigenaarID, scopes)
	if err != nil {
		return nil, err
	}
	result := make([]calc.NormUur, 0, len(normen))
	for _, n := range normen {
		result = append(result, calc.NormUur{
			Scope:          n.Scope,
			Activiteit:     n.Activiteit,
			UrenPerEenheid: n.UrenPerEenheid,
			Eenheid:        n.Eenheid,
		})
	}
	return result, nil
}

// Upsert creates or replaces the norm for (scope, activiteit).
func (s *Service) Upsert(ctx context.Context, eigenaarID int64, scope, activiteit string, urenPerEenheid float64, eenheid string) (*NormUur, error) {
	if urenPerEenheid <= 0 {
		return nil, fmt.Errorf("normhours: uren per eenheid moet positief zijn, kreeg %v", urenPerEenheid)
	}
	if scope == "" || activiteit == "" {
		return nil, errors.New("normhours: scope en activiteit zijn verplicht")
	}

	bestaand, err := s.repo.Find(ctx, eigenaarID, scope, activiteit)
	switch {
	case err == nil:
		if err := s.repo.Update(ctx, bestaand.ID, urenPerEenheid, eenheid); err != nil {
			return nil, err
		}
		bestaand.UrenPerEenheid = urenPerEenheid
		bestaand.Eenheid = eenheid
		s.log.Info("normuur bijgewerkt", slog.Int64("eigenaar", eigenaarID),
			slog.String("scope", scope), slog.String("activiteit", activiteit))
		return bestaand, nil
	case errors.Is(err, ErrNotFound):
		n := NormUur{
			EigenaarID:     eigenaarID,
			Scope:          scope,
			Activiteit:     activiteit,
			UrenPerEenheid: urenPerEenheid,
			Eenheid:        eenheid,
		}
		id, err := s.repo.Insert(ctx, n)
		if err != nil {
			return nil, err
		}
		n.ID = id
		s.log.Info("normuur aangemaakt", slog.Int64("eigenaar", eigenaarID),
			slog.String("scope", scope), slog.String("activiteit", activiteit))
		return &n, nil
	default:
		return nil, err
	}
}

func (s *Service) Delete(ctx context.Context, eigenaarID, id int64) error {
	return s.repo.Delete(ctx, eigenaarID, id)
}
