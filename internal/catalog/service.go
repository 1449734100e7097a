package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// Service manages a contractor's product catalog.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, eigenaarID int64) ([]Product, error) {
	return s.repo.List(ctx, eigenaarID)
}

func (s *Service) Get(ctx context.Context, eigenaarID, id int64) (*Product, error) {
	return s.repo.FindByID(ctx, eigenaarID, id)
}

// LaadPrijzen fetches every active product as the engine's price shape.
// A recompute run calls this once; materials referencing inactive or
// missing products then fail as configuration errors inside the engine.
func (s *Service) LaadPrijzen(ctx context.Context, eigenaarID int64) ([]calc.ProductPrijs, error) {
	producten, err := s.repo.ListActief(ctx, eigenaarID)
	if err != nil {
		return nil, err
	}
	prijzen := make([]calc.ProductPrijs, 0, len(producten))
	for _, p := range producten {
		prijzen = append(prijzen, calc.ProductPrijs{
			Naam:              p.Naam,
			Verkoopprijs:      p.Verkoopprijs,
			VerliesPercentage: p.VerliesPercentage,
			Eenheid:           p.Eenheid,
		})
	}
	return prijzen, nil
}

func valideer(p Product) error {
	if p.Naam == "" {
		return errors.New("catalog: naam is verplicht")
	}
	if p.Verkoopprijs < 0 || p.Inkoopprijs < 0 {
		return errors.New("catalog: prijzen mogen niet negatief zijn")
	}
	if p.VerliesPercentage < 0 || p.VerliesPercentage >= 1 {
		return fmt.Errorf("catalog: verliespercentage moet in [0,1) liggen, kreeg %v", p.VerliesPercentage)
	}
	return nil
}

// Create adds a product. Names are unique per owner so the calculators can
// reference products by name.
func (s *Service) Create(ctx context.Context, p Product) (*Product, error) {
	if err := valideer(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByNaam(ctx, p.EigenaarID, p.Naam); err == nil {
		return nil, fmt.Errorf("catalog: product %q bestaat al", p.Naam)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p.Actief = true
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	s.log.Info("product aangemaakt", slog.Int64("eigenaar", p.EigenaarID), slog.String("naam", p.Naam))
	return &p, nil
}

func (s *Service) Update(ctx context.Context, p Product) (*Product, error) {
	if err := valideer(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product bijgewerkt", slog.Int64("eigenaar", p.EigenaarID), slog.Int64("id", p.ID))
	return &p, nil
}

// Deactiveer hides a product from new calculations without deleting it, so
// historical quote lines keep pointing at a real record.
func (s *Service) Deactiveer(ctx context.Context, eigenaarID, id int64) error {
	return s.repo.SetActief(ctx, eigenaarID, id, false)
}

func (s *Service) Activeer(ctx context.Context, eigenaarID, id int64) error {
	return s.repo.SetActief(ctx, eigenaarID, id, true)
}
