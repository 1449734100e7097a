package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// Service manages pricing settings. Reads fall back to the standard set so
// a contractor can start quoting before touching configuration.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Get returns the owner's settings, or the standard set when none are
// stored yet.
func (s *Service) Get(ctx context.Context, eigenaarID int64) (*Instellingen, error) {
	i, err := s.repo.Find(ctx, eigenaarID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			std := Standaard(eigenaarID)
			return &std, nil
		}
		return nil, err
	}
	return i, nil
}

func (s *Service) Update(ctx context.Context, i Instellingen) (*Instellingen, error) {
	if i.Uurtarief <= 0 || i.Machinetarief <= 0 {
		return nil, errors.New("settings: tarieven moeten positief zijn")
	}
	if i.MargePercentage < 0 || i.BtwPercentage < 0 {
		return nil, errors.New("settings: percentages mogen niet negatief zijn")
	}
	switch i.MachineKostenBucket {
	case calc.MachineInArbeid, calc.MachineInMateriaal:
	case "":
		i.MachineKostenBucket = calc.MachineInArbeid
	default:
		return nil, fmt.Errorf("settings: onbekende machinekostenbucket %q", i.MachineKostenBucket)
	}

	if err := s.repo.Upsert(ctx, i); err != nil {
		return nil, err
	}
	i.UpdatedAt = time.Now()
	s.log.Info("instellingen bijgewerkt", slog.Int64("eigenaar", i.EigenaarID))
	return &i, nil
}

// VolgendNummer claims the next quote number, creating the settings row
// first when the owner has never saved settings.
func (s *Service) VolgendNummer(ctx context.Context, eigenaarID int64) (int64, error) {
	nummer, err := s.repo.VolgendNummer(ctx, eigenaarID)
	if err == nil {
		return nummer, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, err
	}
	if err := s.repo.Upsert(ctx, Standaard(eigenaarID)); err != nil {
		return 0, err
	}
	return s.repo.VolgendNummer(ctx, eigenaarID)
}
