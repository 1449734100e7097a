package factors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/groenwerk/groenwerk/internal/shared"
)

// ErrFactorNietGevonden is returned when a condition value resolves in
// neither the owner tier nor the system-default tier. Callers must treat
// this as a configuration problem, never as an implicit factor of 1.0.
var ErrFactorNietGevonden = errors.New("factors: geen factor gevonden")

const upsertLockTTL = 10 * time.Second

// Service implements the two-tier resolution algorithm on top of the
// repository. It is the only code allowed to conflate the default tier
// and the owner tier.
type Service struct {
	repo Repository
	lock *shared.KeyLock
	log  *slog.Logger
}

func NewService(repo Repository, lock *shared.KeyLock, log *slog.Logger) *Service {
	return &Service{repo: repo, lock: lock, log: log}
}

// Resolve returns the effective multiplier for one condition value.
// An owner override wins over the system default; with no owner, only the
// default tier is consulted.
func (s *Service) Resolve(ctx context.Context, eigenaarID *int64, conditieType, conditieWaarde string) (float64, error) {
	if eigenaarID != nil {
		f, err := s.repo.FindVoorEigenaar(ctx, *eigenaarID, conditieType, conditieWaarde)
		switch {
		case err == nil:
			return f.Factor, nil
		case !errors.Is(err, ErrNotFound):
			return 0, err
		}
	}
	f, err := s.repo.FindStandaard(ctx, conditieType, conditieWaarde)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, fmt.Errorf("%w: %s=%s", ErrFactorNietGevonden, conditieType, conditieWaarde)
		}
		return 0, err
	}
	return f.Factor, nil
}

// ResolveAll returns value -> multiplier for one condition type: the full
// system-default set with any owner records for that type overlaid on top.
func (s *Service) ResolveAll(ctx context.Context, eigenaarID *int64, conditieType string) (map[string]float64, error) {
	standaard, err := s.repo.ListStandaardVoorType(ctx, conditieType)
	if err != nil {
		return nil, err
	}
	waarden := make(map[string]float64, len(standaard))
	for _, f := range standaard {
		waarden[f.ConditieWaarde] = f.Factor
	}
	if eigenaarID != nil {
		eigen, err := s.repo.ListVoorEigenaarType(ctx, *eigenaarID, conditieType)
		if err != nil {
			return nil, err
		}
		for _, f := range eigen {
			waarden[f.ConditieWaarde] = f.Factor
		}
	}
	return waarden, nil
}

// List returns every system default with owner overrides substituted in
// place. Without an owner the defaults are returned unmodified. Owner
// records whose key has no default counterpart are appended at the end so
// the configuration UI still shows them.
func (s *Service) List(ctx context.Context, eigenaarID *int64) ([]CorrectieFactor, error) {
	standaard, err := s.repo.ListStandaard(ctx)
	if err != nil {
		return nil, err
	}
	if eigenaarID == nil {
		return standaard, nil
	}
	eigen, err := s.repo.ListVoorEigenaar(ctx, *eigenaarID)
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]CorrectieFactor, len(eigen))
	for _, f := range eigen {
		overrides[f.ConditieType+"|"+f.ConditieWaarde] = f
	}

	result := make([]CorrectieFactor, 0, len(standaard))
	for _, f := range standaard {
		key := f.ConditieType + "|" + f.ConditieWaarde
		if o, ok := overrides[key]; ok {
			result = append(result, o)
			delete(overrides, key)
			continue
		}
		result = append(result, f)
	}
	for _, f := range eigen {
		if _, ok := overrides[f.ConditieType+"|"+f.ConditieWaarde]; ok {
			result = append(result, f)
		}
	}
	return result, nil
}

// EffectieveSet resolves every condition type at once, producing the rate
// table a recompute run works from: type -> value -> multiplier.
func (s *Service) EffectieveSet(ctx context.Context, eigenaarID *int64, conditieTypes []string) (map[string]map[string]float64, error) {
	set := make(map[string]map[string]float64, len(conditieTypes))
	for _, ct := range conditieTypes {
		waarden, err := s.ResolveAll(ctx, eigenaarID, ct)
		if err != nil {
			return nil, err
		}
		set[ct] = waarden
	}
	return set, nil
}

// Upsert creates or updates exactly one owner-owned record. The storage
// layer does not enforce uniqueness on (eigenaar, type, waarde), so the
// lookup-then-write is serialized per key through the redis lock.
func (s *Service) Upsert(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string, factor float64) (*CorrectieFactor, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("factors: factor moet positief zijn, kreeg %v", factor)
	}

	var result *CorrectieFactor
	key := shared.FactorLockKey(eigenaarID, conditieType, conditieWaarde)
	err := s.lock.WithLock(ctx, key, upsertLockTTL, func(ctx context.Context) error {
		bestaand, err := s.repo.FindVoorEigenaar(ctx, eigenaarID, conditieType, conditieWaarde)
		switch {
		case err == nil:
			if err := s.repo.UpdateFactor(ctx, bestaand.ID, factor); err != nil {
				return err
			}
			bestaand.Factor = factor
			result = bestaand
			return nil
		case errors.Is(err, ErrNotFound):
			f := CorrectieFactor{
				EigenaarID:     &eigenaarID,
				ConditieType:   conditieType,
				ConditieWaarde: conditieWaarde,
				Factor:         factor,
			}
			id, err := s.repo.Insert(ctx, f)
			if err != nil {
				return err
			}
			f.ID = id
			result = &f
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("correctiefactor opgeslagen",
		slog.Int64("eigenaar", eigenaarID),
		slog.String("type", conditieType),
		slog.String("waarde", conditieWaarde),
		slog.Float64("factor", factor))
	return result, nil
}

// ResetNaarStandaard deletes the owner override if present. Deleting a
// non-existent override is a no-op, so the call is idempotent.
func (s *Service) ResetNaarStandaard(ctx context.Context, eigenaarID int64, conditieType, conditieWaarde string) error {
	key := shared.FactorLockKey(eigenaarID, conditieType, conditieWaarde)
	return s.lock.WithLock(ctx, key, upsertLockTTL, func(ctx context.Context) error {
		verwijderd, err := s.repo.DeleteOverride(ctx, eigenaarID, conditieType, conditieWaarde)
		if err != nil {
			return err
		}
		if verwijderd {
			s.log.Info("correctiefactor teruggezet naar standaard",
				slog.Int64("eigenaar", eigenaarID),
				slog.String("type", conditieType),
				slog.String("waarde", conditieWaarde))
		}
		return nil
	})
}

// InitialiseerStandaarden inserts the fixed system-default set once.
// When any default already exists the call does nothing and reports zero
// inserts. The whole check-then-insert runs under the seed lock so two
// concurrent boots cannot double-seed.
func (s *Service) InitialiseerStandaarden(ctx context.Context) (int, error) {
	var inserted int
	err := s.lock.WithLock(ctx, shared.SeedLockKey(), 30*time.Second, func(ctx context.Context) error {
		count, err := s.repo.CountStandaard(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		inserted, err = s.repo.InsertStandaarden(ctx, standaardFactoren)
		return err
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.log.Info("systeemstandaarden aangemaakt", slog.Int("aantal", inserted))
	} else {
		s.log.Debug("systeemstandaarden bestaan al")
	}
	return inserted, nil
}
