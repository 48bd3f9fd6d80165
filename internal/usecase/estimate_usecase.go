package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"electripro/internal/domain/entities"
	"electripro/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidOwnerID    = errors.New("invalid owner id")
)

// EstimateStats feeds the dashboard cards.
type EstimateStats struct {
	Count        int     `json:"count"`
	TotalValue   float64 `json:"total_value"`
	AverageValue float64 `json:"average_value"`
}

// IEstimateUseCase exposes the saved-estimate operations behind the
// dashboard and the editor's save flow.
//
//   - Save persists a snapshot assembled by the draft (create or replace).
//   - ListByOwner / StatsByOwner back the dashboard list and cards.
//   - GetByID / DeleteByID back the edit and delete actions.
//
// Ownership: every operation is scoped to the owner resolved from the
// session; another owner's estimate behaves as not found rather than
// forbidden, so ids do not leak.

type IEstimateUseCase interface {
	Save(ctx context.Context, ownerID string, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Estimate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Estimate, error)
	DeleteByID(ctx context.Context, ownerID, id string) error
	StatsByOwner(ctx context.Context, ownerID string) (EstimateStats, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// Save commits a snapshot. The snapshot arrives fully assembled (totals
// already recomputed by the draft's Build); Save only settles identity and
// bookkeeping fields before handing it to the repository.
func (u *EstimateUseCase) Save(ctx context.Context, ownerID string, e entities.Estimate) (entities.Estimate, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Estimate{}, ErrInvalidOwnerID
	}
	if strings.TrimSpace(e.ID) == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	if existing.ID != "" {
		if existing.OwnerID != ownerID {
			return entities.Estimate{}, ErrEstimateNotFound
		}
		e.CreatedAt = existing.CreatedAt
	} else {
		e.CreatedAt = now
	}
	e.OwnerID = ownerID
	e.UpdatedAt = now
	if e.Status == "" {
		e.Status = entities.EstimateStatusDraft
	}

	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.Estimate, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Estimate{}, ErrInvalidOwnerID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" || e.OwnerID != ownerID {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Estimate, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *EstimateUseCase) DeleteByID(ctx context.Context, ownerID, id string) error {
	if _, err := u.GetByID(ctx, ownerID, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, strings.TrimSpace(id))
}

// StatsByOwner aggregates the owner's saved estimates for the dashboard
// cards. Sums run in decimal space like the draft's calculator.
func (u *EstimateUseCase) StatsByOwner(ctx context.Context, ownerID string) (EstimateStats, error) {
	list, err := u.ListByOwner(ctx, ownerID)
	if err != nil {
		return EstimateStats{}, err
	}

	total := decimal.Zero
	for _, e := range list {
		total = total.Add(decimal.NewFromFloat(e.Totals.GrandTotal))
	}

	stats := EstimateStats{Count: len(list), TotalValue: total.InexactFloat64()}
	if stats.Count > 0 {
		stats.AverageValue = total.Div(decimal.NewFromInt(int64(stats.Count))).InexactFloat64()
	}
	return stats, nil
}
