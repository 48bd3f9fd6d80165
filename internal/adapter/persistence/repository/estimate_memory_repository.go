package repository

import (
	"context"
	"sync"

	"electripro/internal/domain/entities"
	"electripro/internal/usecase/interfaces"
)

// EstimateMemoryRepository keeps estimates in process memory. It is the
// default backend: the estimates live exactly as long as the service, which
// matches the drafting workflow where nothing outlives the session.
//
// Insertion order is tracked separately from the map so the dashboard lists
// estimates in the order they were first saved.

type EstimateMemoryRepository struct {
	mu    sync.Mutex
	items map[string]entities.Estimate
	order []string
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository() *EstimateMemoryRepository {
	return &EstimateMemoryRepository{items: map[string]entities.Estimate{}}
}

func (r *EstimateMemoryRepository) Save(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[e.ID]; !ok {
		r.order = append(r.order, e.ID)
	}
	r.items[e.ID] = copyEstimate(e)
	return e, nil
}

func (r *EstimateMemoryRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	return copyEstimate(e), nil
}

func (r *EstimateMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Estimate, 0)
	for _, id := range r.order {
		if e, ok := r.items[id]; ok && e.OwnerID == ownerID {
			out = append(out, copyEstimate(e))
		}
	}
	return out, nil
}

// DeleteByID removes an estimate. Deleting an unknown id is a no-op.
func (r *EstimateMemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// copyEstimate detaches the line-item slices so callers can never mutate
// stored snapshots through a returned value.
func copyEstimate(e entities.Estimate) entities.Estimate {
	out := e
	out.Materials = make([]entities.MaterialLine, len(e.Materials))
	copy(out.Materials, e.Materials)
	out.Labor = make([]entities.LaborLine, len(e.Labor))
	copy(out.Labor, e.Labor)
	return out
}
