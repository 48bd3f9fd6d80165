package interfaces

import (
	"context"

	"electripro/internal/domain/entities"
)

// IEstimateRepository abstracts estimate persistence.
//
// The service must be able to:
//   - save a complete snapshot (create or replace by id)
//   - fetch a snapshot by id
//   - list an owner's estimates in insertion order for the dashboard
//   - delete a snapshot by id

type IEstimateRepository interface {
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) error
}
