package gateway

import (
	"context"

	"ambulance-reservation-console/internal/domain/entity"
)

// AmbulanceGateway exposes the ambulance operations of the backend gateway.
// The gateway owns the entities; callers must treat every local copy as
// possibly stale after any mutation.
type AmbulanceGateway interface {
	List(ctx context.Context) ([]entity.Ambulance, error)
	GetByID(ctx context.Context, id string) (*entity.Ambulance, error)
	Create(ctx context.Context, ambulance entity.Ambulance) (*entity.Ambulance, error)
	Update(ctx context.Context, id string, ambulance entity.Ambulance) (*entity.Ambulance, error)
	Delete(ctx context.Context, id string) error
}
