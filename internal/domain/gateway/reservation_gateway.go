package gateway

import (
	"context"

	"ambulance-reservation-console/internal/domain/entity"
)

// ReservationGateway exposes the reservation operations of the backend
// gateway. Conflict detection on create is the gateway's responsibility, not
// the caller's.
type ReservationGateway interface {
	ListForAmbulance(ctx context.Context, ambulanceID string) ([]entity.Reservation, error)
	ListForPatient(ctx context.Context, patientID string) ([]entity.Reservation, error)
	GetByID(ctx context.Context, id string) (*entity.Reservation, error)
	Create(ctx context.Context, patientID string, input entity.ReservationInput) (*entity.Reservation, error)

	// Update overwrites the whole reservation record; partial updates are not
	// supported by the gateway.
	Update(ctx context.Context, id string, reservation entity.Reservation) (*entity.Reservation, error)
	Delete(ctx context.Context, id string) error
}
