package gateway

import (
	"context"

	"ambulance-reservation-console/internal/domain/entity"
)

// PatientGateway exposes the patient operations of the backend gateway,
// including the slot search that seeds the booking flow.
type PatientGateway interface {
	List(ctx context.Context) ([]entity.Patient, error)
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	Create(ctx context.Context, patient entity.Patient) (*entity.Patient, error)
	Update(ctx context.Context, id string, patient entity.Patient) (*entity.Patient, error)
	Delete(ctx context.Context, id string) error

	// SearchExaminations returns candidate slots for the patient. An empty
	// result is not an error; it means no availability.
	SearchExaminations(ctx context.Context, patientID string, query entity.ExaminationQuery) ([]entity.Examination, error)
}
