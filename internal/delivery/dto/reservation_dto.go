package dto

import "time"

// ExaminationRequest is the slot-search payload sent for a patient.
type ExaminationRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02,futuredate,workday"`
	ExaminationType string `json:"examinationType" validate:"required,oneof=ct mri x_ray ultrasound blood_test"`
}

// CreateReservationRequest commits a candidate examination into a
// reservation. Start and End carry the candidate's instants unmodified,
// timezone-qualified.
type CreateReservationRequest struct {
	AmbulanceID     string    `json:"ambulanceId" validate:"required"`
	PatientID       string    `json:"patientId" validate:"required"`
	ExaminationType string    `json:"examinationType" validate:"required,oneof=ct mri x_ray ultrasound blood_test"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required"`
	Message         string    `json:"message"`
}

// UpdateReservationRequest overwrites a reservation whole; the gateway does
// not accept partial updates. Only the message may differ from the stored
// record.
type UpdateReservationRequest struct {
	AmbulanceID     string    `json:"ambulanceId" validate:"required"`
	PatientID       string    `json:"patientId" validate:"required"`
	ExaminationType string    `json:"examinationType" validate:"required,oneof=ct mri x_ray ultrasound blood_test"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required"`
	Message         string    `json:"message"`
}
