package entity

import "time"

// Reservation is a committed booking linking one ambulance, one patient, one
// examination type and a time range. Only Message is mutable after creation.
type Reservation struct {
	ID              string          `json:"id"`
	Ambulance       Ambulance       `json:"ambulance"`
	Patient         Patient         `json:"patient"`
	ExaminationType ExaminationType `json:"examinationType"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Message         string          `json:"message"`
}

// ReservationInput carries the fields the gateway needs to commit a candidate
// examination into a reservation. Start and End are passed through from the
// candidate unmodified.
type ReservationInput struct {
	AmbulanceID     string          `json:"ambulanceId"`
	PatientID       string          `json:"patientId"`
	ExaminationType ExaminationType `json:"examinationType"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Message         string          `json:"message,omitempty"`
}
