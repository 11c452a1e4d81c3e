package converter

import (
	"ambulance-reservation-console/internal/calendar"
	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
)

// InputToCreateRequest converts a ReservationInput to the create payload.
// The candidate's instants are passed through unmodified.
func InputToCreateRequest(input entity.ReservationInput) *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		AmbulanceID:     input.AmbulanceID,
		PatientID:       input.PatientID,
		ExaminationType: string(input.ExaminationType),
		Start:           input.Start,
		End:             input.End,
		Message:         input.Message,
	}
}

// ReservationToUpdateRequest converts a full Reservation to the
// whole-record update payload.
func ReservationToUpdateRequest(reservation entity.Reservation) *dto.UpdateReservationRequest {
	return &dto.UpdateReservationRequest{
		AmbulanceID:     reservation.Ambulance.ID,
		PatientID:       reservation.Patient.ID,
		ExaminationType: string(reservation.ExaminationType),
		Start:           reservation.Start,
		End:             reservation.End,
		Message:         reservation.Message,
	}
}

// ReservationToEvent maps a reservation to a calendar event for the given
// acting identity. The title is the counter-party's display name: the
// ambulance name when acting as a patient, the patient's full name when
// acting as an ambulance.
func ReservationToEvent(selection entity.Selection, reservation entity.Reservation) calendar.Event {
	title := reservation.Ambulance.Name
	if selection.Kind() == entity.SelectionAmbulance {
		title = reservation.Patient.FullName()
	}
	return calendar.Event{
		ID:          reservation.ID,
		Title:       title,
		Description: reservation.ExaminationType.Label(),
		Start:       reservation.Start,
		End:         reservation.End,
	}
}

// ReservationsToEvents maps a reservation list to calendar events.
func ReservationsToEvents(selection entity.Selection, reservations []entity.Reservation) []calendar.Event {
	events := make([]calendar.Event, len(reservations))
	for i, reservation := range reservations {
		events[i] = ReservationToEvent(selection, reservation)
	}
	return events
}
