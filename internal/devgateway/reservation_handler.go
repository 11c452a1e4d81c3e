package devgateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/pkg/response"
	"ambulance-reservation-console/pkg/validator"
)

type ReservationHandler struct {
	store     *Store
	validator *validator.CustomValidator
}

func NewReservationHandler(store *Store, validator *validator.CustomValidator) *ReservationHandler {
	return &ReservationHandler{
		store:     store,
		validator: validator,
	}
}

// CreateReservation commits a candidate slot for the patient in the path.
// The start and end instants are stored exactly as received.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reservation, err := h.store.CreateReservation(entity.ReservationInput{
		AmbulanceID:     req.AmbulanceID,
		PatientID:       vars["id"],
		ExaminationType: entity.ExaminationType(req.ExaminationType),
		Start:           req.Start,
		End:             req.End,
		Message:         req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAmbulanceNotFound):
			response.NotFound(w, "Ambulance not found")
		case errors.Is(err, ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, ErrSlotTaken):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create reservation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Reservation created successfully", reservation)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservation, err := h.store.GetReservation(vars["id"])
	if err != nil {
		response.NotFound(w, "Reservation not found")
		return
	}

	response.Success(w, http.StatusOK, "Reservation retrieved successfully", reservation)
}

// UpdateReservation accepts the whole record but applies only the message;
// all other fields must stay as stored.
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reservation, err := h.store.UpdateReservation(vars["id"], req.Message)
	if err != nil {
		response.NotFound(w, "Reservation not found")
		return
	}

	response.Success(w, http.StatusOK, "Reservation updated successfully", reservation)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.store.DeleteReservation(vars["id"]); err != nil {
		response.NotFound(w, "Reservation not found")
		return
	}

	response.Success(w, http.StatusOK, "Reservation deleted successfully", nil)
}
