package devgateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ambulance-reservation-console/internal/converter"
	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/pkg/response"
	"ambulance-reservation-console/pkg/validator"
)

type AmbulanceHandler struct {
	store     *Store
	validator *validator.CustomValidator
}

func NewAmbulanceHandler(store *Store, validator *validator.CustomValidator) *AmbulanceHandler {
	return &AmbulanceHandler{
		store:     store,
		validator: validator,
	}
}

func (h *AmbulanceHandler) CreateAmbulance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ambulance, err := h.store.CreateAmbulance(converter.CreateRequestToAmbulance(&req))
	if err != nil {
		if errors.Is(err, ErrInvalidOfficeHours) {
			response.UnprocessableEntity(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create ambulance")
		return
	}

	response.Success(w, http.StatusCreated, "Ambulance created successfully", ambulance)
}

func (h *AmbulanceHandler) GetAllAmbulances(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Ambulances retrieved successfully", h.store.ListAmbulances())
}

func (h *AmbulanceHandler) GetAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ambulance, err := h.store.GetAmbulance(vars["id"])
	if err != nil {
		response.NotFound(w, "Ambulance not found")
		return
	}

	response.Success(w, http.StatusOK, "Ambulance retrieved successfully", ambulance)
}

func (h *AmbulanceHandler) UpdateAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	in := entity.Ambulance{
		Name:    req.Name,
		Address: req.Address,
		OfficeHours: entity.OfficeHours{
			Open:  req.OfficeHours.Open,
			Close: req.OfficeHours.Close,
		},
	}
	for _, t := range req.MedicalExaminations {
		in.MedicalExaminations = append(in.MedicalExaminations, entity.ExaminationType(t))
	}

	ambulance, err := h.store.UpdateAmbulance(vars["id"], in)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmbulanceNotFound):
			response.NotFound(w, "Ambulance not found")
		case errors.Is(err, ErrImmutableField), errors.Is(err, ErrInvalidOfficeHours):
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update ambulance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ambulance updated successfully", ambulance)
}

func (h *AmbulanceHandler) DeleteAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.store.DeleteAmbulance(vars["id"]); err != nil {
		response.NotFound(w, "Ambulance not found")
		return
	}

	response.Success(w, http.StatusOK, "Ambulance deleted successfully", nil)
}

func (h *AmbulanceHandler) GetAmbulanceReservations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if _, err := h.store.GetAmbulance(vars["id"]); err != nil {
		response.NotFound(w, "Ambulance not found")
		return
	}

	reservations := h.store.ListReservationsForAmbulance(vars["id"])
	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}
