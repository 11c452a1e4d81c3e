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

type PatientHandler struct {
	store     *Store
	validator *validator.CustomValidator
}

func NewPatientHandler(store *Store, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		store:     store,
		validator: validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.store.CreatePatient(converter.CreateRequestToPatient(&req))
	if err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Patients retrieved successfully", h.store.ListPatients())
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patient, err := h.store.GetPatient(vars["id"])
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.store.UpdatePatient(vars["id"], entity.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  req.Birthday,
		Sex:       entity.Sex(req.Sex),
		Bio:       req.Bio,
	})
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.store.DeletePatient(vars["id"]); err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *PatientHandler) GetPatientReservations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if _, err := h.store.GetPatient(vars["id"]); err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	reservations := h.store.ListReservationsForPatient(vars["id"])
	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

// SearchExaminations answers the slot-search with every free candidate slot
// matching the query. An empty result set is a successful response.
func (h *PatientHandler) SearchExaminations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.ExaminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	examinations, err := h.store.SearchExaminations(vars["id"], req.Date, entity.ExaminationType(req.ExaminationType))
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to search examinations")
		return
	}

	response.Success(w, http.StatusOK, "Examinations retrieved successfully", examinations)
}
