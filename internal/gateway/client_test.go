package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/pkg/response"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, nil)
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ambulances", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		response.Success(w, http.StatusOK, "Ambulances retrieved successfully", []entity.Ambulance{
			{ID: "a1", Name: "Central Clinic"},
		})
	})

	ambulances, err := NewAmbulanceGateway(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, ambulances, 1)
	assert.Equal(t, "Central Clinic", ambulances[0].Name)
}

func TestClientMaps404ToErrNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Reservation not found")
	})

	_, err := NewReservationGateway(client).GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientCarriesEnvelopeMessageOnAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		response.Conflict(w, "the requested slot is no longer available")
	})

	_, err := NewReservationGateway(client).Create(context.Background(), "p1", entity.ReservationInput{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "the requested slot is no longer available", apiErr.Message)
}

func TestClientTransportErrorIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, time.Second, nil)
	_, err := NewAmbulanceGateway(client).List(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestReservationCreatePostsInstantsUnmodified(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var posted struct {
		AmbulanceID     string    `json:"ambulanceId"`
		ExaminationType string    `json:"examinationType"`
		Start           time.Time `json:"start"`
		End             time.Time `json:"end"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/patients/p1/reservations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		response.Success(w, http.StatusCreated, "Reservation created successfully", entity.Reservation{
			ID:    "r1",
			Start: posted.Start,
			End:   posted.End,
		})
	})

	reservation, err := NewReservationGateway(client).Create(context.Background(), "p1", entity.ReservationInput{
		AmbulanceID:     "a1",
		PatientID:       "p1",
		ExaminationType: entity.ExaminationMRI,
		Start:           start,
		End:             start.Add(30 * time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", posted.AmbulanceID)
	assert.Equal(t, "mri", posted.ExaminationType)
	assert.True(t, posted.Start.Equal(start))
	assert.True(t, reservation.Start.Equal(start))
}

func TestPatientSearchExaminationsPostsQuery(t *testing.T) {
	var posted struct {
		Date            string `json:"date"`
		ExaminationType string `json:"examinationType"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients/p1/examinations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		response.Success(w, http.StatusOK, "Examinations retrieved successfully", []entity.Examination{})
	})

	examinations, err := NewPatientGateway(client).SearchExaminations(context.Background(), "p1", entity.ExaminationQuery{
		Date:            "2025-03-10",
		ExaminationType: entity.ExaminationMRI,
	})

	require.NoError(t, err)
	assert.Empty(t, examinations)
	assert.Equal(t, "2025-03-10", posted.Date)
	assert.Equal(t, "mri", posted.ExaminationType)
}

func TestReservationUpdateSendsWholeRecord(t *testing.T) {
	var posted map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/reservations/r1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		response.Success(w, http.StatusOK, "Reservation updated successfully", entity.Reservation{ID: "r1"})
	})

	reservation := entity.Reservation{
		ID:              "r1",
		Ambulance:       entity.Ambulance{ID: "a1"},
		Patient:         entity.Patient{ID: "p1"},
		ExaminationType: entity.ExaminationCT,
		Start:           time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		End:             time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		Message:         "bring referral",
	}
	_, err := NewReservationGateway(client).Update(context.Background(), "r1", reservation)

	require.NoError(t, err)
	// Whole record on the wire, not a message-only patch.
	assert.Equal(t, "a1", posted["ambulanceId"])
	assert.Equal(t, "p1", posted["patientId"])
	assert.Equal(t, "ct", posted["examinationType"])
	assert.Equal(t, "bring referral", posted["message"])
}
