package devgateway

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router assembles the gateway API the reservation console talks to.
type Router struct {
	router             *mux.Router
	ambulanceHandler   *AmbulanceHandler
	patientHandler     *PatientHandler
	reservationHandler *ReservationHandler
}

func NewRouter(
	ambulanceHandler *AmbulanceHandler,
	patientHandler *PatientHandler,
	reservationHandler *ReservationHandler,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		ambulanceHandler:   ambulanceHandler,
		patientHandler:     patientHandler,
		reservationHandler: reservationHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Ambulances
	api.HandleFunc("/ambulances", r.ambulanceHandler.CreateAmbulance).Methods(http.MethodPost)
	api.HandleFunc("/ambulances", r.ambulanceHandler.GetAllAmbulances).Methods(http.MethodGet)
	api.HandleFunc("/ambulances/{id}", r.ambulanceHandler.GetAmbulance).Methods(http.MethodGet)
	api.HandleFunc("/ambulances/{id}", r.ambulanceHandler.UpdateAmbulance).Methods(http.MethodPut)
	api.HandleFunc("/ambulances/{id}", r.ambulanceHandler.DeleteAmbulance).Methods(http.MethodDelete)
	api.HandleFunc("/ambulances/{id}/reservations", r.ambulanceHandler.GetAmbulanceReservations).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/examinations", r.patientHandler.SearchExaminations).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/reservations", r.patientHandler.GetPatientReservations).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/reservations", r.reservationHandler.CreateReservation).Methods(http.MethodPost)

	// Reservations
	api.HandleFunc("/reservations/{id}", r.reservationHandler.GetReservation).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", r.reservationHandler.UpdateReservation).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", r.reservationHandler.DeleteReservation).Methods(http.MethodDelete)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
