package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"ambulance-reservation-console/internal/domain/entity"
)

// View names one of the fixed set of mountable views.
type View string

const (
	ViewEntityPicker      View = "entity_picker"
	ViewAmbulanceCreate   View = "ambulance_create"
	ViewPatientCreate     View = "patient_create"
	ViewProfile           View = "profile"
	ViewReservations      View = "reservations"
	ViewReservationCreate View = "reservation_create"
	ViewReservationDetail View = "reservation_detail"
)

const (
	routeRoot                  = "root"
	routeAmbulanceCreate       = "ambulance_create"
	routePatientCreate         = "patient_create"
	routeAmbulanceProfile      = "ambulance_profile"
	routePatientProfile        = "patient_profile"
	routeAmbulanceReservations = "ambulance_reservations"
	routePatientReservations   = "patient_reservations"
	routeReservationCreate     = "reservation_create"
	routeAmbulanceDetail       = "ambulance_reservation_detail"
	routePatientDetail         = "patient_reservation_detail"
)

// Resolution is the outcome of matching a path against the route table for a
// given selection. Either View is set, or Redirect names the path to
// navigate to instead. Replace is true only for the root redirect.
type Resolution struct {
	View          View
	Kind          entity.SelectionKind
	EntityID      string
	ReservationID string
	Redirect      string
	Replace       bool
}

// Resolver is the route table. Matching is exact and trailing-slash-strict;
// every unmatched path resolves to a redirect to the root.
type Resolver struct {
	base   string
	router *mux.Router
}

// NewResolver builds the route table under an optional base prefix.
func NewResolver(basePath string) *Resolver {
	base := strings.TrimRight(basePath, "/")
	r := mux.NewRouter()

	// Registration order matters: create precedes the detail wildcard.
	r.Path(base + "/").Name(routeRoot)
	r.Path(base + "/ambulance").Name(routeAmbulanceCreate)
	r.Path(base + "/patient").Name(routePatientCreate)
	r.Path(base + "/ambulance/{id}").Name(routeAmbulanceProfile)
	r.Path(base + "/patient/{id}").Name(routePatientProfile)
	r.Path(base + "/ambulance/{id}/reservations").Name(routeAmbulanceReservations)
	r.Path(base + "/patient/{id}/reservations").Name(routePatientReservations)
	r.Path(base + "/patient/{id}/reservations/create").Name(routeReservationCreate)
	r.Path(base + "/ambulance/{id}/reservations/{reservationId}").Name(routeAmbulanceDetail)
	r.Path(base + "/patient/{id}/reservations/{reservationId}").Name(routePatientDetail)

	return &Resolver{base: base, router: r}
}

// WithBase prefixes a route path with the configured base.
func (r *Resolver) WithBase(path string) string {
	return r.base + path
}

// RootPath returns the entity-picker path.
func (r *Resolver) RootPath() string {
	return r.base + "/"
}

// ReservationsPath returns the calendar path for the acting entity, or the
// root when nothing is selected.
func (r *Resolver) ReservationsPath(selection entity.Selection) string {
	if selection.IsNone() {
		return r.RootPath()
	}
	return r.base + "/" + string(selection.Kind()) + "/" + selection.EntityID() + "/reservations"
}

// ProfilePath returns the profile path for the acting entity, or the root
// when nothing is selected.
func (r *Resolver) ProfilePath(selection entity.Selection) string {
	if selection.IsNone() {
		return r.RootPath()
	}
	return r.base + "/" + string(selection.Kind()) + "/" + selection.EntityID()
}

// ReservationCreatePath returns the booking-flow path for a patient.
func (r *Resolver) ReservationCreatePath(patientID string) string {
	return r.base + "/patient/" + patientID + "/reservations/create"
}

// ReservationDetailPath returns the detail path for one reservation under
// the acting entity.
func (r *Resolver) ReservationDetailPath(selection entity.Selection, reservationID string) string {
	if selection.IsNone() {
		return r.RootPath()
	}
	return r.ReservationsPath(selection) + "/" + reservationID
}

// Resolve maps a path and the current selection to a view or a redirect.
func (r *Resolver) Resolve(path string, selection entity.Selection) Resolution {
	var match mux.RouteMatch
	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: path}}
	if !r.router.Match(req, &match) || match.MatchErr != nil {
		return Resolution{Redirect: r.RootPath()}
	}

	vars := match.Vars
	switch match.Route.GetName() {
	case routeRoot:
		if selection.IsNone() {
			return Resolution{View: ViewEntityPicker}
		}
		// The only redirect allowed to replace the current history entry.
		return Resolution{Redirect: r.ReservationsPath(selection), Replace: true}

	case routeAmbulanceCreate:
		return Resolution{View: ViewAmbulanceCreate, Kind: entity.SelectionAmbulance}

	case routePatientCreate:
		return Resolution{View: ViewPatientCreate, Kind: entity.SelectionPatient}

	case routeAmbulanceProfile:
		// Deep link: reachable with a direct id even without a selection.
		return Resolution{View: ViewProfile, Kind: entity.SelectionAmbulance, EntityID: vars["id"]}

	case routePatientProfile:
		return Resolution{View: ViewProfile, Kind: entity.SelectionPatient, EntityID: vars["id"]}

	case routeAmbulanceReservations:
		if selection.Kind() != entity.SelectionAmbulance || selection.EntityID() != vars["id"] {
			return Resolution{Redirect: r.RootPath()}
		}
		return Resolution{View: ViewReservations, Kind: entity.SelectionAmbulance, EntityID: vars["id"]}

	case routePatientReservations:
		if selection.Kind() != entity.SelectionPatient || selection.EntityID() != vars["id"] {
			return Resolution{Redirect: r.RootPath()}
		}
		return Resolution{View: ViewReservations, Kind: entity.SelectionPatient, EntityID: vars["id"]}

	case routeReservationCreate:
		// Booking is patient-only.
		if selection.Kind() != entity.SelectionPatient || selection.EntityID() != vars["id"] {
			return Resolution{Redirect: r.RootPath()}
		}
		return Resolution{View: ViewReservationCreate, Kind: entity.SelectionPatient, EntityID: vars["id"]}

	case routeAmbulanceDetail:
		return Resolution{
			View:          ViewReservationDetail,
			Kind:          entity.SelectionAmbulance,
			EntityID:      vars["id"],
			ReservationID: vars["reservationId"],
		}

	case routePatientDetail:
		return Resolution{
			View:          ViewReservationDetail,
			Kind:          entity.SelectionPatient,
			EntityID:      vars["id"],
			ReservationID: vars["reservationId"],
		}
	}

	return Resolution{Redirect: r.RootPath()}
}
