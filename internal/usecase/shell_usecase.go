package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/domain/gateway"
	"ambulance-reservation-console/internal/navigation"
)

// ErrNoActingEntity is returned when an operation needs an acting ambulance
// or patient and neither is selected. No valid route can be derived from that
// state, so the operation fails immediately.
var ErrNoActingEntity = errors.New("no acting ambulance or patient")

// DefaultToastDuration is how long a toast stays up before auto-dismissal.
const DefaultToastDuration = 3 * time.Second

// Shell is the root coordinator: it owns the selection, the entity
// directory, the toast channel, and reacts to outcome events by refreshing
// remote state and pushing the canonical next route. All state transitions go
// through named methods; nothing mutates the fields directly.
type Shell interface {
	Init(ctx context.Context)

	Ambulances() []entity.Ambulance
	Patients() []entity.Patient
	RefreshAmbulances(ctx context.Context) []entity.Ambulance
	RefreshPatients(ctx context.Context) []entity.Patient

	Selection() entity.Selection
	SelectAmbulance(ambulance entity.Ambulance)
	SelectPatient(patient entity.Patient)
	ClearSelection()

	// Resolve matches the current path against the route table, following
	// redirects until a mountable view is reached.
	Resolve() navigation.Resolution
	Navigate(path string)

	ApplyOutcome(ctx context.Context, outcome entity.Outcome)

	Toast() *entity.Toast
	ShowToast(toast entity.Toast)
	DismissToast()

	// CreatedReservation is the pending hand-off to the calendar view after a
	// booking; the calendar clears it once shown.
	CreatedReservation() *entity.Reservation
	ClearCreatedReservation()

	// OnNotice registers the blocking-alert channel used when a directory
	// refresh fails.
	OnNotice(notice func(message string))
}

type shell struct {
	mu sync.Mutex

	log           *logrus.Logger
	history       navigation.History
	resolver      *navigation.Resolver
	ambulanceGw   gateway.AmbulanceGateway
	patientGw     gateway.PatientGateway
	toastDuration time.Duration

	ambulances []entity.Ambulance
	patients   []entity.Patient
	selection  entity.Selection

	toast    *entity.Toast
	toastSeq int

	createdReservation *entity.Reservation

	// Generation counters let late directory responses be discarded after a
	// newer refresh started; requests themselves are never cancelled.
	ambulanceGen int
	patientGen   int

	notice func(string)
}

// NewShell wires the root shell.
func NewShell(
	log *logrus.Logger,
	history navigation.History,
	resolver *navigation.Resolver,
	ambulanceGw gateway.AmbulanceGateway,
	patientGw gateway.PatientGateway,
	toastDuration time.Duration,
) Shell {
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}
	return &shell{
		log:           log,
		history:       history,
		resolver:      resolver,
		ambulanceGw:   ambulanceGw,
		patientGw:     patientGw,
		toastDuration: toastDuration,
		selection:     entity.NoSelection(),
		notice:        func(string) {},
	}
}

func (s *shell) Init(ctx context.Context) {
	s.RefreshAmbulances(ctx)
	s.RefreshPatients(ctx)
}

func (s *shell) Ambulances() []entity.Ambulance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Ambulance(nil), s.ambulances...)
}

func (s *shell) Patients() []entity.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Patient(nil), s.patients...)
}

// RefreshAmbulances fetches the full collection. It never fails outward: a
// transport error surfaces as a blocking notice and yields an empty list, so
// downstream rendering always receives a valid slice.
func (s *shell) RefreshAmbulances(ctx context.Context) []entity.Ambulance {
	s.mu.Lock()
	s.ambulanceGen++
	gen := s.ambulanceGen
	s.mu.Unlock()

	ambulances, err := s.ambulanceGw.List(ctx)
	if err != nil {
		s.log.Warnf("Failed to list ambulances: %+v", err)
		s.notice(err.Error())
		ambulances = []entity.Ambulance{}
	}
	if ambulances == nil {
		ambulances = []entity.Ambulance{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.ambulanceGen {
		return append([]entity.Ambulance(nil), s.ambulances...)
	}
	s.ambulances = ambulances
	return append([]entity.Ambulance(nil), s.ambulances...)
}

// RefreshPatients mirrors RefreshAmbulances for the patient collection.
func (s *shell) RefreshPatients(ctx context.Context) []entity.Patient {
	s.mu.Lock()
	s.patientGen++
	gen := s.patientGen
	s.mu.Unlock()

	patients, err := s.patientGw.List(ctx)
	if err != nil {
		s.log.Warnf("Failed to list patients: %+v", err)
		s.notice(err.Error())
		patients = []entity.Patient{}
	}
	if patients == nil {
		patients = []entity.Patient{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.patientGen {
		return append([]entity.Patient(nil), s.patients...)
	}
	s.patients = patients
	return append([]entity.Patient(nil), s.patients...)
}

func (s *shell) Selection() entity.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SelectAmbulance makes the ambulance the acting identity, clearing any
// acting patient.
func (s *shell) SelectAmbulance(ambulance entity.Ambulance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = entity.AmbulanceSelection(ambulance)
}

// SelectPatient makes the patient the acting identity, clearing any acting
// ambulance.
func (s *shell) SelectPatient(patient entity.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = entity.PatientSelection(patient)
}

func (s *shell) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = entity.NoSelection()
}

func (s *shell) Resolve() navigation.Resolution {
	for {
		resolution := s.resolver.Resolve(s.history.CurrentPath(), s.Selection())
		if resolution.Redirect == "" {
			return resolution
		}
		if resolution.Replace {
			s.history.Replace(resolution.Redirect)
		} else {
			s.history.Push(resolution.Redirect)
		}
	}
}

func (s *shell) Navigate(path string) {
	s.history.Push(path)
}

// ApplyOutcome reacts to a typed outcome event: refresh the directory,
// adjust the selection, push the canonical next route, and show a toast.
func (s *shell) ApplyOutcome(ctx context.Context, outcome entity.Outcome) {
	switch o := outcome.(type) {
	case entity.AmbulanceCreated:
		s.RefreshAmbulances(ctx)
		s.SelectAmbulance(o.Ambulance)
		s.history.Push(s.resolver.ReservationsPath(s.Selection()))
		s.ShowToast(entity.Toast{
			Message: "Ambulance " + o.Ambulance.Name + " created",
			Variant: entity.ToastSuccess,
		})

	case entity.AmbulanceUpdated:
		s.RefreshAmbulances(ctx)
		s.ShowToast(entity.Toast{
			Message: "Ambulance " + o.Ambulance.Name + " updated",
			Variant: entity.ToastSuccess,
		})

	case entity.AmbulanceDeleted:
		s.RefreshAmbulances(ctx)
		s.ClearSelection()
		s.history.Push(s.resolver.RootPath())
		s.ShowToast(entity.Toast{
			Message: "Ambulance " + o.Name + " deleted",
			Variant: entity.ToastSuccess,
		})

	case entity.PatientCreated:
		s.RefreshPatients(ctx)
		s.SelectPatient(o.Patient)
		s.history.Push(s.resolver.ReservationsPath(s.Selection()))
		s.ShowToast(entity.Toast{
			Message: "Patient " + o.Patient.FullName() + " created",
			Variant: entity.ToastSuccess,
		})

	case entity.PatientUpdated:
		s.RefreshPatients(ctx)
		s.ShowToast(entity.Toast{
			Message: "Patient " + o.Patient.FullName() + " updated",
			Variant: entity.ToastSuccess,
		})

	case entity.PatientDeleted:
		s.RefreshPatients(ctx)
		s.ClearSelection()
		s.history.Push(s.resolver.RootPath())
		s.ShowToast(entity.Toast{
			Message: "Patient " + o.Name + " deleted",
			Variant: entity.ToastSuccess,
		})

	case entity.ReservationCreated:
		s.history.Push(s.resolver.ReservationsPath(s.Selection()))
		s.setCreatedReservation(o.Reservation)
		s.ShowToast(entity.Toast{
			Message: "Reservation for " + o.Reservation.ExaminationType.Label() + " created",
			Description: "In ambulance " + o.Reservation.Ambulance.Name +
				" on " + o.Reservation.Start.Format("January 2, 2006"),
			Variant: entity.ToastSuccess,
		})

	case entity.ReservationUpdated:
		s.ShowToast(entity.Toast{Message: "Reservation updated", Variant: entity.ToastSuccess})

	case entity.ReservationDeleted:
		s.ShowToast(entity.Toast{Message: "Reservation deleted", Variant: entity.ToastSuccess})

	default:
		s.log.Warnf("Unhandled outcome: %T", outcome)
	}
}

func (s *shell) Toast() *entity.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return nil
	}
	toast := *s.toast
	return &toast
}

// ShowToast displays a toast and schedules its auto-dismissal. A newer toast
// supersedes the pending dismissal of an older one.
func (s *shell) ShowToast(toast entity.Toast) {
	s.mu.Lock()
	s.toast = &toast
	s.toastSeq++
	seq := s.toastSeq
	s.mu.Unlock()

	time.AfterFunc(s.toastDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.toastSeq == seq {
			s.toast = nil
		}
	})
}

func (s *shell) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast = nil
	s.toastSeq++
}

func (s *shell) setCreatedReservation(reservation entity.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createdReservation = &reservation
}

func (s *shell) CreatedReservation() *entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createdReservation == nil {
		return nil
	}
	reservation := *s.createdReservation
	return &reservation
}

// ClearCreatedReservation drops the pending hand-off so it is not reprocessed
// on the next render.
func (s *shell) ClearCreatedReservation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createdReservation = nil
}

func (s *shell) OnNotice(notice func(message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if notice != nil {
		s.notice = notice
	}
}
