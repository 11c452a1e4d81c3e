package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/domain/gateway"
	"ambulance-reservation-console/pkg/validator"
)

var (
	// ErrSearchInFlight rejects a duplicate submit while a search is running.
	ErrSearchInFlight = errors.New("a slot search is already in flight")
	// ErrBookingInFlight rejects a duplicate commit while one is running.
	ErrBookingInFlight = errors.New("a booking is already in flight")
	// ErrAlreadyBooked rejects further commits on a result set that already
	// produced a reservation; a new search is required first.
	ErrAlreadyBooked = errors.New("a slot from this search was already booked, run a new search")
	// ErrNoSuchCandidate rejects a commit for an index outside the result set.
	ErrNoSuchCandidate = errors.New("no such candidate slot")
	// ErrSearchFailed and ErrBookingFailed carry the generic user-facing
	// message for transport/gateway failures.
	ErrSearchFailed  = errors.New("An error occurred while searching for examinations. Please try again.")
	ErrBookingFailed = errors.New("An error occurred while creating the reservation. Please try again.")
)

// BookingFlow is the two-phase slot-search and booking protocol for one
// acting patient. Phase one turns a (date, examination type) query into
// candidate slots; phase two commits exactly one candidate into a
// reservation.
type BookingFlow interface {
	Patient() entity.Patient

	// Search validates the query and fetches candidate slots. Validation
	// failures come back as field-scoped messages and never reach the
	// network. An empty candidate list is not an error; it means no
	// availability.
	Search(ctx context.Context, query entity.ExaminationQuery) ([]entity.Examination, map[string]string, error)

	Candidates() []entity.Examination
	Searched() bool
	InFlight() bool
	Committed() bool

	// Book commits the candidate at the given index. The candidate's start
	// and end instants are passed through to the gateway unmodified; overlap
	// checking is the gateway's responsibility.
	Book(ctx context.Context, candidateIndex int) (*entity.Reservation, error)
}

type bookingFlow struct {
	mu sync.Mutex

	log           *logrus.Logger
	validator     *validator.CustomValidator
	patientGw     gateway.PatientGateway
	reservationGw gateway.ReservationGateway
	patient       entity.Patient

	candidates []entity.Examination
	searched   bool
	inFlight   bool
	committed  bool
}

// NewBookingFlow starts a booking flow for the acting patient.
func NewBookingFlow(
	log *logrus.Logger,
	v *validator.CustomValidator,
	patientGw gateway.PatientGateway,
	reservationGw gateway.ReservationGateway,
	patient entity.Patient,
) BookingFlow {
	return &bookingFlow{
		log:           log,
		validator:     v,
		patientGw:     patientGw,
		reservationGw: reservationGw,
		patient:       patient,
	}
}

func (f *bookingFlow) Patient() entity.Patient {
	return f.patient
}

func (f *bookingFlow) Search(ctx context.Context, query entity.ExaminationQuery) ([]entity.Examination, map[string]string, error) {
	if err := f.validator.Validate(&query); err != nil {
		if fieldErrors := f.validator.FormatValidationErrors(err); len(fieldErrors) > 0 {
			return nil, fieldErrors, nil
		}
		// Not a field-level failure; surface the error instead of swallowing
		// it behind an empty message map.
		return nil, nil, err
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, nil, ErrSearchInFlight
	}
	f.inFlight = true
	f.mu.Unlock()

	examinations, err := f.patientGw.SearchExaminations(ctx, f.patient.ID, query)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		f.log.Warnf("Failed to search examinations: %+v", err)
		return nil, nil, fmt.Errorf("%w", ErrSearchFailed)
	}

	// A fresh result set lifts the committed latch.
	f.candidates = examinations
	f.searched = true
	f.committed = false
	return append([]entity.Examination(nil), f.candidates...), nil, nil
}

func (f *bookingFlow) Candidates() []entity.Examination {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Examination(nil), f.candidates...)
}

func (f *bookingFlow) Searched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searched
}

func (f *bookingFlow) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

func (f *bookingFlow) Committed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committed
}

func (f *bookingFlow) Book(ctx context.Context, candidateIndex int) (*entity.Reservation, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrBookingInFlight
	}
	if f.committed {
		f.mu.Unlock()
		return nil, ErrAlreadyBooked
	}
	if candidateIndex < 0 || candidateIndex >= len(f.candidates) {
		f.mu.Unlock()
		return nil, ErrNoSuchCandidate
	}
	candidate := f.candidates[candidateIndex]
	f.inFlight = true
	f.mu.Unlock()

	reservation, err := f.reservationGw.Create(ctx, f.patient.ID, entity.ReservationInput{
		AmbulanceID:     candidate.Ambulance.ID,
		PatientID:       f.patient.ID,
		ExaminationType: candidate.ExaminationType,
		Start:           candidate.Start,
		End:             candidate.End,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		f.log.Warnf("Failed to create reservation: %+v", err)
		return nil, fmt.Errorf("%w", ErrBookingFailed)
	}

	// Booked slots are not removed from the displayed list; the latch forces
	// a re-search before another commit.
	f.committed = true
	return reservation, nil
}
