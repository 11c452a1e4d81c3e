// Package devgateway is an in-memory implementation of the backend gateway
// API, used for local development and as the fixture behind gateway-client
// tests. It owns entity ids and performs the conflict detection the
// reservation console deliberately leaves to the gateway.
package devgateway

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ambulance-reservation-console/internal/domain/entity"
)

const slotLength = 30 * time.Minute

var (
	ErrAmbulanceNotFound   = errors.New("ambulance not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrImmutableField rejects changes to an ambulance's name or address
	// once the id is assigned.
	ErrImmutableField     = errors.New("name and address are immutable after creation")
	ErrInvalidOfficeHours = errors.New("office hours must be HH:MM and open before close")
	// ErrSlotTaken rejects a reservation overlapping an existing one for the
	// same ambulance.
	ErrSlotTaken = errors.New("the requested slot is no longer available")
)

// Store holds the gateway's entities behind a single lock.
type Store struct {
	mu           sync.Mutex
	ambulances   map[string]entity.Ambulance
	patients     map[string]entity.Patient
	reservations map[string]entity.Reservation
}

func NewStore() *Store {
	return &Store{
		ambulances:   make(map[string]entity.Ambulance),
		patients:     make(map[string]entity.Patient),
		reservations: make(map[string]entity.Reservation),
	}
}

/* AMBULANCES */

func (s *Store) ListAmbulances() []entity.Ambulance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Ambulance, 0, len(s.ambulances))
	for _, a := range s.ambulances {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) GetAmbulance(id string) (entity.Ambulance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.ambulances[id]
	if !ok {
		return entity.Ambulance{}, ErrAmbulanceNotFound
	}
	return a, nil
}

func (s *Store) CreateAmbulance(in entity.Ambulance) (entity.Ambulance, error) {
	if !in.OfficeHours.IsValid() {
		return entity.Ambulance{}, ErrInvalidOfficeHours
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = uuid.NewString()
	s.ambulances[in.ID] = in
	return in, nil
}

func (s *Store) UpdateAmbulance(id string, in entity.Ambulance) (entity.Ambulance, error) {
	if !in.OfficeHours.IsValid() {
		return entity.Ambulance{}, ErrInvalidOfficeHours
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.ambulances[id]
	if !ok {
		return entity.Ambulance{}, ErrAmbulanceNotFound
	}
	if in.Name != current.Name || in.Address != current.Address {
		return entity.Ambulance{}, ErrImmutableField
	}
	current.MedicalExaminations = in.MedicalExaminations
	current.OfficeHours = in.OfficeHours
	s.ambulances[id] = current

	// Reservations embed the ambulance; keep the copies in step.
	for rid, r := range s.reservations {
		if r.Ambulance.ID == id {
			r.Ambulance = current
			s.reservations[rid] = r
		}
	}
	return current, nil
}

func (s *Store) DeleteAmbulance(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ambulances[id]; !ok {
		return ErrAmbulanceNotFound
	}
	delete(s.ambulances, id)
	for rid, r := range s.reservations {
		if r.Ambulance.ID == id {
			delete(s.reservations, rid)
		}
	}
	return nil
}

/* PATIENTS */

func (s *Store) ListPatients() []entity.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastName+out[i].FirstName < out[j].LastName+out[j].FirstName
	})
	return out
}

func (s *Store) GetPatient(id string) (entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[id]
	if !ok {
		return entity.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

func (s *Store) CreatePatient(in entity.Patient) (entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = uuid.NewString()
	s.patients[in.ID] = in
	return in, nil
}

func (s *Store) UpdatePatient(id string, in entity.Patient) (entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[id]; !ok {
		return entity.Patient{}, ErrPatientNotFound
	}
	in.ID = id
	s.patients[id] = in
	for rid, r := range s.reservations {
		if r.Patient.ID == id {
			r.Patient = in
			s.reservations[rid] = r
		}
	}
	return in, nil
}

func (s *Store) DeletePatient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[id]; !ok {
		return ErrPatientNotFound
	}
	delete(s.patients, id)
	for rid, r := range s.reservations {
		if r.Patient.ID == id {
			delete(s.reservations, rid)
		}
	}
	return nil
}

/* RESERVATIONS */

func (s *Store) ListReservationsForAmbulance(ambulanceID string) []entity.Reservation {
	return s.listReservations(func(r entity.Reservation) bool { return r.Ambulance.ID == ambulanceID })
}

func (s *Store) ListReservationsForPatient(patientID string) []entity.Reservation {
	return s.listReservations(func(r entity.Reservation) bool { return r.Patient.ID == patientID })
}

func (s *Store) listReservations(keep func(entity.Reservation) bool) []entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Reservation, 0)
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (s *Store) GetReservation(id string) (entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return entity.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

// CreateReservation commits a slot, rejecting overlaps with the ambulance's
// existing reservations. Start and End are stored exactly as received.
func (s *Store) CreateReservation(input entity.ReservationInput) (entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ambulance, ok := s.ambulances[input.AmbulanceID]
	if !ok {
		return entity.Reservation{}, ErrAmbulanceNotFound
	}
	patient, ok := s.patients[input.PatientID]
	if !ok {
		return entity.Reservation{}, ErrPatientNotFound
	}
	for _, r := range s.reservations {
		if r.Ambulance.ID == ambulance.ID && overlaps(r.Start, r.End, input.Start, input.End) {
			return entity.Reservation{}, ErrSlotTaken
		}
	}
	reservation := entity.Reservation{
		ID:              uuid.NewString(),
		Ambulance:       ambulance,
		Patient:         patient,
		ExaminationType: input.ExaminationType,
		Start:           input.Start,
		End:             input.End,
		Message:         input.Message,
	}
	s.reservations[reservation.ID] = reservation
	return reservation, nil
}

// UpdateReservation accepts a whole-record overwrite but only the message is
// mutable; everything else stays as stored.
func (s *Store) UpdateReservation(id string, message string) (entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return entity.Reservation{}, ErrReservationNotFound
	}
	r.Message = message
	s.reservations[id] = r
	return r, nil
}

func (s *Store) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

/* SLOT SEARCH */

// SearchExaminations generates candidate slots for the patient on the given
// day: every ambulance providing the examination type offers slot-length
// windows inside its office hours, minus windows colliding with its existing
// reservations or with the patient's own.
func (s *Store) SearchExaminations(patientID string, date string, examinationType entity.ExaminationType) ([]entity.Examination, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	patient, ok := s.patients[patientID]
	if !ok {
		return nil, ErrPatientNotFound
	}

	candidates := make([]entity.Examination, 0)
	for _, ambulance := range s.ambulances {
		if !ambulance.Provides(examinationType) {
			continue
		}
		open, errOpen := clockOn(day, ambulance.OfficeHours.Open)
		closing, errClose := clockOn(day, ambulance.OfficeHours.Close)
		if errOpen != nil || errClose != nil {
			continue
		}
		for start := open; !start.Add(slotLength).After(closing); start = start.Add(slotLength) {
			end := start.Add(slotLength)
			if s.collides(ambulance.ID, patient.ID, start, end) {
				continue
			}
			candidates = append(candidates, entity.Examination{
				Ambulance:       ambulance,
				ExaminationType: examinationType,
				Start:           start,
				End:             end,
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start.Equal(candidates[j].Start) {
			return candidates[i].Ambulance.Name < candidates[j].Ambulance.Name
		}
		return candidates[i].Start.Before(candidates[j].Start)
	})
	return candidates, nil
}

func (s *Store) collides(ambulanceID, patientID string, start, end time.Time) bool {
	for _, r := range s.reservations {
		if (r.Ambulance.ID == ambulanceID || r.Patient.ID == patientID) && overlaps(r.Start, r.End, start, end) {
			return true
		}
	}
	return false
}

func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
