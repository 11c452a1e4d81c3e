package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambulance-reservation-console/internal/calendar"
	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/navigation"
	"ambulance-reservation-console/internal/usecase"
	"ambulance-reservation-console/pkg/validator"
)

var errReservationMissing = errors.New("no such record")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeAmbulanceGateway struct {
	ambulances []entity.Ambulance
}

func (f *fakeAmbulanceGateway) List(context.Context) ([]entity.Ambulance, error) {
	return append([]entity.Ambulance(nil), f.ambulances...), nil
}

func (f *fakeAmbulanceGateway) GetByID(_ context.Context, id string) (*entity.Ambulance, error) {
	for _, a := range f.ambulances {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errReservationMissing
}

func (f *fakeAmbulanceGateway) Create(_ context.Context, a entity.Ambulance) (*entity.Ambulance, error) {
	return &a, nil
}

func (f *fakeAmbulanceGateway) Update(_ context.Context, _ string, a entity.Ambulance) (*entity.Ambulance, error) {
	return &a, nil
}

func (f *fakeAmbulanceGateway) Delete(context.Context, string) error { return nil }

type fakePatientGateway struct {
	patients []entity.Patient
}

func (f *fakePatientGateway) List(context.Context) ([]entity.Patient, error) {
	return append([]entity.Patient(nil), f.patients...), nil
}

func (f *fakePatientGateway) GetByID(_ context.Context, id string) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errReservationMissing
}

func (f *fakePatientGateway) Create(_ context.Context, p entity.Patient) (*entity.Patient, error) {
	return &p, nil
}

func (f *fakePatientGateway) Update(_ context.Context, _ string, p entity.Patient) (*entity.Patient, error) {
	return &p, nil
}

func (f *fakePatientGateway) Delete(context.Context, string) error { return nil }

func (f *fakePatientGateway) SearchExaminations(context.Context, string, entity.ExaminationQuery) ([]entity.Examination, error) {
	return []entity.Examination{}, nil
}

type fakeReservationGateway struct {
	reservations []entity.Reservation
	getByIDCalls int
}

func (f *fakeReservationGateway) ListForAmbulance(_ context.Context, ambulanceID string) ([]entity.Reservation, error) {
	out := make([]entity.Reservation, 0)
	for _, r := range f.reservations {
		if r.Ambulance.ID == ambulanceID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationGateway) ListForPatient(_ context.Context, patientID string) ([]entity.Reservation, error) {
	out := make([]entity.Reservation, 0)
	for _, r := range f.reservations {
		if r.Patient.ID == patientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationGateway) GetByID(_ context.Context, id string) (*entity.Reservation, error) {
	f.getByIDCalls++
	for _, r := range f.reservations {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, errReservationMissing
}

func (f *fakeReservationGateway) Create(_ context.Context, _ string, _ entity.ReservationInput) (*entity.Reservation, error) {
	return nil, errReservationMissing
}

func (f *fakeReservationGateway) Update(_ context.Context, _ string, r entity.Reservation) (*entity.Reservation, error) {
	return &r, nil
}

func (f *fakeReservationGateway) Delete(context.Context, string) error { return nil }

// surfaceRecorder hands out memory surfaces and remembers every instance so
// tests can inspect teardown across rebuilds.
type surfaceRecorder struct {
	surfaces []*calendar.MemorySurface
}

func (r *surfaceRecorder) factory() calendar.Surface {
	s := calendar.NewMemorySurface()
	r.surfaces = append(r.surfaces, s)
	return s
}

type consoleFixture struct {
	console      *Console
	out          *bytes.Buffer
	surfaces     *surfaceRecorder
	reservations *fakeReservationGateway
}

func newConsoleFixture(t *testing.T, script string, reservations []entity.Reservation) *consoleFixture {
	t.Helper()

	ambulance := entity.Ambulance{
		ID:                  "a1",
		Name:                "Central Clinic",
		Address:             "Main St 1",
		MedicalExaminations: []entity.ExaminationType{entity.ExaminationCT},
		OfficeHours:         entity.OfficeHours{Open: "08:00", Close: "16:00"},
	}
	patient := entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs", Birthday: "1990-04-12", Sex: entity.SexFemale}

	log := testLogger()
	resolver := navigation.NewResolver("/")
	history := navigation.NewMemoryHistory(resolver.RootPath())
	ambulanceGw := &fakeAmbulanceGateway{ambulances: []entity.Ambulance{ambulance}}
	patientGw := &fakePatientGateway{patients: []entity.Patient{patient}}
	reservationGw := &fakeReservationGateway{reservations: reservations}
	shell := usecase.NewShell(log, history, resolver, ambulanceGw, patientGw, time.Minute)
	recorder := &surfaceRecorder{}

	out := &bytes.Buffer{}
	c := NewConsole(log, validator.NewValidator(), resolver, shell,
		ambulanceGw, patientGw, reservationGw,
		recorder.factory, strings.NewReader(script), out)

	return &consoleFixture{console: c, out: out, surfaces: recorder, reservations: reservationGw}
}

func testReservations() []entity.Reservation {
	ambulance := entity.Ambulance{ID: "a1", Name: "Central Clinic"}
	patient := entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"}
	other := entity.Patient{ID: "p2", FirstName: "Peter", LastName: "Molnar"}
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	return []entity.Reservation{
		{
			ID:              "amb-only-res",
			Ambulance:       ambulance,
			Patient:         other,
			ExaminationType: entity.ExaminationCT,
			Start:           day.Add(9 * time.Hour),
			End:             day.Add(9*time.Hour + 30*time.Minute),
		},
		{
			ID:              "pat-only-res",
			Ambulance:       entity.Ambulance{ID: "a2", Name: "Riverside Diagnostics"},
			Patient:         patient,
			ExaminationType: entity.ExaminationMRI,
			Start:           day.Add(11 * time.Hour),
			End:             day.Add(11*time.Hour + 30*time.Minute),
		},
	}
}

// Switching the acting entity while the reservations view stays mounted must
// hand the calendar the new identity: the old surface is destroyed and the
// view lists the new entity's reservations, not the previous one's.
func TestConsoleEntitySwitchRefreshesCalendar(t *testing.T) {
	f := newConsoleFixture(t, "select ambulance 1\nselect patient 1\nquit\n", testReservations())

	require.NoError(t, f.console.Run(context.Background()))

	output := f.out.String()
	_, afterSwitch, found := strings.Cut(output, "acting as Anna Kovacs")
	require.True(t, found, "output: %s", output)

	assert.Contains(t, afterSwitch, "pat-only-res")
	assert.NotContains(t, afterSwitch, "amb-only-res")

	// One surface per identity; the ambulance's was torn down on the switch.
	require.Len(t, f.surfaces.surfaces, 2)
	assert.True(t, f.surfaces.surfaces[0].Destroyed())
	assert.False(t, f.surfaces.surfaces[1].Destroyed())
}

// Re-rendering an already-open detail panel must not refetch the reservation;
// only opening it (or a different id) hits the gateway.
func TestConsoleDetailLoadsOncePerReservation(t *testing.T) {
	f := newConsoleFixture(t, "select patient 1\nopen pat-only-res\nls\nls\nquit\n", testReservations())

	require.NoError(t, f.console.Run(context.Background()))

	assert.Contains(t, f.out.String(), "[reservation detail] pat-only-res")
	assert.Equal(t, 1, f.reservations.getByIDCalls)
}
