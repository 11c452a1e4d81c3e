package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/navigation"
)

func newTestShell(ambulanceGw *fakeAmbulanceGateway, patientGw *fakePatientGateway, toastDuration time.Duration) (Shell, *navigation.MemoryHistory) {
	resolver := navigation.NewResolver("")
	history := navigation.NewMemoryHistory(resolver.RootPath())
	shell := NewShell(testLogger(), history, resolver, ambulanceGw, patientGw, toastDuration)
	return shell, history
}

func TestShellInitLoadsDirectories(t *testing.T) {
	ambulanceGw := &fakeAmbulanceGateway{ambulances: []entity.Ambulance{{ID: "a1", Name: "Central Clinic"}}}
	patientGw := &fakePatientGateway{patients: []entity.Patient{{ID: "p1", FirstName: "Anna", LastName: "Kovacs"}}}
	shell, _ := newTestShell(ambulanceGw, patientGw, 0)

	shell.Init(context.Background())

	assert.Len(t, shell.Ambulances(), 1)
	assert.Len(t, shell.Patients(), 1)
}

func TestShellDirectoryRefreshDegradesToEmptyList(t *testing.T) {
	ambulanceGw := &fakeAmbulanceGateway{listErr: errGatewayDown}
	patientGw := &fakePatientGateway{}
	shell, _ := newTestShell(ambulanceGw, patientGw, 0)

	var notices []string
	shell.OnNotice(func(message string) { notices = append(notices, message) })

	ambulances := shell.RefreshAmbulances(context.Background())

	assert.NotNil(t, ambulances)
	assert.Empty(t, ambulances)
	assert.Len(t, notices, 1)
}

func TestShellSelectionIsMutuallyExclusive(t *testing.T) {
	shell, _ := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, 0)

	shell.SelectAmbulance(entity.Ambulance{ID: "a1", Name: "Central Clinic"})
	require.Equal(t, entity.SelectionAmbulance, shell.Selection().Kind())

	shell.SelectPatient(entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"})
	selection := shell.Selection()
	assert.Equal(t, entity.SelectionPatient, selection.Kind())
	assert.Nil(t, selection.Ambulance())

	shell.ClearSelection()
	assert.True(t, shell.Selection().IsNone())
}

func TestShellResolveFollowsRootRedirectWithReplace(t *testing.T) {
	shell, history := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, 0)
	shell.SelectPatient(entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"})

	resolution := shell.Resolve()

	assert.Equal(t, navigation.ViewReservations, resolution.View)
	assert.Equal(t, "/patient/p1/reservations", history.CurrentPath())
	// Replace, not push: the root entry is gone from the stack.
	assert.Equal(t, []string{"/patient/p1/reservations"}, history.Entries())
}

func TestShellResolveUnknownPathRedirectsToPicker(t *testing.T) {
	shell, history := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, 0)
	shell.Navigate("/bogus")

	resolution := shell.Resolve()

	assert.Equal(t, navigation.ViewEntityPicker, resolution.View)
	assert.Equal(t, "/", history.CurrentPath())
}

func TestShellToastAutoDismisses(t *testing.T) {
	shell, _ := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, 20*time.Millisecond)

	shell.ShowToast(entity.Toast{Message: "Reservation updated", Variant: entity.ToastSuccess})
	require.NotNil(t, shell.Toast())

	assert.Eventually(t, func() bool { return shell.Toast() == nil },
		500*time.Millisecond, 5*time.Millisecond)
}

func TestShellNewerToastSupersedesPendingDismissal(t *testing.T) {
	shell, _ := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, 100*time.Millisecond)

	shell.ShowToast(entity.Toast{Message: "first"})
	time.Sleep(60 * time.Millisecond)
	shell.ShowToast(entity.Toast{Message: "second"})
	time.Sleep(50 * time.Millisecond)

	// The first toast's timer has fired by now but must not clear the second.
	toast := shell.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "second", toast.Message)
}

func TestShellManualDismiss(t *testing.T) {
	shell, _ := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, time.Hour)

	shell.ShowToast(entity.Toast{Message: "sticky"})
	shell.DismissToast()

	assert.Nil(t, shell.Toast())
}

func TestShellApplyAmbulanceCreated(t *testing.T) {
	ambulance := entity.Ambulance{ID: "a1", Name: "Central Clinic"}
	ambulanceGw := &fakeAmbulanceGateway{ambulances: []entity.Ambulance{ambulance}}
	shell, history := newTestShell(ambulanceGw, &fakePatientGateway{}, time.Hour)

	shell.ApplyOutcome(context.Background(), entity.AmbulanceCreated{Ambulance: ambulance})

	assert.Equal(t, 1, ambulanceGw.listCalls)
	assert.Equal(t, entity.SelectionAmbulance, shell.Selection().Kind())
	assert.Equal(t, "/ambulance/a1/reservations", history.CurrentPath())
	toast := shell.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "Ambulance Central Clinic created", toast.Message)
}

func TestShellApplyPatientDeletedClearsSelection(t *testing.T) {
	patientGw := &fakePatientGateway{}
	shell, history := newTestShell(&fakeAmbulanceGateway{}, patientGw, time.Hour)
	shell.SelectPatient(entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"})
	shell.Navigate("/patient/p1/reservations")

	shell.ApplyOutcome(context.Background(), entity.PatientDeleted{Name: "Anna Kovacs"})

	assert.True(t, shell.Selection().IsNone())
	assert.Equal(t, "/", history.CurrentPath())
	toast := shell.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "Patient Anna Kovacs deleted", toast.Message)
}

func TestShellApplyReservationCreated(t *testing.T) {
	shell, history := newTestShell(&fakeAmbulanceGateway{}, &fakePatientGateway{}, time.Hour)
	shell.SelectPatient(entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"})

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	reservation := entity.Reservation{
		ID:              "r1",
		Ambulance:       entity.Ambulance{ID: "a1", Name: "Central Clinic"},
		ExaminationType: entity.ExaminationMRI,
		Start:           start,
		End:             start.Add(30 * time.Minute),
	}

	shell.ApplyOutcome(context.Background(), entity.ReservationCreated{Reservation: reservation})

	assert.Equal(t, "/patient/p1/reservations", history.CurrentPath())

	created := shell.CreatedReservation()
	require.NotNil(t, created)
	assert.Equal(t, "r1", created.ID)

	toast := shell.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "Reservation for MRI created", toast.Message)
	assert.Equal(t, "In ambulance Central Clinic on March 10, 2025", toast.Description)

	shell.ClearCreatedReservation()
	assert.Nil(t, shell.CreatedReservation())
}
