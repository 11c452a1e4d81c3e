package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambulance-reservation-console/internal/domain/entity"
)

func newTestDetail(reservationGw *fakeReservationGateway, selection entity.Selection) ReservationDetail {
	return NewReservationDetail(testLogger(), reservationGw, selection)
}

func patientDetailSelection() entity.Selection {
	return entity.PatientSelection(entity.Patient{ID: "p1", FirstName: "Anna", LastName: "Kovacs"})
}

func TestDetailLoad(t *testing.T) {
	reservationGw := &fakeReservationGateway{reservations: []entity.Reservation{testReservation("r1")}}
	detail := newTestDetail(reservationGw, patientDetailSelection())

	require.NoError(t, detail.Load(context.Background(), "r1"))

	reservation := detail.Reservation()
	require.NotNil(t, reservation)
	assert.Equal(t, "r1", reservation.ID)
	assert.False(t, detail.Loading())
}

func TestDetailCanEditIsPatientOnly(t *testing.T) {
	reservationGw := &fakeReservationGateway{reservations: []entity.Reservation{testReservation("r1")}}

	patientSide := newTestDetail(reservationGw, patientDetailSelection())
	assert.True(t, patientSide.CanEdit())

	ambulanceSide := newTestDetail(reservationGw,
		entity.AmbulanceSelection(entity.Ambulance{ID: "a1", Name: "Central Clinic"}))
	assert.False(t, ambulanceSide.CanEdit())

	require.NoError(t, ambulanceSide.Load(context.Background(), "r1"))
	_, err := ambulanceSide.Update(context.Background(), "try to edit")
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestDetailUpdateSendsWholeRecordWithNewMessage(t *testing.T) {
	reservationGw := &fakeReservationGateway{reservations: []entity.Reservation{testReservation("r1")}}
	detail := newTestDetail(reservationGw, patientDetailSelection())
	require.NoError(t, detail.Load(context.Background(), "r1"))

	updated, err := detail.Update(context.Background(), "bring referral")
	require.NoError(t, err)

	// Everything except the message carries the stored values.
	assert.Equal(t, "bring referral", reservationGw.lastWrite.Message)
	assert.Equal(t, "r1", reservationGw.lastWrite.ID)
	assert.Equal(t, entity.ExaminationMRI, reservationGw.lastWrite.ExaminationType)
	assert.Equal(t, "bring referral", updated.Message)
	reservation := detail.Reservation()
	require.NotNil(t, reservation)
	assert.Equal(t, "bring referral", reservation.Message)
}

func TestDetailUpdateWithoutLoadFails(t *testing.T) {
	detail := newTestDetail(&fakeReservationGateway{}, patientDetailSelection())

	_, err := detail.Update(context.Background(), "message")
	assert.ErrorIs(t, err, ErrReservationNotLoaded)
}

func TestDetailUpdateFailureKeepsGenericMessage(t *testing.T) {
	reservationGw := &fakeReservationGateway{
		reservations: []entity.Reservation{testReservation("r1")},
		updateErr:    errGatewayDown,
	}
	detail := newTestDetail(reservationGw, patientDetailSelection())
	require.NoError(t, detail.Load(context.Background(), "r1"))

	_, err := detail.Update(context.Background(), "message")
	assert.ErrorIs(t, err, ErrUpdateFailed)
	assert.False(t, detail.Loading())
}

func TestDetailDeleteRequiresConfirmation(t *testing.T) {
	reservationGw := &fakeReservationGateway{reservations: []entity.Reservation{testReservation("r1")}}
	detail := newTestDetail(reservationGw, patientDetailSelection())
	require.NoError(t, detail.Load(context.Background(), "r1"))

	// Without an open confirmation dialog nothing is deleted.
	err := detail.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.Empty(t, reservationGw.deleted)

	detail.RequestDelete()
	assert.True(t, detail.DeleteRequested())

	// Cancelling closes the dialog again.
	detail.CancelDelete()
	assert.False(t, detail.DeleteRequested())
	err = detail.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)

	detail.RequestDelete()
	require.NoError(t, detail.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"r1"}, reservationGw.deleted)
	assert.False(t, detail.DeleteRequested())
}

func TestDetailDeleteFailureKeepsGenericMessage(t *testing.T) {
	reservationGw := &fakeReservationGateway{
		reservations: []entity.Reservation{testReservation("r1")},
		deleteErr:    errGatewayDown,
	}
	detail := newTestDetail(reservationGw, patientDetailSelection())
	require.NoError(t, detail.Load(context.Background(), "r1"))

	detail.RequestDelete()
	err := detail.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrDeleteFailed)
	// The dialog stays open so the operator can retry or cancel.
	assert.True(t, detail.DeleteRequested())
}

func TestDetailLoadDiscardsStaleResponseAfterIDChange(t *testing.T) {
	reservationGw := &fakeReservationGateway{reservations: []entity.Reservation{
		testReservation("r1"), testReservation("r2"),
	}}
	detail := newTestDetail(reservationGw, patientDetailSelection())

	require.NoError(t, detail.Load(context.Background(), "r1"))
	require.NoError(t, detail.Load(context.Background(), "r2"))

	reservation := detail.Reservation()
	require.NotNil(t, reservation)
	assert.Equal(t, "r2", reservation.ID)
}
