package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/domain/gateway"
)

var (
	// ErrReservationNotLoaded rejects edits before a reservation is loaded.
	ErrReservationNotLoaded = errors.New("no reservation loaded")
	// ErrReadOnly rejects edits when the acting identity is the ambulance;
	// only the patient side may change a reservation.
	ErrReadOnly = errors.New("reservation is read-only for the acting identity")
	// ErrDeleteNotConfirmed rejects a delete without the confirmation dialog.
	ErrDeleteNotConfirmed = errors.New("deletion requires confirmation")
	// ErrUpdateFailed and ErrDeleteFailed carry the generic user-facing
	// message for transport/gateway failures.
	ErrUpdateFailed = errors.New("An error occurred while updating the reservation. Please try again.")
	ErrDeleteFailed = errors.New("An error occurred while deleting the reservation. Please try again.")
)

// ReservationDetail loads one reservation and supports message edits and
// confirmed deletion. It reports outcomes to its caller; it never cleans up
// the parent's references itself.
type ReservationDetail interface {
	// Load fetches the reservation; called on open and whenever the id
	// changes.
	Load(ctx context.Context, reservationID string) error
	Reservation() *entity.Reservation

	// CanEdit reports whether the acting identity may change the message.
	CanEdit() bool

	// Update sends the full previous reservation merged with the changed
	// message; the gateway accepts whole-record overwrites only.
	Update(ctx context.Context, message string) (*entity.Reservation, error)

	// RequestDelete opens the confirmation dialog; ConfirmDelete performs the
	// deletion only while the dialog is open; CancelDelete closes it.
	RequestDelete()
	DeleteRequested() bool
	CancelDelete()
	ConfirmDelete(ctx context.Context) error

	Loading() bool
}

type reservationDetail struct {
	mu sync.Mutex

	log           *logrus.Logger
	reservationGw gateway.ReservationGateway
	selection     entity.Selection

	reservation     *entity.Reservation
	deleteRequested bool
	loading         bool

	// Discards a load that lost the race with a later id change.
	gen int
}

// NewReservationDetail opens the detail panel for the acting identity.
func NewReservationDetail(
	log *logrus.Logger,
	reservationGw gateway.ReservationGateway,
	selection entity.Selection,
) ReservationDetail {
	return &reservationDetail{
		log:           log,
		reservationGw: reservationGw,
		selection:     selection,
	}
}

func (d *reservationDetail) Load(ctx context.Context, reservationID string) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.loading = true
	d.mu.Unlock()

	reservation, err := d.reservationGw.GetByID(ctx, reservationID)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.log.Warnf("Failed to load reservation %s: %+v", reservationID, err)
		return err
	}
	if gen != d.gen {
		return nil
	}
	d.reservation = reservation
	return nil
}

func (d *reservationDetail) Reservation() *entity.Reservation {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.reservation == nil {
		return nil
	}
	reservation := *d.reservation
	return &reservation
}

func (d *reservationDetail) CanEdit() bool {
	return d.selection.Kind() == entity.SelectionPatient
}

func (d *reservationDetail) Update(ctx context.Context, message string) (*entity.Reservation, error) {
	if !d.CanEdit() {
		return nil, ErrReadOnly
	}

	d.mu.Lock()
	if d.reservation == nil {
		d.mu.Unlock()
		return nil, ErrReservationNotLoaded
	}
	merged := *d.reservation
	merged.Message = message
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	updated, err := d.reservationGw.Update(ctx, merged.ID, merged)
	if err != nil {
		d.log.Warnf("Failed to update reservation %s: %+v", merged.ID, err)
		return nil, fmt.Errorf("%w", ErrUpdateFailed)
	}

	d.mu.Lock()
	d.reservation = updated
	d.mu.Unlock()
	return updated, nil
}

func (d *reservationDetail) RequestDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleteRequested = true
}

func (d *reservationDetail) DeleteRequested() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteRequested
}

func (d *reservationDetail) CancelDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleteRequested = false
}

func (d *reservationDetail) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	if !d.deleteRequested {
		d.mu.Unlock()
		return ErrDeleteNotConfirmed
	}
	if d.reservation == nil {
		d.mu.Unlock()
		return ErrReservationNotLoaded
	}
	id := d.reservation.ID
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	if err := d.reservationGw.Delete(ctx, id); err != nil {
		d.log.Warnf("Failed to delete reservation %s: %+v", id, err)
		return fmt.Errorf("%w", ErrDeleteFailed)
	}

	d.mu.Lock()
	d.deleteRequested = false
	d.mu.Unlock()
	return nil
}

func (d *reservationDetail) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}
