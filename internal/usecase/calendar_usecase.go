package usecase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/calendar"
	"ambulance-reservation-console/internal/converter"
	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/domain/gateway"
)

// CalendarSync keeps the calendar surface in step with the acting entity's
// reservations. Every refetch tears the surface down and recreates it; the
// surface never shows data fetched before the most recent mutation.
type CalendarSync interface {
	// Mount fetches the acting entity's reservations and builds the surface.
	Mount(ctx context.Context) error

	// SetActingEntity switches the calendar to another identity: the selected
	// reservation is cleared and the surface torn down and rebuilt before the
	// new entity's reservations are fetched.
	SetActingEntity(ctx context.Context, selection entity.Selection) error

	// OpenReservation opens the detail panel for a clicked event. It fails
	// with ErrNoActingEntity when neither identity is acting.
	OpenReservation(reservationID string) error
	SelectedReservationID() string

	// ClosePanel clears the selected reservation without refetching. Closing
	// an already-closed panel is a no-op and reports false.
	ClosePanel() bool

	// ShowCreated advances the surface to a reservation booked elsewhere in
	// the flow, auto-opens its detail panel, and clears the pending marker so
	// it is not reprocessed.
	ShowCreated(reservation entity.Reservation)

	// ApplyReservationUpdated and ApplyReservationDeleted run the
	// post-mutation protocol: close the panel, rebuild the surface, refetch,
	// and re-emit the outcome upward.
	ApplyReservationUpdated(ctx context.Context, reservation entity.Reservation) error
	ApplyReservationDeleted(ctx context.Context, reservationID string) error

	Reservations() []entity.Reservation

	// Unmount destroys the surface so its internal timers and listeners are
	// released.
	Unmount()
}

type calendarSync struct {
	mu sync.Mutex

	log           *logrus.Logger
	reservationGw gateway.ReservationGateway
	newSurface    calendar.Factory
	emit          func(entity.Outcome)
	createdShown  func()

	selection    entity.Selection
	surface      calendar.Surface
	reservations []entity.Reservation
	selectedID   string

	// Discards fetches that lose a race with a later entity switch.
	gen int
}

// NewCalendarSync wires the calendar for an acting entity. emit forwards
// outcome events to the root shell; createdShown clears the shell's pending
// created-reservation marker.
func NewCalendarSync(
	log *logrus.Logger,
	reservationGw gateway.ReservationGateway,
	newSurface calendar.Factory,
	selection entity.Selection,
	emit func(entity.Outcome),
	createdShown func(),
) CalendarSync {
	if emit == nil {
		emit = func(entity.Outcome) {}
	}
	if createdShown == nil {
		createdShown = func() {}
	}
	return &calendarSync{
		log:           log,
		reservationGw: reservationGw,
		newSurface:    newSurface,
		selection:     selection,
		emit:          emit,
		createdShown:  createdShown,
	}
}

func (c *calendarSync) Mount(ctx context.Context) error {
	return c.rebuild(ctx)
}

func (c *calendarSync) SetActingEntity(ctx context.Context, selection entity.Selection) error {
	c.mu.Lock()
	c.selection = selection
	c.selectedID = ""
	c.mu.Unlock()
	return c.rebuild(ctx)
}

// rebuild destroys the surface, recreates it, then fetches and renders the
// acting entity's reservations.
func (c *calendarSync) rebuild(ctx context.Context) error {
	c.mu.Lock()
	selection := c.selection
	if selection.IsNone() {
		c.mu.Unlock()
		return ErrNoActingEntity
	}
	c.gen++
	gen := c.gen
	if c.surface != nil {
		c.surface.Destroy()
	}
	surface := c.newSurface()
	c.surface = surface
	surface.OnEventClick(c.handleEventClick)
	c.mu.Unlock()

	var (
		reservations []entity.Reservation
		err          error
	)
	if selection.Kind() == entity.SelectionAmbulance {
		reservations, err = c.reservationGw.ListForAmbulance(ctx, selection.EntityID())
	} else {
		reservations, err = c.reservationGw.ListForPatient(ctx, selection.EntityID())
	}
	if err != nil {
		c.log.Warnf("Failed to list reservations: %+v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A later switch superseded this fetch; drop the stale response.
		return nil
	}
	c.reservations = reservations
	c.surface.Render(converter.ReservationsToEvents(selection, reservations))
	return nil
}

func (c *calendarSync) handleEventClick(reservationID string) {
	if err := c.OpenReservation(reservationID); err != nil {
		c.log.Errorf("Failed to open reservation %s: %+v", reservationID, err)
	}
}

func (c *calendarSync) OpenReservation(reservationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.IsNone() {
		return ErrNoActingEntity
	}
	c.selectedID = reservationID
	return nil
}

func (c *calendarSync) SelectedReservationID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

func (c *calendarSync) ClosePanel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return false
	}
	c.selectedID = ""
	return true
}

func (c *calendarSync) ShowCreated(reservation entity.Reservation) {
	c.mu.Lock()
	if c.surface != nil {
		c.surface.ScrollTo(reservation.Start)
	}
	c.selectedID = reservation.ID
	c.mu.Unlock()
	c.createdShown()
}

func (c *calendarSync) ApplyReservationUpdated(ctx context.Context, reservation entity.Reservation) error {
	c.ClosePanel()
	if err := c.rebuild(ctx); err != nil {
		return err
	}
	c.emit(entity.ReservationUpdated{Reservation: reservation})
	return nil
}

func (c *calendarSync) ApplyReservationDeleted(ctx context.Context, reservationID string) error {
	c.ClosePanel()
	if err := c.rebuild(ctx); err != nil {
		return err
	}
	c.emit(entity.ReservationDeleted{ID: reservationID})
	return nil
}

func (c *calendarSync) Reservations() []entity.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Reservation(nil), c.reservations...)
}

func (c *calendarSync) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface != nil {
		c.surface.Destroy()
		c.surface = nil
	}
}
