// Package calendar defines the capability interface of the opaque calendar
// widget the reservation views feed events into. Rendering and layout are the
// surface's own business; any compliant implementation can be plugged in.
package calendar

import "time"

// Event is one time-blocked entry rendered on the surface.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// Surface is the calendar widget capability. A surface instance is
// exclusively owned by one view: it must be destroyed before a replacement is
// created and destroyed again on unmount, or its internal timers and
// listeners leak.
type Surface interface {
	Render(events []Event)
	Destroy()
	OnEventClick(handler func(reservationID string))
	ScrollTo(instant time.Time)
}

// Factory creates a fresh surface. The calendar sync tears surfaces down and
// recreates them on every refetch, so it needs the constructor, not a single
// instance.
type Factory func() Surface
