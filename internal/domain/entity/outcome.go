package entity

// Outcome is a typed notification emitted upward when a flow completes. The
// root shell pattern-matches on the concrete type to refresh the directory,
// adjust the selection, push the canonical next route and show a toast.
type Outcome interface {
	outcome()
}

type AmbulanceCreated struct {
	Ambulance Ambulance
}

type AmbulanceUpdated struct {
	Ambulance Ambulance
}

type AmbulanceDeleted struct {
	Name string
}

type PatientCreated struct {
	Patient Patient
}

type PatientUpdated struct {
	Patient Patient
}

type PatientDeleted struct {
	Name string
}

type ReservationCreated struct {
	Reservation Reservation
}

type ReservationUpdated struct {
	Reservation Reservation
}

type ReservationDeleted struct {
	ID string
}

func (AmbulanceCreated) outcome()   {}
func (AmbulanceUpdated) outcome()   {}
func (AmbulanceDeleted) outcome()   {}
func (PatientCreated) outcome()     {}
func (PatientUpdated) outcome()     {}
func (PatientDeleted) outcome()     {}
func (ReservationCreated) outcome() {}
func (ReservationUpdated) outcome() {}
func (ReservationDeleted) outcome() {}
