package entity

// SelectionKind identifies which identity the session is acting as.
type SelectionKind string

const (
	SelectionNone      SelectionKind = "none"
	SelectionAmbulance SelectionKind = "ambulance"
	SelectionPatient   SelectionKind = "patient"
)

// Selection is the acting identity of the session. At most one of the
// ambulance or patient is set; the fields are unexported so the invariant
// cannot be broken from outside the constructors.
type Selection struct {
	kind      SelectionKind
	ambulance *Ambulance
	patient   *Patient
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{kind: SelectionNone}
}

// AmbulanceSelection returns a selection acting as the given ambulance.
func AmbulanceSelection(a Ambulance) Selection {
	return Selection{kind: SelectionAmbulance, ambulance: &a}
}

// PatientSelection returns a selection acting as the given patient.
func PatientSelection(p Patient) Selection {
	return Selection{kind: SelectionPatient, patient: &p}
}

// Kind returns which identity is acting.
func (s Selection) Kind() SelectionKind { return s.kind }

// IsNone reports whether no identity is acting.
func (s Selection) IsNone() bool { return s.kind == SelectionNone }

// Ambulance returns the acting ambulance, or nil.
func (s Selection) Ambulance() *Ambulance {
	if s.kind != SelectionAmbulance {
		return nil
	}
	return s.ambulance
}

// Patient returns the acting patient, or nil.
func (s Selection) Patient() *Patient {
	if s.kind != SelectionPatient {
		return nil
	}
	return s.patient
}

// EntityID returns the id of the acting entity, or "".
func (s Selection) EntityID() string {
	switch s.kind {
	case SelectionAmbulance:
		return s.ambulance.ID
	case SelectionPatient:
		return s.patient.ID
	}
	return ""
}

// DisplayName returns the name shown for the acting entity: the ambulance
// name, or the patient's full name.
func (s Selection) DisplayName() string {
	switch s.kind {
	case SelectionAmbulance:
		return s.ambulance.Name
	case SelectionPatient:
		return s.patient.FullName()
	}
	return ""
}
