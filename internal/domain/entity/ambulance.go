package entity

import (
	"regexp"
	"strings"
)

// timeRegex matches 24-hour HH:MM wall-clock times.
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// OfficeHours bounds the times an ambulance accepts reservations.
type OfficeHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// IsValid reports whether both times are well-formed HH:MM values and the
// opening time precedes the closing time.
func (h OfficeHours) IsValid() bool {
	if !timeRegex.MatchString(h.Open) || !timeRegex.MatchString(h.Close) {
		return false
	}
	return strings.Compare(h.Open, h.Close) < 0
}

// Ambulance is a bookable facility. The ID is assigned by the gateway and
// immutable afterwards, as are Name and Address.
type Ambulance struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Address             string            `json:"address"`
	MedicalExaminations []ExaminationType `json:"medicalExaminations"`
	OfficeHours         OfficeHours       `json:"officeHours"`
}

// Provides reports whether the ambulance offers the given examination type.
func (a *Ambulance) Provides(t ExaminationType) bool {
	for _, e := range a.MedicalExaminations {
		if e == t {
			return true
		}
	}
	return false
}
