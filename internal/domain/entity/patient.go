package entity

// Sex as captured on the patient profile.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

var sexLabels = map[Sex]string{
	SexMale:   "Male",
	SexFemale: "Female",
}

// Label returns the human-readable name of the sex value.
func (s Sex) Label() string {
	if label, ok := sexLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether s is one of the known sex values.
func (s Sex) IsValid() bool {
	_, ok := sexLabels[s]
	return ok
}

// Patient is a person reservations are booked for. The ID is assigned by the
// gateway and immutable afterwards. Birthday uses the YYYY-MM-DD form.
type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthday  string `json:"birthday"`
	Sex       Sex    `json:"sex"`
	Bio       string `json:"bio"`
}

// FullName returns the display name used wherever the patient is shown.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
