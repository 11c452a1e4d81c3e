package entity

import "time"

// ExaminationType is the closed set of examinations an ambulance can provide.
type ExaminationType string

const (
	ExaminationCT         ExaminationType = "ct"
	ExaminationMRI        ExaminationType = "mri"
	ExaminationXRay       ExaminationType = "x_ray"
	ExaminationUltrasound ExaminationType = "ultrasound"
	ExaminationBloodTest  ExaminationType = "blood_test"
)

var examinationLabels = map[ExaminationType]string{
	ExaminationCT:         "CT",
	ExaminationMRI:        "MRI",
	ExaminationXRay:       "X-ray",
	ExaminationUltrasound: "Ultrasound",
	ExaminationBloodTest:  "Blood test",
}

// ExaminationTypes returns all examination types in a stable order.
func ExaminationTypes() []ExaminationType {
	return []ExaminationType{
		ExaminationCT,
		ExaminationMRI,
		ExaminationXRay,
		ExaminationUltrasound,
		ExaminationBloodTest,
	}
}

// Label returns the human-readable name of the examination type.
func (t ExaminationType) Label() string {
	if label, ok := examinationLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValid reports whether t is one of the known examination types.
func (t ExaminationType) IsValid() bool {
	_, ok := examinationLabels[t]
	return ok
}

// Examination is a candidate slot returned by slot search. It is ephemeral:
// produced only by the search phase and consumed only by booking, never
// persisted.
type Examination struct {
	Ambulance       Ambulance       `json:"ambulance"`
	ExaminationType ExaminationType `json:"examinationType"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
}

// ExaminationQuery is the slot-search input. Date uses the YYYY-MM-DD form.
type ExaminationQuery struct {
	Date            string          `json:"date" validate:"required,datetime=2006-01-02,futuredate,workday"`
	ExaminationType ExaminationType `json:"examinationType" validate:"required,oneof=ct mri x_ray ultrasound blood_test"`
}
