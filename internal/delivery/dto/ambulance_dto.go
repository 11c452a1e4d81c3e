package dto

// OfficeHoursPayload is the wire form of an ambulance's office hours.
type OfficeHoursPayload struct {
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

// CreateAmbulanceRequest is the payload for registering a new ambulance.
type CreateAmbulanceRequest struct {
	Name                string             `json:"name" validate:"required"`
	Address             string             `json:"address" validate:"required"`
	MedicalExaminations []string           `json:"medicalExaminations" validate:"required,min=1,dive,oneof=ct mri x_ray ultrasound blood_test"`
	OfficeHours         OfficeHoursPayload `json:"officeHours" validate:"required"`
}

// UpdateAmbulanceRequest is the payload for updating an ambulance profile.
// Name and Address must match the stored values; they are immutable once the
// id is assigned.
type UpdateAmbulanceRequest struct {
	Name                string             `json:"name" validate:"required"`
	Address             string             `json:"address" validate:"required"`
	MedicalExaminations []string           `json:"medicalExaminations" validate:"required,min=1,dive,oneof=ct mri x_ray ultrasound blood_test"`
	OfficeHours         OfficeHoursPayload `json:"officeHours" validate:"required"`
}
