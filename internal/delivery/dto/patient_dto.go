package dto

// CreatePatientRequest is the payload for registering a new patient.
type CreatePatientRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Birthday  string `json:"birthday" validate:"required,datetime=2006-01-02,pastdate"`
	Sex       string `json:"sex" validate:"required,oneof=male female"`
	Bio       string `json:"bio"`
}

// UpdatePatientRequest is the payload for updating a patient profile.
type UpdatePatientRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Birthday  string `json:"birthday" validate:"required,datetime=2006-01-02,pastdate"`
	Sex       string `json:"sex" validate:"required,oneof=male female"`
	Bio       string `json:"bio"`
}
