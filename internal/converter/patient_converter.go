package converter

import (
	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
)

// PatientToCreateRequest converts a Patient entity to the create payload.
func PatientToCreateRequest(patient entity.Patient) *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Birthday:  patient.Birthday,
		Sex:       string(patient.Sex),
		Bio:       patient.Bio,
	}
}

// PatientToUpdateRequest converts a Patient entity to the update payload.
func PatientToUpdateRequest(patient entity.Patient) *dto.UpdatePatientRequest {
	return &dto.UpdatePatientRequest{
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Birthday:  patient.Birthday,
		Sex:       string(patient.Sex),
		Bio:       patient.Bio,
	}
}

// CreateRequestToPatient converts a create payload to a Patient entity with
// no id assigned yet.
func CreateRequestToPatient(req *dto.CreatePatientRequest) entity.Patient {
	return entity.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  req.Birthday,
		Sex:       entity.Sex(req.Sex),
		Bio:       req.Bio,
	}
}
