package converter

import (
	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
)

// AmbulanceToCreateRequest converts an Ambulance entity to the create payload.
func AmbulanceToCreateRequest(ambulance entity.Ambulance) *dto.CreateAmbulanceRequest {
	return &dto.CreateAmbulanceRequest{
		Name:                ambulance.Name,
		Address:             ambulance.Address,
		MedicalExaminations: examinationTypesToStrings(ambulance.MedicalExaminations),
		OfficeHours: dto.OfficeHoursPayload{
			Open:  ambulance.OfficeHours.Open,
			Close: ambulance.OfficeHours.Close,
		},
	}
}

// AmbulanceToUpdateRequest converts an Ambulance entity to the update payload.
func AmbulanceToUpdateRequest(ambulance entity.Ambulance) *dto.UpdateAmbulanceRequest {
	return &dto.UpdateAmbulanceRequest{
		Name:                ambulance.Name,
		Address:             ambulance.Address,
		MedicalExaminations: examinationTypesToStrings(ambulance.MedicalExaminations),
		OfficeHours: dto.OfficeHoursPayload{
			Open:  ambulance.OfficeHours.Open,
			Close: ambulance.OfficeHours.Close,
		},
	}
}

// CreateRequestToAmbulance converts a create payload to an Ambulance entity
// with no id assigned yet.
func CreateRequestToAmbulance(req *dto.CreateAmbulanceRequest) entity.Ambulance {
	return entity.Ambulance{
		Name:                req.Name,
		Address:             req.Address,
		MedicalExaminations: stringsToExaminationTypes(req.MedicalExaminations),
		OfficeHours: entity.OfficeHours{
			Open:  req.OfficeHours.Open,
			Close: req.OfficeHours.Close,
		},
	}
}

func examinationTypesToStrings(types []entity.ExaminationType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func stringsToExaminationTypes(values []string) []entity.ExaminationType {
	out := make([]entity.ExaminationType, len(values))
	for i, v := range values {
		out[i] = entity.ExaminationType(v)
	}
	return out
}
