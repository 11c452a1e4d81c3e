package gateway

import (
	"context"
	"net/http"

	"ambulance-reservation-console/internal/converter"
	"ambulance-reservation-console/internal/delivery/dto"
	"ambulance-reservation-console/internal/domain/entity"
	domain "ambulance-reservation-console/internal/domain/gateway"
)

type patientGateway struct {
	client *Client
}

// NewPatientGateway returns the HTTP implementation of the patient
// operations.
func NewPatientGateway(client *Client) domain.PatientGateway {
	return &patientGateway{client: client}
}

func (g *patientGateway) List(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := g.client.do(ctx, http.MethodGet, "/api/patients", nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (g *patientGateway) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	if err := g.client.do(ctx, http.MethodGet, "/api/patients/"+id, nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (g *patientGateway) Create(ctx context.Context, in entity.Patient) (*entity.Patient, error) {
	var patient entity.Patient
	req := converter.PatientToCreateRequest(in)
	if err := g.client.do(ctx, http.MethodPost, "/api/patients", req, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (g *patientGateway) Update(ctx context.Context, id string, in entity.Patient) (*entity.Patient, error) {
	var patient entity.Patient
	req := converter.PatientToUpdateRequest(in)
	if err := g.client.do(ctx, http.MethodPut, "/api/patients/"+id, req, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (g *patientGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, http.MethodDelete, "/api/patients/"+id, nil, nil)
}

func (g *patientGateway) SearchExaminations(ctx context.Context, patientID string, query entity.ExaminationQuery) ([]entity.Examination, error) {
	req := &dto.ExaminationRequest{
		Date:            query.Date,
		ExaminationType: string(query.ExaminationType),
	}
	var examinations []entity.Examination
	if err := g.client.do(ctx, http.MethodPost, "/api/patients/"+patientID+"/examinations", req, &examinations); err != nil {
		return nil, err
	}
	return examinations, nil
}
