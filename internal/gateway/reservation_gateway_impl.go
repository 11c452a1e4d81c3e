package gateway

import (
	"context"
	"net/http"

	"ambulance-reservation-console/internal/converter"
	"ambulance-reservation-console/internal/domain/entity"
	domain "ambulance-reservation-console/internal/domain/gateway"
)

type reservationGateway struct {
	client *Client
}

// NewReservationGateway returns the HTTP implementation of the reservation
// operations.
func NewReservationGateway(client *Client) domain.ReservationGateway {
	return &reservationGateway{client: client}
}

func (g *reservationGateway) ListForAmbulance(ctx context.Context, ambulanceID string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	if err := g.client.do(ctx, http.MethodGet, "/api/ambulances/"+ambulanceID+"/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (g *reservationGateway) ListForPatient(ctx context.Context, patientID string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	if err := g.client.do(ctx, http.MethodGet, "/api/patients/"+patientID+"/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (g *reservationGateway) GetByID(ctx context.Context, id string) (*entity.Reservation, error) {
	var reservation entity.Reservation
	if err := g.client.do(ctx, http.MethodGet, "/api/reservations/"+id, nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (g *reservationGateway) Create(ctx context.Context, patientID string, input entity.ReservationInput) (*entity.Reservation, error) {
	var reservation entity.Reservation
	req := converter.InputToCreateRequest(input)
	if err := g.client.do(ctx, http.MethodPost, "/api/patients/"+patientID+"/reservations", req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (g *reservationGateway) Update(ctx context.Context, id string, in entity.Reservation) (*entity.Reservation, error) {
	var reservation entity.Reservation
	req := converter.ReservationToUpdateRequest(in)
	if err := g.client.do(ctx, http.MethodPut, "/api/reservations/"+id, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (g *reservationGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, http.MethodDelete, "/api/reservations/"+id, nil, nil)
}
