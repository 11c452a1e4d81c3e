package gateway

import (
	"context"
	"net/http"

	"ambulance-reservation-console/internal/converter"
	"ambulance-reservation-console/internal/domain/entity"
	domain "ambulance-reservation-console/internal/domain/gateway"
)

type ambulanceGateway struct {
	client *Client
}

// NewAmbulanceGateway returns the HTTP implementation of the ambulance
// operations.
func NewAmbulanceGateway(client *Client) domain.AmbulanceGateway {
	return &ambulanceGateway{client: client}
}

func (g *ambulanceGateway) List(ctx context.Context) ([]entity.Ambulance, error) {
	var ambulances []entity.Ambulance
	if err := g.client.do(ctx, http.MethodGet, "/api/ambulances", nil, &ambulances); err != nil {
		return nil, err
	}
	return ambulances, nil
}

func (g *ambulanceGateway) GetByID(ctx context.Context, id string) (*entity.Ambulance, error) {
	var ambulance entity.Ambulance
	if err := g.client.do(ctx, http.MethodGet, "/api/ambulances/"+id, nil, &ambulance); err != nil {
		return nil, err
	}
	return &ambulance, nil
}

func (g *ambulanceGateway) Create(ctx context.Context, in entity.Ambulance) (*entity.Ambulance, error) {
	var ambulance entity.Ambulance
	req := converter.AmbulanceToCreateRequest(in)
	if err := g.client.do(ctx, http.MethodPost, "/api/ambulances", req, &ambulance); err != nil {
		return nil, err
	}
	return &ambulance, nil
}

func (g *ambulanceGateway) Update(ctx context.Context, id string, in entity.Ambulance) (*entity.Ambulance, error) {
	var ambulance entity.Ambulance
	req := converter.AmbulanceToUpdateRequest(in)
	if err := g.client.do(ctx, http.MethodPut, "/api/ambulances/"+id, req, &ambulance); err != nil {
		return nil, err
	}
	return &ambulance, nil
}

func (g *ambulanceGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, http.MethodDelete, "/api/ambulances/"+id, nil, nil)
}
