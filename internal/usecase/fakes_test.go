package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/domain/entity"
)

var errGatewayDown = errors.New("gateway: http request: connection refused")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeAmbulanceGateway struct {
	ambulances []entity.Ambulance
	listErr    error
	listCalls  int
}

func (f *fakeAmbulanceGateway) List(context.Context) ([]entity.Ambulance, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ambulances, nil
}

func (f *fakeAmbulanceGateway) GetByID(_ context.Context, id string) (*entity.Ambulance, error) {
	for _, a := range f.ambulances {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAmbulanceGateway) Create(_ context.Context, a entity.Ambulance) (*entity.Ambulance, error) {
	return &a, nil
}

func (f *fakeAmbulanceGateway) Update(_ context.Context, _ string, a entity.Ambulance) (*entity.Ambulance, error) {
	return &a, nil
}

func (f *fakeAmbulanceGateway) Delete(context.Context, string) error { return nil }

type fakePatientGateway struct {
	patients     []entity.Patient
	listErr      error
	listCalls    int
	examinations []entity.Examination
	searchErr    error
	lastQuery    entity.ExaminationQuery
	searchCalls  int
}

func (f *fakePatientGateway) List(context.Context) ([]entity.Patient, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.patients, nil
}

func (f *fakePatientGateway) GetByID(_ context.Context, id string) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakePatientGateway) Create(_ context.Context, p entity.Patient) (*entity.Patient, error) {
	return &p, nil
}

func (f *fakePatientGateway) Update(_ context.Context, _ string, p entity.Patient) (*entity.Patient, error) {
	return &p, nil
}

func (f *fakePatientGateway) Delete(context.Context, string) error { return nil }

func (f *fakePatientGateway) SearchExaminations(_ context.Context, _ string, query entity.ExaminationQuery) ([]entity.Examination, error) {
	f.searchCalls++
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.examinations, nil
}

type fakeReservationGateway struct {
	reservations []entity.Reservation

	listAmbulanceCalls int
	listPatientCalls   int
	listErr            error

	created   *entity.Reservation
	createErr error
	lastInput entity.ReservationInput

	updated   *entity.Reservation
	updateErr error
	lastWrite entity.Reservation

	deleteErr error
	deleted   []string
}

func (f *fakeReservationGateway) ListForAmbulance(context.Context, string) ([]entity.Reservation, error) {
	f.listAmbulanceCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reservations, nil
}

func (f *fakeReservationGateway) ListForPatient(context.Context, string) ([]entity.Reservation, error) {
	f.listPatientCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reservations, nil
}

func (f *fakeReservationGateway) GetByID(_ context.Context, id string) (*entity.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeReservationGateway) Create(_ context.Context, _ string, input entity.ReservationInput) (*entity.Reservation, error) {
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &entity.Reservation{
		ID:              "created",
		ExaminationType: input.ExaminationType,
		Start:           input.Start,
		End:             input.End,
		Message:         input.Message,
	}, nil
}

func (f *fakeReservationGateway) Update(_ context.Context, _ string, reservation entity.Reservation) (*entity.Reservation, error) {
	f.lastWrite = reservation
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated != nil {
		return f.updated, nil
	}
	return &reservation, nil
}

func (f *fakeReservationGateway) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}
