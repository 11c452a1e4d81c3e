package devgateway

import "ambulance-reservation-console/internal/domain/entity"

// Seed loads a small fixture set so a fresh gateway has something to select.
func Seed(store *Store) error {
	ambulances := []entity.Ambulance{
		{
			Name:    "Central Clinic",
			Address: "12 Main Street",
			MedicalExaminations: []entity.ExaminationType{
				entity.ExaminationCT, entity.ExaminationMRI, entity.ExaminationXRay,
			},
			OfficeHours: entity.OfficeHours{Open: "08:00", Close: "16:00"},
		},
		{
			Name:    "Riverside Diagnostics",
			Address: "4 Harbor Road",
			MedicalExaminations: []entity.ExaminationType{
				entity.ExaminationUltrasound, entity.ExaminationBloodTest,
			},
			OfficeHours: entity.OfficeHours{Open: "09:00", Close: "17:30"},
		},
	}
	for _, a := range ambulances {
		if _, err := store.CreateAmbulance(a); err != nil {
			return err
		}
	}

	patients := []entity.Patient{
		{FirstName: "Anna", LastName: "Kovacs", Birthday: "1987-05-14", Sex: entity.SexFemale},
		{FirstName: "Peter", LastName: "Molnar", Birthday: "1992-11-02", Sex: entity.SexMale, Bio: "allergic to contrast agents"},
	}
	for _, p := range patients {
		if _, err := store.CreatePatient(p); err != nil {
			return err
		}
	}
	return nil
}
