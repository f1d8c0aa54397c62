package converter

import (
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:      patient.ID,
		Name:    patient.Name,
		City:    patient.City,
		Age:     patient.Age,
		Gender:  patient.Gender,
		Height:  patient.Height,
		Weight:  patient.Weight,
		BMI:     patient.BMI,
		Verdict: patient.Verdict,
	}
}

// PatientsToResponses converts a slice of entities preserving order
func PatientsToResponses(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToResponse(&patients[i]))
	}
	return responses
}

// PatientsToMap converts a slice of entities to an id-keyed map
func PatientsToMap(patients []entity.Patient) map[string]*dto.PatientResponse {
	responses := make(map[string]*dto.PatientResponse, len(patients))
	for i := range patients {
		responses[patients[i].ID] = PatientToResponse(&patients[i])
	}
	return responses
}
