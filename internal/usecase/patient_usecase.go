package usecase

import (
	"context"
	"errors"

	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
	"patient-registry/internal/domain/repository"
	"patient-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrInvalidSortField = errors.New("invalid sort field, select from height, weight or bmi")
	ErrInvalidSortOrder = errors.New("invalid sort order, select between asc and desc")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (map[string]*dto.PatientResponse, error)
	GetSortedPatients(ctx context.Context, sortBy, order string) ([]*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// CreatePatient assigns a fresh id, derives BMI and verdict, and persists
// the record. Ids are never reused: they are random UUIDs, not counters.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		ID:     uuid.NewString(),
		Name:   req.Name,
		City:   req.City,
		Age:    req.Age,
		Gender: req.Gender,
		Height: req.Height,
		Weight: req.Weight,
	}

	if err := patient.Recalculate(); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (map[string]*dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToMap(patients), nil
}

// GetSortedPatients validates the sort parameters before touching the
// store, then returns a freshly ordered listing. Ties keep the id order
// of the underlying listing.
func (u *patientUsecase) GetSortedPatients(ctx context.Context, sortBy, order string) ([]*dto.PatientResponse, error) {
	if !service.ValidSortField(sortBy) {
		return nil, ErrInvalidSortField
	}
	if !service.ValidSortOrder(order) {
		return nil, ErrInvalidSortOrder
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	sorted := service.SortPatients(patients, sortBy, order)
	return converter.PatientsToResponses(sorted), nil
}

// UpdatePatient merges the supplied fields into the existing record and
// recomputes BMI and verdict before persisting. The id never changes.
func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.City != nil {
		patient.City = *req.City
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Height != nil {
		patient.Height = *req.Height
	}
	if req.Weight != nil {
		patient.Weight = *req.Weight
	}

	if err := patient.Recalculate(); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	return nil
}
