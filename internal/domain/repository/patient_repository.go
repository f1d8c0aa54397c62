package repository

import (
	"context"
	"errors"

	"patient-registry/internal/domain/entity"
)

// ErrDuplicateID is returned by Create when a record with the same id
// already exists in the store.
var ErrDuplicateID = errors.New("patient id already exists")

// PatientRepository abstracts the record store so the backend can be
// swapped (flat file, postgres, redis) without touching callers.
//
// FindByID returns (nil, nil) when no record exists for the id.
// FindAll returns records ordered by id so listings are deterministic.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id string) error
}
