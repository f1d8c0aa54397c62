package repository

import (
	"context"
	"errors"

	"patient-registry/internal/domain/entity"
	domainRepo "patient-registry/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type postgresPatientRepository struct {
	db *gorm.DB
}

func NewPostgresPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &postgresPatientRepository{db: db}
}

func (r *postgresPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	err := r.db.WithContext(ctx).Create(patient).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainRepo.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *postgresPatientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *postgresPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).Order("id").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *postgresPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *postgresPatientRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{}).Error
}
