package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"patient-registry/internal/domain/entity"
	domainRepo "patient-registry/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// patientsHashKey is the redis hash holding all records, one field per
// patient id with a JSON-encoded value.
const patientsHashKey = "patients"

type redisPatientRepository struct {
	client *redis.Client
}

func NewRedisPatientRepository(client *redis.Client) domainRepo.PatientRepository {
	return &redisPatientRepository{client: client}
}

func (r *redisPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	exists, err := r.client.HExists(ctx, patientsHashKey, patient.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check patient existence: %w", err)
	}
	if exists {
		return domainRepo.ErrDuplicateID
	}

	return r.set(ctx, patient)
}

func (r *redisPatientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	raw, err := r.client.HGet(ctx, patientsHashKey, id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	var patient entity.Patient
	if err := json.Unmarshal([]byte(raw), &patient); err != nil {
		return nil, fmt.Errorf("failed to decode patient: %w", err)
	}
	return &patient, nil
}

func (r *redisPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	raw, err := r.client.HGetAll(ctx, patientsHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patients := make([]entity.Patient, 0, len(raw))
	for _, value := range raw {
		var patient entity.Patient
		if err := json.Unmarshal([]byte(value), &patient); err != nil {
			return nil, fmt.Errorf("failed to decode patient: %w", err)
		}
		patients = append(patients, patient)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].ID < patients[j].ID
	})

	return patients, nil
}

func (r *redisPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.set(ctx, patient)
}

func (r *redisPatientRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.HDel(ctx, patientsHashKey, id).Err(); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *redisPatientRepository) set(ctx context.Context, patient *entity.Patient) error {
	raw, err := json.Marshal(patient)
	if err != nil {
		return fmt.Errorf("failed to encode patient: %w", err)
	}

	if err := r.client.HSet(ctx, patientsHashKey, patient.ID, raw).Err(); err != nil {
		return fmt.Errorf("failed to store patient: %w", err)
	}
	return nil
}
