package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"patient-registry/internal/domain/entity"
	domainRepo "patient-registry/internal/domain/repository"
)

// filePatientRepository keeps the whole record set in a flat JSON file
// keyed by patient id. The file is read fully on every operation and
// rewritten wholesale on every mutation. A RWMutex serializes writers;
// readers share a snapshot read.
type filePatientRepository struct {
	path string
	mu   sync.RWMutex
}

func NewFilePatientRepository(path string) domainRepo.PatientRepository {
	return &filePatientRepository{path: path}
}

func (r *filePatientRepository) load() (map[string]entity.Patient, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]entity.Patient{}, nil
		}
		return nil, fmt.Errorf("failed to read patient file: %w", err)
	}

	if len(raw) == 0 {
		return map[string]entity.Patient{}, nil
	}

	var records map[string]entity.Patient
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode patient file: %w", err)
	}

	return records, nil
}

func (r *filePatientRepository) save(records map[string]entity.Patient) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode patient file: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write patient file: %w", err)
	}

	return nil
}

func (r *filePatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	if _, exists := records[patient.ID]; exists {
		return domainRepo.ErrDuplicateID
	}

	records[patient.ID] = *patient
	return r.save(records)
}

func (r *filePatientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	patient, exists := records[id]
	if !exists {
		return nil, nil
	}
	return &patient, nil
}

func (r *filePatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	patients := make([]entity.Patient, 0, len(records))
	for _, patient := range records {
		patients = append(patients, patient)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].ID < patients[j].ID
	})

	return patients, nil
}

func (r *filePatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	records[patient.ID] = *patient
	return r.save(records)
}

func (r *filePatientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	delete(records, id)
	return r.save(records)
}
