package usecase_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"patient-registry/internal/delivery/dto"
	"patient-registry/internal/domain/entity"
	"patient-registry/internal/repository"
	"patient-registry/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) usecase.PatientUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := repository.NewFilePatientRepository(filepath.Join(t.TempDir(), "patients.json"))
	return usecase.NewPatientUsecase(log, repo)
}

func createRequest() *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		Name:   "Ana",
		City:   "Porto",
		Age:    34,
		Gender: entity.GenderFemale,
		Height: 1.75,
		Weight: 70,
	}
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t)

	created, err := uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)

	t.Run("assigns an id and derives bmi and verdict", func(t *testing.T) {
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 22.86, created.BMI)
		assert.Equal(t, entity.VerdictNormal, created.Verdict)
	})

	t.Run("get round-trips the created record", func(t *testing.T) {
		found, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("records get distinct ids", func(t *testing.T) {
		other, err := uc.CreatePatient(ctx, createRequest())
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, other.ID)
	})
}

func TestGetPatient_NotFound(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.GetPatient(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}

func TestGetAllPatients(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t)

	first, err := uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)
	second, err := uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)

	patients, err := uc.GetAllPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, first, patients[first.ID])
	assert.Equal(t, second, patients[second.ID])
}

func TestUpdatePatient(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t)

	created, err := uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)

	t.Run("new weight recomputes bmi and verdict", func(t *testing.T) {
		weight := 90.0
		height := 1.60
		updated, err := uc.UpdatePatient(ctx, created.ID, &dto.UpdatePatientRequest{
			Weight: &weight,
			Height: &height,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 35.16, updated.BMI)
		assert.Equal(t, entity.VerdictObesity, updated.Verdict)
	})

	t.Run("update without measurements leaves bmi and verdict unchanged", func(t *testing.T) {
		before, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)

		city := "Lisbon"
		updated, err := uc.UpdatePatient(ctx, created.ID, &dto.UpdatePatientRequest{City: &city})
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", updated.City)
		assert.Equal(t, before.BMI, updated.BMI)
		assert.Equal(t, before.Verdict, updated.Verdict)
	})

	t.Run("unknown id", func(t *testing.T) {
		city := "Lisbon"
		_, err := uc.UpdatePatient(ctx, "missing", &dto.UpdatePatientRequest{City: &city})
		assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
	})
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t)

	created, err := uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeletePatient(ctx, created.ID))

	t.Run("get after delete", func(t *testing.T) {
		_, err := uc.GetPatient(ctx, created.ID)
		assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		assert.ErrorIs(t, uc.DeletePatient(ctx, created.ID), usecase.ErrPatientNotFound)
	})
}

func TestGetSortedPatients(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t)

	heavy := createRequest()
	heavy.Height = 1.60
	heavy.Weight = 90
	_, err := uc.CreatePatient(ctx, heavy)
	require.NoError(t, err)

	light := createRequest()
	light.Height = 1.80
	light.Weight = 60
	_, err = uc.CreatePatient(ctx, light)
	require.NoError(t, err)

	_, err = uc.CreatePatient(ctx, createRequest())
	require.NoError(t, err)

	t.Run("descending bmi is non-increasing", func(t *testing.T) {
		sorted, err := uc.GetSortedPatients(ctx, "bmi", "desc")
		require.NoError(t, err)
		require.Len(t, sorted, 3)
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].BMI, sorted[i].BMI)
		}
	})

	t.Run("ascending height", func(t *testing.T) {
		sorted, err := uc.GetSortedPatients(ctx, "height", "asc")
		require.NoError(t, err)
		require.Len(t, sorted, 3)
		assert.Equal(t, 1.60, sorted[0].Height)
		assert.Equal(t, 1.80, sorted[2].Height)
	})

	t.Run("invalid sort field", func(t *testing.T) {
		_, err := uc.GetSortedPatients(ctx, "age", "asc")
		assert.ErrorIs(t, err, usecase.ErrInvalidSortField)
	})

	t.Run("invalid sort order", func(t *testing.T) {
		_, err := uc.GetSortedPatients(ctx, "bmi", "sideways")
		assert.ErrorIs(t, err, usecase.ErrInvalidSortOrder)
	})
}
