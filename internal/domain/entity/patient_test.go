package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBMI(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		bmi, err := ComputeBMI(1.75, 70)
		require.NoError(t, err)
		assert.Equal(t, 22.86, bmi)

		bmi, err = ComputeBMI(1.60, 90)
		require.NoError(t, err)
		assert.Equal(t, 35.16, bmi)

		bmi, err = ComputeBMI(2.0, 80)
		require.NoError(t, err)
		assert.Equal(t, 20.0, bmi)
	})

	t.Run("rejects non-positive height", func(t *testing.T) {
		_, err := ComputeBMI(0, 70)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)

		_, err = ComputeBMI(-1.75, 70)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		_, err := ComputeBMI(1.75, 0)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)

		_, err = ComputeBMI(1.75, -70)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	})
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		name    string
		bmi     float64
		verdict string
	}{
		{"well below underweight bound", 10, VerdictUnderweight},
		{"just below normal bound", 18.49, VerdictUnderweight},
		{"normal lower bound inclusive", 18.5, VerdictNormal},
		{"middle of normal band", 22.86, VerdictNormal},
		{"just below overweight bound", 24.99, VerdictNormal},
		{"overweight lower bound inclusive", 25, VerdictOverweight},
		{"just below obesity bound", 29.99, VerdictOverweight},
		{"obesity lower bound inclusive", 30, VerdictObesity},
		{"far above obesity bound", 35.16, VerdictObesity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, VerdictFor(tt.bmi))
		})
	}
}

func TestRecalculate(t *testing.T) {
	t.Run("derives bmi and verdict from height and weight", func(t *testing.T) {
		patient := &Patient{Height: 1.75, Weight: 70}

		require.NoError(t, patient.Recalculate())
		assert.Equal(t, 22.86, patient.BMI)
		assert.Equal(t, VerdictNormal, patient.Verdict)
	})

	t.Run("refreshes stale derived fields", func(t *testing.T) {
		patient := &Patient{Height: 1.60, Weight: 90, BMI: 22.86, Verdict: VerdictNormal}

		require.NoError(t, patient.Recalculate())
		assert.Equal(t, 35.16, patient.BMI)
		assert.Equal(t, VerdictObesity, patient.Verdict)
	})

	t.Run("fails on invalid measurements", func(t *testing.T) {
		patient := &Patient{Height: 0, Weight: 70}
		assert.ErrorIs(t, patient.Recalculate(), ErrInvalidMeasurement)
	})
}
