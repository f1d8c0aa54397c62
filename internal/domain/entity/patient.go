package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Patient represents a single patient record. BMI and Verdict are derived
// from Height and Weight and are recomputed on every mutation.
type Patient struct {
	ID      string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	City    string  `gorm:"type:varchar(255);not null" json:"city"`
	Age     int     `gorm:"not null" json:"age"`
	Gender  string  `gorm:"type:varchar(10);not null" json:"gender"`
	Height  float64 `gorm:"type:numeric(5,2);not null" json:"height"`
	Weight  float64 `gorm:"type:numeric(6,2);not null" json:"weight"`
	BMI     float64 `gorm:"type:numeric(6,2);not null" json:"bmi"`
	Verdict string  `gorm:"type:varchar(16);not null" json:"verdict"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

// Verdict constants
const (
	VerdictUnderweight = "Underweight"
	VerdictNormal      = "Normal"
	VerdictOverweight  = "Overweight"
	VerdictObesity     = "Obesity"
)

var ErrInvalidMeasurement = errors.New("height and weight must be greater than zero")

// ComputeBMI returns weight(kg) / height(m)^2 rounded to 2 decimal places.
func ComputeBMI(height, weight float64) (float64, error) {
	if height <= 0 || weight <= 0 {
		return 0, ErrInvalidMeasurement
	}

	h := decimal.NewFromFloat(height)
	bmi := decimal.NewFromFloat(weight).Div(h.Mul(h)).Round(2)

	value, _ := bmi.Float64()
	return value, nil
}

// VerdictFor classifies a BMI value into a health verdict. Each band
// includes its lower bound and excludes its upper bound.
func VerdictFor(bmi float64) string {
	switch {
	case bmi < 18.5:
		return VerdictUnderweight
	case bmi < 25:
		return VerdictNormal
	case bmi < 30:
		return VerdictOverweight
	default:
		return VerdictObesity
	}
}

// Recalculate refreshes the derived BMI and Verdict fields from the
// current Height and Weight.
func (p *Patient) Recalculate() error {
	bmi, err := ComputeBMI(p.Height, p.Weight)
	if err != nil {
		return err
	}

	p.BMI = bmi
	p.Verdict = VerdictFor(bmi)
	return nil
}
