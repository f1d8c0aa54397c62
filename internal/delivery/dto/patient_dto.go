package dto

// CreatePatientRequest carries the fields supplied by the client when
// registering a new patient. The id is assigned by the store.
type CreatePatientRequest struct {
	Name   string  `json:"name" validate:"required"`
	City   string  `json:"city" validate:"required"`
	Age    int     `json:"age" validate:"required,gt=0,lt=120"`
	Gender string  `json:"gender" validate:"required,oneof=male female others"`
	Height float64 `json:"height" validate:"required,gt=0,lte=3"`
	Weight float64 `json:"weight" validate:"required,gt=0,lte=500"`
}

// UpdatePatientRequest carries a partial update. Nil fields are left
// unchanged; BMI and verdict are recomputed after the merge.
type UpdatePatientRequest struct {
	Name   *string  `json:"name" validate:"omitempty,min=1"`
	City   *string  `json:"city" validate:"omitempty,min=1"`
	Age    *int     `json:"age" validate:"omitempty,gt=0,lt=120"`
	Gender *string  `json:"gender" validate:"omitempty,oneof=male female others"`
	Height *float64 `json:"height" validate:"omitempty,gt=0,lte=3"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
}

// PatientResponse represents a patient record in responses, including
// the derived BMI and verdict.
type PatientResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Age     int     `json:"age"`
	Gender  string  `json:"gender"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
	BMI     float64 `json:"bmi"`
	Verdict string  `json:"verdict"`
}
