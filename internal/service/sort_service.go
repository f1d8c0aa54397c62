package service

import (
	"sort"

	"patient-registry/internal/domain/entity"
)

// Sort fields and orders accepted by SortPatients.
const (
	SortByHeight = "height"
	SortByWeight = "weight"
	SortByBMI    = "bmi"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

func ValidSortField(field string) bool {
	switch field {
	case SortByHeight, SortByWeight, SortByBMI:
		return true
	}
	return false
}

func ValidSortOrder(order string) bool {
	return order == OrderAsc || order == OrderDesc
}

// SortPatients returns a new slice ordered by the given field and order.
// The sort is stable so ties keep the relative order of the input, and
// the input slice itself is never mutated.
func SortPatients(patients []entity.Patient, sortBy, order string) []entity.Patient {
	sorted := make([]entity.Patient, len(patients))
	copy(sorted, patients)

	key := func(p entity.Patient) float64 {
		switch sortBy {
		case SortByHeight:
			return p.Height
		case SortByWeight:
			return p.Weight
		default:
			return p.BMI
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})

	return sorted
}
