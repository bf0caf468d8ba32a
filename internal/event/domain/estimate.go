package domain

import "math"

// EstimateDemand projects the expected drink count for an event from
// guest count, duration and the venue's public rating. The product is
// rejected when it does not land on a usable number.
func EstimateDemand(numGuests int, durationHours, publicRating float64) (float64, error) {
	if numGuests <= 0 {
		return 0, ErrInvalidGuests
	}
	if durationHours <= 0 {
		return 0, ErrInvalidDuration
	}
	if publicRating < 0 {
		return 0, ErrInvalidRating
	}

	estimate := float64(numGuests) * durationHours * publicRating
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		return 0, ErrInvalidEstimate
	}
	return estimate, nil
}
