package preference

import "errors"

// Domain errors for preference profiles

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidSwipe  = errors.New("swipe action must be like or dislike")
)
