package rides

import "errors"

var (
	ErrRideNotFound  = errors.New("ride not found")
	ErrInvalidSearch = errors.New("invalid ride search")
)

// MaxSearchLength bounds the free-text search
const MaxSearchLength = 64
