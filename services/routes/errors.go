package routes

import "errors"

// Provider failures. All of them resolve to "no route" for callers; they
// exist so the reason can be logged.
var (
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	ErrProviderStatus      = errors.New("routing provider returned an error status")
	ErrMalformedResponse   = errors.New("routing provider response is malformed")
	ErrNoRoute             = errors.New("routing provider found no route")
	ErrNoGeometry          = errors.New("route has no usable geometry")

	// ErrCircuitOpen means the provider was not contacted at all
	ErrCircuitOpen = errors.New("routing provider circuit is open")
)
