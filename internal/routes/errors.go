package routes

import "errors"

// Sentinel errors for route documents.
var (
	// ErrEmptyRoutes indicates the route array has no entries.
	ErrEmptyRoutes = errors.New("routes: route array must not be empty")

	// ErrFieldNotFound indicates a configured field alias is not defined on
	// the sampled route node.
	ErrFieldNotFound = errors.New("routes: configured field not found")

	// ErrInvalidDocument indicates the route document could not be parsed or
	// the selection is not an array of objects.
	ErrInvalidDocument = errors.New("routes: invalid route document")
)
