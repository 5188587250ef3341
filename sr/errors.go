package sr

import "errors"

// All validation errors wrap one of these; match with errors.Is.
var (
	// ErrInvalidShape is returned when the image is not Rows x Cols x {1,3}
	// or its pixel buffer does not match that shape.
	ErrInvalidShape = errors.New("sr: invalid image shape")

	// ErrInvalidGeometry is returned when 2*PatchSize >= min(Rows, Cols),
	// which leaves no candidate patch locations.
	ErrInvalidGeometry = errors.New("sr: patch size too large for image")

	// ErrParameter is returned for non-positive sizes and counts or upscale <= 1.
	ErrParameter = errors.New("sr: invalid parameter")
)
