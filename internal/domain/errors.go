// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrValidation is returned when a domain entity fails validation.
// It is wrapped by the entity-specific errors, e.g. ErrEmptyManufacturerName.
var ErrValidation = errors.New("validation failed")
