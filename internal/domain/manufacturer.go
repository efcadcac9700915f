package domain

import (
	"fmt"
	"strings"
)

// Validation errors for Manufacturer
var (
	ErrEmptyManufacturerName    = fmt.Errorf("%w: manufacturer name cannot be empty", ErrValidation)
	ErrEmptyManufacturerCountry = fmt.Errorf("%w: manufacturer country cannot be empty", ErrValidation)
)

// Manufacturer is a vehicle manufacturer record.
//
// ID is assigned by storage when the manufacturer is created and never changes
// afterwards. A zero ID means the record has not been persisted yet.
type Manufacturer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// NewManufacturer creates an unsaved Manufacturer with the given name and country.
// Returns an error if validation fails.
func NewManufacturer(name, country string) (*Manufacturer, error) {
	m := &Manufacturer{
		Name:    name,
		Country: country,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks that the name and country are present.
// The ID is not checked; use HasID for that.
func (m *Manufacturer) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyManufacturerName
	}

	if strings.TrimSpace(m.Country) == "" {
		return ErrEmptyManufacturerCountry
	}

	return nil
}

// HasID reports whether storage has assigned an ID to the manufacturer.
func (m *Manufacturer) HasID() bool {
	return m.ID != 0
}

// String returns a short human-readable form used in log and error messages.
func (m *Manufacturer) String() string {
	if m == nil {
		return "Manufacturer<nil>"
	}
	return fmt.Sprintf("Manufacturer{id=%d, name=%q, country=%q}", m.ID, m.Name, m.Country)
}
