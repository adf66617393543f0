package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CapturedPhoto is the typed value handed over by the capture collaborator
// (camera + GPS UI). It is validated once here, at the boundary, so that
// malformed input never reaches the proof manager.
type CapturedPhoto struct {
	PhotoURI  string    `json:"photoUri" validate:"required"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// Validate checks the capture payload: the photo handle must be present, the
// capture time must be set, and the coordinates must be a plausible GPS fix.
func (c CapturedPhoto) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid capture: %w", err)
	}
	if err := validate.Var(c.Location.Latitude, "gte=-90,lte=90"); err != nil {
		return fmt.Errorf("invalid latitude %v: %w", c.Location.Latitude, err)
	}
	if err := validate.Var(c.Location.Longitude, "gte=-180,lte=180"); err != nil {
		return fmt.Errorf("invalid longitude %v: %w", c.Location.Longitude, err)
	}
	return nil
}
