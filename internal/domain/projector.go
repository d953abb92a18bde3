package domain

import (
	"github.com/google/uuid"
)

// Projector produces a full projection schedule from a set of assumptions.
// The concrete implementation lives in usecase/projection; consumers (the
// gRPC adapter, the comparison service) depend on this interface.
type Projector interface {
	// Project validates the assumptions and returns the year-by-year
	// schedule. Returns *InvalidAssumptionsError if any input violates
	// its domain constraint; no partial schedule is ever returned.
	Project(assumptions Assumptions) (Schedule, error)
}

// Preset is a named, canonical set of assumptions offered to callers as a
// starting point.
type Preset struct {
	ID          uuid.UUID
	Name        string
	Description string
	Assumptions Assumptions
}

// PresetProvider exposes the canonical presets.
type PresetProvider interface {
	// List returns all presets in a stable order.
	List() []Preset

	// GetByID retrieves a single preset
	GetByID(id uuid.UUID) (*Preset, error)
}
