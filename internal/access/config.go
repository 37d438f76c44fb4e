package access

import "fmt"

// Default grid parameters. The dimensions trade memory for per-cell occupancy;
// the probe radius is the conventional water probe.
const (
	DefaultGridDim      = 33
	DefaultMaxProbe     = 1.4
	DefaultSpherePoints = 200
	minGridDim          = 3
	accessEpsilon       = 1e-12 // product early-exit threshold for SplineAcc
)

// GridConfig carries the construction parameters for a Grid.
type GridConfig struct {
	NX, NY, NZ   int     // hash table dimensions, each >= 3
	MaxProbe     float64 // largest probe radius any query will use
	SpherePoints int     // requested quadrature point count
}

// DefaultGridConfig returns a GridConfig with the package defaults.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		NX:           DefaultGridDim,
		NY:           DefaultGridDim,
		NZ:           DefaultGridDim,
		MaxProbe:     DefaultMaxProbe,
		SpherePoints: DefaultSpherePoints,
	}
}

// Validate reports the first configuration error, or nil.
func (c GridConfig) Validate() error {
	if c.NX < minGridDim || c.NY < minGridDim || c.NZ < minGridDim {
		return fmt.Errorf("grid dimensions %dx%dx%d: each must be at least %d", c.NX, c.NY, c.NZ, minGridDim)
	}
	if c.MaxProbe < 0 {
		return fmt.Errorf("max probe radius %g: must be non-negative", c.MaxProbe)
	}
	if c.SpherePoints <= 0 {
		return fmt.Errorf("sphere point count %d: must be positive", c.SpherePoints)
	}
	return nil
}
