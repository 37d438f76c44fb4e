package access

import "fmt"

// NoExclude disables atom exclusion in IVDWAccExclude.
const NoExclude = -1

// Accessibility results are real-valued so callers can fold them straight
// into arithmetic (dielectric maps, kappa maps) without branching.
const (
	Inaccessible = 0.0
	Accessible   = 1.0
)

// VDWAcc reports whether p lies outside the hard van der Waals surface:
// 0.0 when p is strictly inside any atom's radius, 1.0 otherwise. Points
// outside the grid envelope are solvent-exposed by definition.
func (g *Grid) VDWAcc(p [3]float64) float64 {
	ui, ok := g.cellIndex(p)
	if !ok {
		return Accessible
	}
	for _, id := range g.cells[ui] {
		a := &g.atoms[id]
		if distSq(p, a.Position) < a.Radius*a.Radius {
			return Inaccessible
		}
	}
	return Accessible
}

// IVDWAcc reports whether p lies outside the union of probe-inflated atom
// spheres (radius + probe per atom).
func (g *Grid) IVDWAcc(p [3]float64, probe float64) float64 {
	return g.IVDWAccExclude(p, probe, NoExclude)
}

// IVDWAccExclude is IVDWAcc with one atom ignored, so a point generated on
// an atom's own expanded surface is not rejected for touching its parent.
// Pass NoExclude to consider every atom. Zero-radius atoms never exclude.
//
// Panics if probe exceeds the grid's configured maximum: the inflation
// envelope no longer covers the query radius and every answer past that
// point would be silently wrong.
func (g *Grid) IVDWAccExclude(p [3]float64, probe float64, exclude int) float64 {
	if probe > g.maxProbe {
		panic(fmt.Sprintf("access: probe radius %g exceeds grid maximum %g", probe, g.maxProbe))
	}
	ui, ok := g.cellIndex(p)
	if !ok {
		return Accessible
	}
	for _, id := range g.cells[ui] {
		if id == exclude {
			continue
		}
		a := &g.atoms[id]
		if a.Radius <= 0 {
			continue
		}
		rtot := a.Radius + probe
		if distSq(p, a.Position) < rtot*rtot {
			return Inaccessible
		}
	}
	return Accessible
}

// MolAcc classifies p against the solvent-excluded molecular surface traced
// by a probe of the given radius, including reentrant concavities. Three
// stages, cheapest first: outside the inflated surface is accessible, inside
// the van der Waals surface is inaccessible, and in the annulus between the
// two the point is accessible iff a probe sphere centred there touches open
// solvent at any quadrature sample.
func (g *Grid) MolAcc(p [3]float64, probe float64) float64 {
	if g.IVDWAcc(p, probe) == Accessible {
		return Accessible
	}
	if g.VDWAcc(p) == Inaccessible {
		return Inaccessible
	}
	return g.FastMolAcc(p, probe)
}

// FastMolAcc runs only the probe-sphere stage of MolAcc, for callers that
// already know p lies in the annulus between the van der Waals and inflated
// surfaces.
func (g *Grid) FastMolAcc(p [3]float64, probe float64) float64 {
	for _, s := range g.sphere {
		q := [3]float64{
			probe*s[0] + p[0],
			probe*s[1] + p[1],
			probe*s[2] + p[2],
		}
		if g.IVDWAcc(q, probe) == Accessible {
			return Accessible
		}
	}
	// No probe position around p reaches open solvent: buried in a
	// reentrant pocket.
	return Inaccessible
}

func distSq(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}
