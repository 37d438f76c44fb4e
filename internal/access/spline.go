package access

import (
	"fmt"
	"math"
)

// SplineAcc evaluates the spline-smoothed characteristic function at p: a
// value in [0, 1] formed as the product of per-atom smoothing factors over
// every atom registered in p's cell. win is the smoothing window half-width
// and inflation the radius added to each atom before smoothing.
//
// An atom listed in several overlapping cells contributes once; the per-atom
// visited flags are rewritten on every call, so calls sharing one Grid must
// not interleave.
//
// Panics when the grid's maximum probe radius is below win + inflation: the
// cell lookup could then miss atoms whose smoothed shell reaches p.
func (g *Grid) SplineAcc(p [3]float64, win, inflation float64) float64 {
	if g.maxProbe < win+inflation {
		panic(fmt.Sprintf("access: grid max probe %g insufficient for window %g + inflation %g",
			g.maxProbe, win, inflation))
	}
	ui, ok := g.cellIndex(p)
	if !ok {
		return 1.0
	}

	for _, id := range g.cells[ui] {
		g.visited[id] = false
	}

	value := 1.0
	for _, id := range g.cells[ui] {
		if g.visited[id] {
			continue
		}
		g.visited[id] = true
		value *= g.SplineAccAtom(p, win, inflation, id)
		// A single fully-buried factor zeroes the whole product.
		if value < accessEpsilon {
			return value
		}
	}
	return value
}

// SplineAccAtom returns one atom's factor of the characteristic function:
// 0 inside the inner plateau (d <= a-w), 1 outside the outer plateau
// (d >= a+w), and the C1-continuous cubic 0.75 s^2/w^2 - 0.25 s^3/w^3 with
// s = d - a + w in between, where a is the atom radius plus inflation.
//
// Atoms with radius <= 1.0 do not contribute. The threshold differs from the
// > 0.0 cut used by the gradient and the inflated test; it is preserved from
// the reference solver, where it guards the smoothing kernel against
// sub-Angstrom radii.
func (g *Grid) SplineAccAtom(p [3]float64, win, inflation float64, atomID int) float64 {
	a := &g.atoms[atomID]
	if a.Radius <= 1.0 {
		return 1.0
	}

	arad := a.Radius + inflation
	inner := math.Max(0, arad-win)
	outer := arad + win
	d := math.Sqrt(distSq(p, a.Position))

	switch {
	case d <= inner:
		return 0.0
	case d >= outer:
		return 1.0
	default:
		w2i := 1.0 / (win * win)
		w3i := w2i / win
		s := d - arad + win
		return 0.75*s*s*w2i - 0.25*s*s*s*w3i
	}
}

// SplineAccGradAtom returns the gradient of -log of one atom's characteristic
// factor at p, directed along the atom-to-point unit vector; the solver uses
// it for smooth boundary force terms. The gradient is zero on both plateaus
// and for zero-radius atoms.
func (g *Grid) SplineAccGradAtom(p [3]float64, win, inflation float64, atomID int) [3]float64 {
	var grad [3]float64

	a := &g.atoms[atomID]
	if a.Radius <= 0 {
		return grad
	}

	arad := a.Radius + inflation
	d := math.Sqrt(distSq(p, a.Position))
	if d <= arad-win || d >= arad+win {
		return grad
	}

	w2i := 1.0 / (win * win)
	w3i := w2i / win
	s := d - arad + win
	chi := 0.75*s*s*w2i - 0.25*s*s*s*w3i
	dchi := 1.5*s*w2i - 0.75*s*s*w3i

	scale := -(dchi / chi) / d
	grad[0] = scale * (p[0] - a.Position[0])
	grad[1] = scale * (p[1] - a.Position[1])
	grad[2] = scale * (p[2] - a.Position[2])
	return grad
}
