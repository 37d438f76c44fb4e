package access

import "math"

// AtomSASA returns one atom's contribution to the probe-centred
// solvent-accessible surface area for the given probe radius. Quadrature
// points are placed on the atom's expanded sphere (radius + probe) and each
// is tested against every other atom; the accessible fraction scales the
// full sphere area 4*pi*(radius+probe)^2.
//
// Accuracy follows the quadrature density chosen at grid construction; there
// is no adaptive refinement.
func (g *Grid) AtomSASA(probe float64, atomID int) float64 {
	a := &g.atoms[atomID]
	r := a.Radius + probe

	hits := 0
	for _, s := range g.sphere {
		q := [3]float64{
			r*s[0] + a.Position[0],
			r*s[1] + a.Position[1],
			r*s[2] + a.Position[2],
		}
		if g.IVDWAccExclude(q, probe, atomID) == Accessible {
			hits++
		}
	}
	return float64(hits) / float64(len(g.sphere)) * 4.0 * math.Pi * r * r
}

// TotalSASA returns the molecule's probe-centred solvent-accessible surface
// area and records each atom's contribution in the grid-owned area array
// (see AtomAreas).
func (g *Grid) TotalSASA(probe float64) float64 {
	total := 0.0
	for i := range g.atoms {
		g.areas[i] = g.AtomSASA(probe, i)
		total += g.areas[i]
	}
	return total
}

// AtomAreas returns a copy of the per-atom areas recorded by the last
// TotalSASA call. All zeros before the first call.
func (g *Grid) AtomAreas() []float64 {
	out := make([]float64, len(g.areas))
	copy(out, g.areas)
	return out
}
