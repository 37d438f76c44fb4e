package mol

// Atom is a single atom record. Position is in Angstroms, in the same frame
// as every query point handed to the accessibility grid. Radius is the
// van der Waals radius; zero-radius atoms are legal and never exclude solvent.
type Atom struct {
	Position [3]float64
	Radius   float64
	Charge   float64

	// PQR metadata, blank for XYZR input.
	Serial  int
	Name    string
	Residue string
}

// AtomList is an ordered atom collection. Index positions are stable: the
// accessibility grid and the SASA accumulator refer to atoms by index.
type AtomList []Atom

// MaxRadius returns the largest atom radius in the list, or 0 for an empty list.
func (al AtomList) MaxRadius() float64 {
	max := 0.0
	for i := range al {
		if al[i].Radius > max {
			max = al[i].Radius
		}
	}
	return max
}

// Bounds returns the axis-aligned bounding box over atom centres.
// The box is degenerate (lo == hi) for a single atom and ok is false for an
// empty list.
func (al AtomList) Bounds() (lo, hi [3]float64, ok bool) {
	if len(al) == 0 {
		return lo, hi, false
	}
	lo = al[0].Position
	hi = al[0].Position
	for i := 1; i < len(al); i++ {
		p := al[i].Position
		for ax := 0; ax < 3; ax++ {
			if p[ax] < lo[ax] {
				lo[ax] = p[ax]
			}
			if p[ax] > hi[ax] {
				hi[ax] = p[ax]
			}
		}
	}
	return lo, hi, true
}

// TotalCharge returns the sum of atomic partial charges.
func (al AtomList) TotalCharge() float64 {
	q := 0.0
	for i := range al {
		q += al[i].Charge
	}
	return q
}
