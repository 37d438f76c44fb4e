package access

// Method selects which accessibility model a diagnostic evaluation uses.
type Method int

const (
	// MethodMol is the solvent-excluded molecular surface test.
	MethodMol Method = iota
	// MethodIVDW is the probe-inflated van der Waals test.
	MethodIVDW
	// MethodVDW is the hard van der Waals test.
	MethodVDW
	// MethodSpline is the smoothed characteristic function.
	MethodSpline
)

func (m Method) String() string {
	switch m {
	case MethodMol:
		return "mol"
	case MethodIVDW:
		return "ivdw"
	case MethodVDW:
		return "vdw"
	case MethodSpline:
		return "spline"
	}
	return "unknown"
}

// SurfaceValues evaluates the chosen accessibility model at each point,
// for rendering the surface as the solver sees it. probe is the probe or
// inflation radius; win is only consulted by MethodSpline. The result is
// parallel to pts.
func (g *Grid) SurfaceValues(m Method, probe, win float64, pts [][3]float64) []float64 {
	vals := make([]float64, len(pts))
	for i, p := range pts {
		switch m {
		case MethodMol:
			vals[i] = g.MolAcc(p, probe)
		case MethodIVDW:
			vals[i] = g.IVDWAcc(p, probe)
		case MethodVDW:
			vals[i] = g.VDWAcc(p)
		case MethodSpline:
			vals[i] = g.SplineAcc(p, win, probe)
		}
	}
	return vals
}
