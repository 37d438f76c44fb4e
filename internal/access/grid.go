package access

import (
	"fmt"
	"math"

	"github.com/natsukium/apbs-pdb2pqr/internal/mol"
)

// Inflation factors for the grid envelope. The spacing inflation covers two
// cell diagonals (2.84 > 2*sqrt(2)) so a query's full interaction radius
// always lies within a single cell lookup; the lower corner shifts by half
// that (1.42 > sqrt(2)).
const (
	spacingInflation = 2.84
	cornerInflation  = 1.42
)

// Grid is a uniform spatial hash over an atom set. Each atom is registered
// in every cell its probe-inflated sphere overlaps, so a point query only
// ever inspects the atom list of its own cell.
//
// The structure is immutable after construction apart from the visited and
// areas scratch arrays. Atom motion requires a full rebuild.
type Grid struct {
	atoms mol.AtomList

	nx, ny, nz int
	hx, hy, hz float64
	lower      [3]float64
	maxProbe   float64

	cells [][]int // per-cell atom indices, length nx*ny*nz

	visited []bool    // per-atom dedup flags, rewritten by SplineAcc
	areas   []float64 // per-atom SASA, written by TotalSASA

	sphere [][3]float64 // unit-sphere quadrature points
}

// New builds a Grid over the bounding box of atoms, inflated to embed the
// interaction envelope of every atom. maxProbe from cfg bounds the probe
// radius of every later query.
func New(atoms mol.AtomList, cfg GridConfig) (*Grid, error) {
	lo, hi, ok := atoms.Bounds()
	if !ok {
		return nil, fmt.Errorf("access: atom list is empty")
	}
	return build(atoms, cfg, lo, hi)
}

// NewFocus builds a Grid over an externally supplied bounding box instead of
// the atom-derived extents, for focusing runs on a sub-region of a larger
// calculation. The maximum atom radius is still scanned from atoms, and
// atoms outside the box are only registered in the cells their inflated
// spheres reach.
func NewFocus(atoms mol.AtomList, cfg GridConfig, lo, hi [3]float64) (*Grid, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("access: atom list is empty")
	}
	for ax := 0; ax < 3; ax++ {
		if hi[ax] < lo[ax] {
			return nil, fmt.Errorf("access: focus box inverted on axis %d: [%g, %g]", ax, lo[ax], hi[ax])
		}
	}
	return build(atoms, cfg, lo, hi)
}

func build(atoms mol.AtomList, cfg GridConfig, lo, hi [3]float64) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("access: %w", err)
	}

	rmax := atoms.MaxRadius()
	inflate := rmax + cfg.MaxProbe

	g := &Grid{
		atoms:    atoms,
		nx:       cfg.NX,
		ny:       cfg.NY,
		nz:       cfg.NZ,
		maxProbe: cfg.MaxProbe,
		visited:  make([]bool, len(atoms)),
		areas:    make([]float64, len(atoms)),
		sphere:   SpherePoints(cfg.SpherePoints),
	}

	g.hx = (hi[0] - lo[0] + spacingInflation*inflate) / float64(g.nx-1)
	g.hy = (hi[1] - lo[1] + spacingInflation*inflate) / float64(g.ny-1)
	g.hz = (hi[2] - lo[2] + spacingInflation*inflate) / float64(g.nz-1)
	g.lower = [3]float64{
		lo[0] - cornerInflation*inflate,
		lo[1] - cornerInflation*inflate,
		lo[2] - cornerInflation*inflate,
	}
	if g.hx <= 0 || g.hy <= 0 || g.hz <= 0 ||
		math.IsInf(g.hx, 0) || math.IsInf(g.hy, 0) || math.IsInf(g.hz, 0) ||
		math.IsNaN(g.hx) || math.IsNaN(g.hy) || math.IsNaN(g.hz) {
		return nil, fmt.Errorf("access: degenerate cell spacing (%g, %g, %g): box and inflation are both zero",
			g.hx, g.hy, g.hz)
	}

	// First pass: count how many atoms land in each cell so the per-cell
	// lists can be allocated exactly once.
	n := g.nx * g.ny * g.nz
	counts := make([]int, n)
	for i := range atoms {
		g.forEachOverlappedCell(&atoms[i], func(ui int) {
			counts[ui]++
		})
	}

	g.cells = make([][]int, n)
	for ui, c := range counts {
		if c > 0 {
			g.cells[ui] = make([]int, 0, c)
		}
	}

	// Second pass: register each atom in every overlapped cell.
	for i := range atoms {
		g.forEachOverlappedCell(&atoms[i], func(ui int) {
			g.cells[ui] = append(g.cells[ui], i)
		})
	}

	return g, nil
}

// forEachOverlappedCell visits the linear index of every cell the atom's
// inflated sphere (radius + maxProbe) can overlap, clamped to the grid. The
// range must cover neighbouring cells, not just the centre cell: an atom near
// a cell boundary has to be visible from queries in the adjacent cell.
func (g *Grid) forEachOverlappedCell(a *mol.Atom, fn func(ui int)) {
	x := a.Position[0] - g.lower[0]
	y := a.Position[1] - g.lower[1]
	z := a.Position[2] - g.lower[2]
	rtot := a.Radius + g.maxProbe

	imin, imax := cellRange(x, rtot, g.hx, g.nx)
	jmin, jmax := cellRange(y, rtot, g.hy, g.ny)
	kmin, kmax := cellRange(z, rtot, g.hz, g.nz)

	for i := imin; i <= imax; i++ {
		for j := jmin; j <= jmax; j++ {
			for k := kmin; k <= kmax; k++ {
				fn(g.nz*g.ny*i + g.nz*j + k)
			}
		}
	}
}

// cellRange returns the inclusive cell index span [min, max] that the
// interval [x-r, x+r] touches along one axis, clamped to [0, dim-1].
func cellRange(x, r, h float64, dim int) (min, max int) {
	min = int(math.Floor((x - r) / h))
	if min < 0 {
		min = 0
	}
	max = int(math.Ceil((x + r) / h))
	if max > dim-1 {
		max = dim - 1
	}
	return min, max
}

// cellIndex maps a point to its cell's linear index. ok is false when the
// point lies outside the grid envelope on any axis; such points are always
// solvent-exposed.
func (g *Grid) cellIndex(p [3]float64) (int, bool) {
	i := int(math.Floor((p[0] - g.lower[0]) / g.hx))
	j := int(math.Floor((p[1] - g.lower[1]) / g.hy))
	k := int(math.Floor((p[2] - g.lower[2]) / g.hz))
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny || k < 0 || k >= g.nz {
		return 0, false
	}
	return g.nz*g.ny*i + g.nz*j + k, true
}

// NumAtoms returns the number of indexed atoms.
func (g *Grid) NumAtoms() int { return len(g.atoms) }

// MaxProbe returns the probe radius ceiling the grid was built for.
func (g *Grid) MaxProbe() float64 { return g.maxProbe }

// Dims returns the hash table dimensions.
func (g *Grid) Dims() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Spacing returns the cell spacings.
func (g *Grid) Spacing() (hx, hy, hz float64) { return g.hx, g.hy, g.hz }

// LowerCorner returns the grid-space origin.
func (g *Grid) LowerCorner() [3]float64 { return g.lower }

// SphereCount returns the number of quadrature points actually generated.
func (g *Grid) SphereCount() int { return len(g.sphere) }

// CellAtoms returns a copy of the atom indices registered in the cell
// containing p, or nil if p is outside the grid. Diagnostic accessor.
func (g *Grid) CellAtoms(p [3]float64) []int {
	ui, ok := g.cellIndex(p)
	if !ok {
		return nil
	}
	out := make([]int, len(g.cells[ui]))
	copy(out, g.cells[ui])
	return out
}
