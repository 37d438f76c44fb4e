// Package monitor renders accessibility diagnostics: planar slices of the
// classification field as PNG heatmaps and per-atom SASA reports as HTML
// charts. Debugging aids only; nothing in the solver path depends on it.
package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/natsukium/apbs-pdb2pqr/internal/access"
)

// SlicePlotter renders z-slices of an accessibility field over a regular
// lattice, showing the surface as the solver sees it.
type SlicePlotter struct {
	Grid   *access.Grid
	Method access.Method
	Probe  float64 // probe or inflation radius
	Window float64 // spline window half-width, ignored by other methods
	Cells  int     // lattice resolution per axis; 0 uses DefaultSliceCells
}

// DefaultSliceCells is the lattice resolution used when Cells is unset.
const DefaultSliceCells = 120

// sliceField adapts sampled classification values to plotter.GridXYZ.
type sliceField struct {
	lo, hi [2]float64
	n      int
	vals   []float64
}

func (f *sliceField) Dims() (c, r int) { return f.n, f.n }
func (f *sliceField) Z(c, r int) float64 {
	return f.vals[r*f.n+c]
}
func (f *sliceField) X(c int) float64 {
	return f.lo[0] + (f.hi[0]-f.lo[0])*float64(c)/float64(f.n-1)
}
func (f *sliceField) Y(r int) float64 {
	return f.lo[1] + (f.hi[1]-f.lo[1])*float64(r)/float64(f.n-1)
}

// SaveZSlice samples the configured method over the lattice
// [lo, hi] x [lo, hi] at height z and writes a heatmap PNG to path.
func (sp *SlicePlotter) SaveZSlice(z float64, lo, hi [2]float64, path string) error {
	n := sp.Cells
	if n < 2 {
		n = DefaultSliceCells
	}
	if hi[0] <= lo[0] || hi[1] <= lo[1] {
		return fmt.Errorf("slice extent inverted: lo %v hi %v", lo, hi)
	}

	pts := make([][3]float64, 0, n*n)
	for r := 0; r < n; r++ {
		y := lo[1] + (hi[1]-lo[1])*float64(r)/float64(n-1)
		for c := 0; c < n; c++ {
			x := lo[0] + (hi[0]-lo[0])*float64(c)/float64(n-1)
			pts = append(pts, [3]float64{x, y, z})
		}
	}
	field := &sliceField{
		lo:   lo,
		hi:   hi,
		n:    n,
		vals: sp.Grid.SurfaceValues(sp.Method, sp.Probe, sp.Window, pts),
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s accessibility, z = %.2f", sp.Method, z)
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "y (Å)"

	hm := plotter.NewHeatMap(field, palette.Heat(12, 1))
	hm.Min = 0
	hm.Max = 1
	p.Add(hm)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save slice plot: %w", err)
	}
	return nil
}

// MakeOutputDir creates a timestamped directory for diagnostic output:
// <baseDir>/<source basename>/<timestamp>.
func MakeOutputDir(baseDir, sourceFile string) (string, error) {
	ts := time.Now().Format("20060102_150405")
	name := "run"
	if sourceFile != "" {
		base := filepath.Base(sourceFile)
		name = base[:len(base)-len(filepath.Ext(base))]
	}
	dir := filepath.Join(baseDir, name, ts)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}
