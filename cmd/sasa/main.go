// Package main provides the sasa command: it reads a PQR or XYZR atom file,
// builds an accessibility grid, integrates solvent-accessible surface area,
// and optionally persists the run, renders a per-atom HTML report, or saves
// a slice heatmap of the chosen accessibility surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/natsukium/apbs-pdb2pqr/internal/access"
	"github.com/natsukium/apbs-pdb2pqr/internal/access/monitor"
	sqlitestore "github.com/natsukium/apbs-pdb2pqr/internal/access/storage/sqlite"
	"github.com/natsukium/apbs-pdb2pqr/internal/mol"
)

// Config holds the command configuration.
type Config struct {
	File     string
	Probe    float64
	Dims     [3]int
	Sphere   int
	DBPath   string
	Report   string
	SlicePNG string
	SliceZ   float64
	Method   string
	Window   float64
	Verbose  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("sasa: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("sasa: %v", err)
	}
}

func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("sasa", flag.ContinueOnError)

	var dims string
	fs.StringVar(&cfg.File, "file", "", "input atom file (.pqr or xyzr)")
	fs.Float64Var(&cfg.Probe, "probe", access.DefaultMaxProbe, "solvent probe radius in Angstroms")
	fs.StringVar(&dims, "dime", "", "grid dimensions as nx,ny,nz (default 33,33,33)")
	fs.IntVar(&cfg.Sphere, "sphere", access.DefaultSpherePoints, "requested quadrature point count")
	fs.StringVar(&cfg.DBPath, "db", "", "optional SQLite database to record the run")
	fs.StringVar(&cfg.Report, "report", "", "optional per-atom SASA HTML report path")
	fs.StringVar(&cfg.SlicePNG, "slice", "", "optional accessibility slice heatmap PNG path")
	fs.Float64Var(&cfg.SliceZ, "z", 0, "z height for the slice heatmap")
	fs.StringVar(&cfg.Method, "method", "mol", "slice accessibility method: mol, ivdw, vdw, spline")
	fs.Float64Var(&cfg.Window, "win", 0.3, "spline window half-width (spline method only)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("-file is required")
	}

	var err error
	cfg.Dims, err = parseDims(dims)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDims parses "nx,ny,nz"; an empty string yields the default dimensions
// and a single value is used for all three axes.
func parseDims(s string) ([3]int, error) {
	d := [3]int{access.DefaultGridDim, access.DefaultGridDim, access.DefaultGridDim}
	if s == "" {
		return d, nil
	}
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return d, fmt.Errorf("parse -dime %q: %w", s, err)
		}
		return [3]int{n, n, n}, nil
	case 3:
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return d, fmt.Errorf("parse -dime %q: %w", s, err)
			}
			d[i] = n
		}
		return d, nil
	default:
		return d, fmt.Errorf("parse -dime %q: want nx,ny,nz", s)
	}
}

func parseMethod(s string) (access.Method, error) {
	switch s {
	case "mol":
		return access.MethodMol, nil
	case "ivdw":
		return access.MethodIVDW, nil
	case "vdw":
		return access.MethodVDW, nil
	case "spline":
		return access.MethodSpline, nil
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

func run(cfg *Config) error {
	method, err := parseMethod(cfg.Method)
	if err != nil {
		return err
	}

	atoms, err := mol.LoadFile(cfg.File)
	if err != nil {
		return err
	}
	log.Printf("loaded %d atoms from %s (max radius %.2f, net charge %+.2f)",
		len(atoms), cfg.File, atoms.MaxRadius(), atoms.TotalCharge())

	gridCfg := access.GridConfig{
		NX:           cfg.Dims[0],
		NY:           cfg.Dims[1],
		NZ:           cfg.Dims[2],
		MaxProbe:     cfg.Probe,
		SpherePoints: cfg.Sphere,
	}
	if method == access.MethodSpline && gridCfg.MaxProbe < cfg.Window+cfg.Probe {
		gridCfg.MaxProbe = cfg.Window + cfg.Probe
	}
	g, err := access.New(atoms, gridCfg)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		hx, hy, hz := g.Spacing()
		lower := g.LowerCorner()
		log.Printf("grid %dx%dx%d, spacing (%.3f, %.3f, %.3f), lower corner (%.2f, %.2f, %.2f)",
			cfg.Dims[0], cfg.Dims[1], cfg.Dims[2], hx, hy, hz, lower[0], lower[1], lower[2])
		log.Printf("quadrature: %d points (requested %d)", g.SphereCount(), cfg.Sphere)
	}

	total := g.TotalSASA(cfg.Probe)
	areas := g.AtomAreas()
	log.Printf("total SASA: %.3f Å² (probe %.2f Å)", total, cfg.Probe)
	printSummary(areas)

	if cfg.DBPath != "" {
		if err := storeRun(cfg, g, total, areas); err != nil {
			return err
		}
	}
	if cfg.Report != "" {
		if err := writeReport(cfg, atoms, areas); err != nil {
			return err
		}
	}
	if cfg.SlicePNG != "" {
		if err := writeSlice(cfg, g, method); err != nil {
			return err
		}
	}
	return nil
}

// printSummary logs distribution statistics of the per-atom areas.
func printSummary(areas []float64) {
	if len(areas) == 0 {
		return
	}
	sorted := append([]float64(nil), areas...)
	sort.Float64s(sorted)

	mean := stat.Mean(sorted, nil)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)

	buried := 0
	for _, a := range sorted {
		if a == 0 {
			buried++
		}
	}

	log.Printf("per-atom area: mean %.3f, median %.3f, p95 %.3f, min %.3f, max %.3f Å²",
		mean, median, p95, sorted[0], sorted[len(sorted)-1])
	log.Printf("buried atoms (zero area): %d of %d", buried, len(sorted))
}

func storeRun(cfg *Config, g *access.Grid, total float64, areas []float64) error {
	db, err := sqlitestore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	run := &sqlitestore.Run{
		Source:       cfg.File,
		ProbeRadius:  cfg.Probe,
		SpherePoints: g.SphereCount(),
		TotalArea:    total,
	}
	if err := sqlitestore.NewRunStore(db).Insert(run, areas); err != nil {
		return err
	}
	log.Printf("recorded run %s in %s", run.RunID, cfg.DBPath)
	return nil
}

func writeReport(cfg *Config, atoms mol.AtomList, areas []float64) error {
	f, err := os.Create(cfg.Report)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := monitor.WriteSASAReport(f, cfg.File, atoms, areas, cfg.Probe); err != nil {
		return err
	}
	log.Printf("wrote SASA report to %s", cfg.Report)
	return nil
}

func writeSlice(cfg *Config, g *access.Grid, method access.Method) error {
	// Cover the grid envelope in x and y at the requested z.
	lower := g.LowerCorner()
	hx, hy, _ := g.Spacing()
	nx, ny, _ := g.Dims()
	lo := [2]float64{lower[0], lower[1]}
	hi := [2]float64{lower[0] + hx*float64(nx-1), lower[1] + hy*float64(ny-1)}

	sp := &monitor.SlicePlotter{
		Grid:   g,
		Method: method,
		Probe:  cfg.Probe,
		Window: cfg.Window,
	}
	if err := sp.SaveZSlice(cfg.SliceZ, lo, hi, cfg.SlicePNG); err != nil {
		return err
	}
	log.Printf("wrote %s slice at z=%.2f to %s", method, cfg.SliceZ, cfg.SlicePNG)
	return nil
}
