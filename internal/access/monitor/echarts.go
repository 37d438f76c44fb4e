package monitor

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/natsukium/apbs-pdb2pqr/internal/mol"
)

// WriteSASAReport renders a per-atom SASA bar chart (HTML) to w. Atom labels
// use the PQR serial and name where present, falling back to the index.
func WriteSASAReport(w io.Writer, title string, atoms mol.AtomList, areas []float64, probe float64) error {
	if len(atoms) != len(areas) {
		return fmt.Errorf("sasa report: %d atoms but %d areas", len(atoms), len(areas))
	}

	total := 0.0
	labels := make([]string, len(atoms))
	data := make([]opts.BarData, len(areas))
	for i := range atoms {
		a := &atoms[i]
		if a.Name != "" {
			labels[i] = fmt.Sprintf("%d %s", a.Serial, a.Name)
		} else {
			labels[i] = fmt.Sprintf("%d", i)
		}
		data[i] = opts.BarData{Value: areas[i]}
		total += areas[i]
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("probe %.2f Å, total %.2f Å²", probe, total),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "atom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "area (Å²)"}),
	)
	bar.SetXAxis(labels).AddSeries("SASA", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render sasa report: %w", err)
	}
	return nil
}
