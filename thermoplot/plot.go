package thermoplot

//Plots of imported NIST temperature series, in the converted per-atom
//units.

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gothermo/nist"
)

//basicPlot sets up a plot with the house style: title, grid, labeled
//temperature axis.
func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func seriesXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

//linePlot draws one curve and saves it as a PNG.
func linePlot(title, ylabel, filename string, xs, ys []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("thermoplot: nothing to plot for %s", filename)
	}
	p := basicPlot(title, ylabel)
	line, points, err := plotter.NewLinePoints(seriesXYs(xs, ys))
	if err != nil {
		return err
	}
	p.Add(line, points)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//EntropyPlot writes <plotname>.png with the entropy of the series in
//kB/atom against temperature.
func EntropyPlot(s *nist.Series, title, plotname string) error {
	return linePlot(title, "Entropy (kB/atom)", fmt.Sprintf("%s.png", plotname),
		s.Temperature, s.EntropyKBAtom())
}

//EnthalpyPlot writes <plotname>.png with the enthalpy of the series in
//meV/atom against temperature.
func EnthalpyPlot(s *nist.Series, title, plotname string) error {
	return linePlot(title, "Enthalpy (meV/atom)", fmt.Sprintf("%s.png", plotname),
		s.Temperature, s.EnthalpyMeVAtom())
}
