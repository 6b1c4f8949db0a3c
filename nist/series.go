package nist

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/interp"

	thermo "gothermo"
)

//Series is one imported temperature series for one phase of one
//element, with every column parsed. All slices have the same length
//and are ordered by temperature.
type Series struct {
	Symbol string
	State  string //"Solid" or "Liquid"
	Z      int
	Mass   float64

	Temperature  []float64 //K
	HeatCapacity []float64 //J/mol/K
	Entropy      []float64 //J/mol/K
	GibbsFn      []float64 //J/mol/K
	Enthalpy     []float64 //kJ/mol, relative to 298.15 K
}

//NewSeries parses the numeric rows of a scraped table into a Series.
//Cells that don't parse as numbers are dropped row-wise; a table with
//no numeric rows at all is a BadPage error.
func NewSeries(symbol, state string, t RawTable) (*Series, error) {
	z, err := thermo.ResolveElement(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewSeries")
	}
	s := &Series{Symbol: symbol, State: state, Z: z, Mass: thermo.DefaultWeight(z)}
	type point struct{ vals [5]float64 }
	var pts []point
	for _, sec := range t.Sections {
		for _, r := range sec.Rows {
			var p point
			ok := true
			for i, cell := range r {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					ok = false
					break
				}
				p.vals[i] = v
			}
			if ok {
				pts = append(pts, p)
			}
		}
	}
	if len(pts) == 0 {
		return nil, Error{BadPage, "", []string{"NewSeries"}}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].vals[0] < pts[j].vals[0] })
	for _, p := range pts {
		//phase sections can overlap at transition temperatures
		if n := len(s.Temperature); n > 0 && p.vals[0] <= s.Temperature[n-1] {
			continue
		}
		s.Temperature = append(s.Temperature, p.vals[0])
		s.HeatCapacity = append(s.HeatCapacity, p.vals[1])
		s.Entropy = append(s.Entropy, p.vals[2])
		s.GibbsFn = append(s.GibbsFn, p.vals[3])
		s.Enthalpy = append(s.Enthalpy, p.vals[4])
	}
	return s, nil
}

//Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Temperature) }

//EntropyKBAtom returns the entropy column converted to kB/atom.
func (s *Series) EntropyKBAtom() []float64 {
	out := make([]float64, len(s.Entropy))
	for i, v := range s.Entropy {
		out[i] = thermo.SJMolK2KBAtom(v)
	}
	return out
}

//EnthalpyMeVAtom returns the enthalpy column converted to meV/atom.
func (s *Series) EnthalpyMeVAtom() []float64 {
	out := make([]float64, len(s.Enthalpy))
	for i, v := range s.Enthalpy {
		out[i] = thermo.EKJMol2MeVAtom(v)
	}
	return out
}

//interpolate fits a piecewise-linear interpolant through (T, ys) and
//evaluates it at t. Outside the tabulated range the nearest endpoint
//value is returned.
func (s *Series) interpolate(ys []float64, t float64) (float64, error) {
	if s.Len() < 2 {
		return 0, Error{BadPage + ": series too short to interpolate", "", []string{"interpolate"}}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.Temperature, ys); err != nil {
		return 0, Error{WrongFormat + ": " + err.Error(), "", []string{"interpolate"}}
	}
	return pl.Predict(t), nil
}

//EntropyAt returns the entropy in J/mol/K at temperature t, linearly
//interpolated between tabulated points.
func (s *Series) EntropyAt(t float64) (float64, error) {
	v, err := s.interpolate(s.Entropy, t)
	if err != nil {
		return 0, errDecorate(err, "EntropyAt")
	}
	return v, nil
}

//EnthalpyAt returns the enthalpy in kJ/mol at temperature t, linearly
//interpolated between tabulated points.
func (s *Series) EnthalpyAt(t float64) (float64, error) {
	v, err := s.interpolate(s.Enthalpy, t)
	if err != nil {
		return 0, errDecorate(err, "EnthalpyAt")
	}
	return v, nil
}
