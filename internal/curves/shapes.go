package curves

import (
	"math"
	"strconv"

	"github.com/san-kum/coaster/internal/track"
)

func builtin() []Shape {
	return []Shape{
		{
			Name:        "line",
			Description: "slope*x + intercept",
			Defaults:    map[string]float64{"slope": 0, "intercept": 0},
			Build: func(p Params) track.Func {
				m, b := p.get("slope", 0), p.get("intercept", 0)
				return func(x float64) float64 { return m*x + b }
			},
		},
		{
			Name:        "parabola",
			Description: "a*(x-h)^2 + k",
			Defaults:    map[string]float64{"a": 1, "h": 0, "k": 0},
			Build: func(p Params) track.Func {
				a, h, k := p.get("a", 1), p.get("h", 0), p.get("k", 0)
				return func(x float64) float64 {
					d := x - h
					return a*d*d + k
				}
			},
		},
		{
			Name:        "poly",
			Description: "c0 + c1*x + c2*x^2 + ...",
			Defaults:    map[string]float64{},
			Indexed:     "c",
			Build: func(p Params) track.Func {
				coeffs := polyCoefficients(p)
				return func(x float64) float64 {
					y := 0.0
					for i := len(coeffs) - 1; i >= 0; i-- {
						y = y*x + coeffs[i]
					}
					return y
				}
			},
		},
		{
			Name:        "sine",
			Description: "amplitude*sin(frequency*x + phase) + offset",
			Defaults:    map[string]float64{"amplitude": 1, "frequency": 1, "phase": 0, "offset": 0},
			Build: func(p Params) track.Func {
				a, f, ph, off := p.get("amplitude", 1), p.get("frequency", 1), p.get("phase", 0), p.get("offset", 0)
				return func(x float64) float64 { return a*math.Sin(f*x+ph) + off }
			},
		},
		{
			Name:        "cosine",
			Description: "amplitude*cos(frequency*x + phase) + offset",
			Defaults:    map[string]float64{"amplitude": 1, "frequency": 1, "phase": 0, "offset": 0},
			Build: func(p Params) track.Func {
				a, f, ph, off := p.get("amplitude", 1), p.get("frequency", 1), p.get("phase", 0), p.get("offset", 0)
				return func(x float64) float64 { return a*math.Cos(f*x+ph) + off }
			},
		},
		{
			Name:        "exp",
			Description: "amplitude*exp(rate*x) + offset",
			Defaults:    map[string]float64{"amplitude": 1, "rate": -1, "offset": 0},
			Build: func(p Params) track.Func {
				a, r, off := p.get("amplitude", 1), p.get("rate", -1), p.get("offset", 0)
				return func(x float64) float64 { return a*math.Exp(r*x) + off }
			},
		},
		{
			Name:        "bump",
			Description: "height*exp(-((x-center)/width)^2) + base",
			Defaults:    map[string]float64{"height": 1, "center": 0, "width": 1, "base": 0},
			Build: func(p Params) track.Func {
				h, c, w, b := p.get("height", 1), p.get("center", 0), p.get("width", 1), p.get("base", 0)
				if w == 0 {
					w = 1
				}
				return func(x float64) float64 {
					u := (x - c) / w
					return h*math.Exp(-u*u) + b
				}
			},
		},
	}
}

// polyCoefficients orders "c<n>" parameters by n; gaps are zero.
func polyCoefficients(p Params) []float64 {
	maxIdx := -1
	for k := range p {
		if n, err := strconv.Atoi(k[1:]); err == nil && n > maxIdx {
			maxIdx = n
		}
	}
	coeffs := make([]float64, maxIdx+1)
	for k, v := range p {
		if n, err := strconv.Atoi(k[1:]); err == nil {
			coeffs[n] = v
		}
	}
	return coeffs
}
