// Package curves turns named shapes with numeric parameters into track
// functions, so track files never need an expression parser.
package curves

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/coaster/internal/track"
)

var (
	ErrUnknownShape = errors.New("curves: unknown shape")
	ErrUnknownParam = errors.New("curves: unknown parameter")
	ErrBadParam     = errors.New("curves: parameter must be finite")
)

type Params map[string]float64

func (p Params) get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

type Shape struct {
	Name        string
	Description string
	// Defaults lists every named parameter with its default value.
	Defaults map[string]float64
	// Indexed, when set, accepts any parameter "<Indexed><n>" (poly coefficients).
	Indexed string
	Build   func(p Params) track.Func
}

func (s Shape) accepts(param string) bool {
	if _, ok := s.Defaults[param]; ok {
		return true
	}
	if s.Indexed == "" || !strings.HasPrefix(param, s.Indexed) {
		return false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(param, s.Indexed))
	return err == nil && n >= 0
}

// ParamNames lists the named parameters in a stable order.
func (s Shape) ParamNames() []string {
	names := make([]string, 0, len(s.Defaults))
	for k := range s.Defaults {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type Registry struct {
	shapes map[string]Shape
}

func NewRegistry() *Registry {
	r := &Registry{shapes: make(map[string]Shape)}
	for _, s := range builtin() {
		r.Register(s)
	}
	return r
}

func (r *Registry) Register(s Shape) {
	r.shapes[s.Name] = s
}

func (r *Registry) Get(name string) (Shape, error) {
	s, ok := r.shapes[name]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownShape, name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves a shape and its parameters into a curve.
func (r *Registry) Build(name string, p Params) (track.Func, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	for k, v := range p {
		if !s.accepts(k) {
			return nil, fmt.Errorf("%w: %s for shape %s", ErrUnknownParam, k, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrBadParam, k, v)
		}
	}
	return s.Build(p), nil
}
