// Package metrics summarizes a recorded ride.
package metrics

import (
	"math"

	"github.com/san-kum/coaster/internal/trajectory"
)

type Metric interface {
	Name() string
	Observe(s trajectory.Sample)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every run.
func Default(gravity float64) []Metric {
	return []Metric{
		NewEnergyDrift(gravity),
		NewMaxSpeed(),
		NewAirtime(),
		NewDistance(),
		NewDrop(),
	}
}

// Evaluate feeds every sample to every metric and collects the results.
func Evaluate(samples []trajectory.Sample, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, s := range samples {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// EnergyDrift tracks the largest change in specific mechanical energy
// (v²/2 + g·y) relative to the first sample, divided by the track's height
// scale so a ride starting at y=0 still yields a finite ratio.
type EnergyDrift struct {
	gravity  float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(gravity float64) *EnergyDrift {
	return &EnergyDrift{gravity: gravity}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s trajectory.Sample) {
	energy := SpecificEnergy(s, e.gravity)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	scale := math.Max(math.Abs(e.initial), 1)
	e.maxDrift = math.Max(e.maxDrift, math.Abs(energy-e.initial)/scale)
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial, e.maxDrift, e.samples = 0, 0, 0
}

// SpecificEnergy is kinetic plus potential energy per unit mass.
func SpecificEnergy(s trajectory.Sample, gravity float64) float64 {
	v := s.Vector.Magnitude
	return 0.5*v*v + gravity*s.Vector.Origin.Y
}

type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }
func (m *MaxSpeed) Observe(s trajectory.Sample) {
	m.max = math.Max(m.max, s.Vector.Magnitude)
}
func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// Airtime sums the time between consecutive samples spent off the track.
type Airtime struct {
	prev    *trajectory.Sample
	seconds float64
}

func NewAirtime() *Airtime { return &Airtime{} }

func (a *Airtime) Name() string { return "airtime" }

func (a *Airtime) Observe(s trajectory.Sample) {
	if a.prev != nil && !s.Vector.Line {
		a.seconds += s.Time - a.prev.Time
	}
	a.prev = &s
}

func (a *Airtime) Value() float64 { return a.seconds }

func (a *Airtime) Reset() {
	a.prev, a.seconds = nil, 0
}

// Distance is the length of the sampled path.
type Distance struct {
	prev  *trajectory.Sample
	total float64
}

func NewDistance() *Distance { return &Distance{} }

func (d *Distance) Name() string { return "distance" }

func (d *Distance) Observe(s trajectory.Sample) {
	if d.prev != nil {
		p, q := d.prev.Vector.Origin, s.Vector.Origin
		d.total += math.Hypot(q.X-p.X, q.Y-p.Y)
	}
	d.prev = &s
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.prev, d.total = nil, 0
}

// Drop is the difference between the highest and lowest sampled heights.
type Drop struct {
	lo, hi float64
	seen   bool
}

func NewDrop() *Drop { return &Drop{} }

func (d *Drop) Name() string { return "drop" }

func (d *Drop) Observe(s trajectory.Sample) {
	y := s.Vector.Origin.Y
	if !d.seen {
		d.lo, d.hi, d.seen = y, y, true
		return
	}
	d.lo = math.Min(d.lo, y)
	d.hi = math.Max(d.hi, y)
}

func (d *Drop) Value() float64 { return d.hi - d.lo }

func (d *Drop) Reset() {
	d.lo, d.hi, d.seen = 0, 0, false
}
