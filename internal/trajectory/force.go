package trajectory

import (
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
)

type ForceVectors struct {
	Ax, Ay float64
	Vx, Vy float64
}

// Forces computes the acceleration for one step and splits the current
// velocity into components. On the track the acceleration follows the
// tangent; in free flight it points straight down.
func Forces(vec dynamo.Vector, normal, tangent float64, p Params) ForceVectors {
	normalForce := 1.0
	if vec.Line {
		normalForce = math.Cos(normal)
	}
	a := p.Friction * p.Gravity * normalForce

	var f ForceVectors
	if vec.Line {
		f.Ax = a * math.Cos(tangent)
		f.Ay = a * math.Sin(tangent)
	} else {
		f.Ay = -a
	}
	f.Vx, f.Vy = vec.Velocity()
	return f
}
