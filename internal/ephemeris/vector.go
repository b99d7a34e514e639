package ephemeris

import "math"

// vec3 is a cartesian vector in AU.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) sub(o vec3) vec3 { return vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v vec3) norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v vec3) finite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
