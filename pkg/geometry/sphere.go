package geometry

import (
	"math"

	"github.com/avandyck/raydemos/pkg/core"
)

// Sphere represents a sphere with a flat surface color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3 // RGB in [0,1]
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Hit tests if a ray intersects the sphere and returns the smallest strictly
// positive parametric distance along the ray. A miss is a normal outcome, not
// an error. The ray direction must be non-degenerate; the renderer guarantees
// this by normalizing before casting.
func (s Sphere) Hit(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0.
	// The half-b form halves the coefficient; discriminant sign and roots
	// are identical to the full b² − 4ac formulation.
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the closer root; fall back to the farther one when the origin
	// is inside the sphere. Both roots ≤ 0 means the sphere is entirely
	// behind the ray.
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return 0, false
		}
	}

	return root, true
}

// NormalAt returns the unit surface normal at a point on the sphere
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
