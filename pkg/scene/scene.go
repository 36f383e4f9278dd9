package scene

import (
	"errors"
	"fmt"

	"github.com/avandyck/raydemos/pkg/core"
	"github.com/avandyck/raydemos/pkg/geometry"
)

// ErrInvalidGeometry is returned when a scene is constructed from degenerate
// geometry or image dimensions.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Scene contains all the elements needed for rendering. It is constructed
// once, validated, and never mutated afterwards, so renders may read it from
// any number of workers without synchronization.
type Scene struct {
	Camera  core.Vec3         // Camera position in world space
	Light   core.Vec3         // Light direction, not required to be unit length
	Width   int               // Image width in pixels
	Height  int               // Image height in pixels
	Spheres []geometry.Sphere // Ordered; earlier spheres win exact distance ties
}

// NewScene creates a validated scene. Degenerate input (non-positive sphere
// radius or image dimensions) is rejected here rather than propagated into
// the render as division-by-zero artifacts.
func NewScene(camera, light core.Vec3, width, height int, spheres []geometry.Sphere) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d must be positive", ErrInvalidGeometry, width, height)
	}
	for i, s := range spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d has non-positive radius %g", ErrInvalidGeometry, i, s.Radius)
		}
	}

	return &Scene{
		Camera:  camera,
		Light:   light,
		Width:   width,
		Height:  height,
		Spheres: spheres,
	}, nil
}
