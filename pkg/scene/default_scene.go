package scene

import (
	"github.com/avandyck/raydemos/pkg/core"
	"github.com/avandyck/raydemos/pkg/geometry"
)

// NewSingleSphereScene creates the classic demo scene: one unit sphere at the
// origin viewed from (0,0,-5), lit from behind the camera.
func NewSingleSphereScene(width, height int) (*Scene, error) {
	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 0, 0)),
	}

	return NewScene(
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 0, -1),
		width, height,
		spheres,
	)
}

// NewTriadScene creates a three-sphere scene with partially overlapping
// silhouettes, useful for exercising nearest-hit resolution.
func NewTriadScene(width, height int) (*Scene, error) {
	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0.65, 0.25, 0.2)),
		geometry.NewSphere(core.NewVec3(-1.2, 0.3, 1.5), 0.8, core.NewVec3(0.1, 0.2, 0.5)),
		geometry.NewSphere(core.NewVec3(1.1, -0.4, 2.5), 1.2, core.NewVec3(0.8, 0.8, 0.0)),
	}

	return NewScene(
		core.NewVec3(0, 0, -5),
		core.NewVec3(-0.4, 0.6, -1),
		width, height,
		spheres,
	)
}
