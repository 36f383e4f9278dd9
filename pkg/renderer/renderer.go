package renderer

import (
	"math"
	"sync/atomic"

	"github.com/avandyck/raydemos/pkg/core"
	"github.com/avandyck/raydemos/pkg/executor"
	"github.com/avandyck/raydemos/pkg/scene"
)

// backgroundColor is returned for rays that miss every sphere
var backgroundColor = core.NewVec3(0, 0, 0)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels     int     // Total number of pixels rendered
	HitPixels       int     // Pixels whose primary ray hit a sphere
	MeanLuminance   float64 // Mean luminance of the framebuffer
	StdDevLuminance float64 // Luminance standard deviation
}

// Renderer casts one ray per pixel over an immutable scene. Pixels are
// independent, so the row loop is distributed by an Executor: the same
// algorithm runs sequentially or across a worker pool with byte-identical
// output.
type Renderer struct {
	scene *scene.Scene
	exec  executor.Executor
	light core.Vec3 // scene light direction, normalized once per renderer
}

// NewRenderer creates a renderer for the given scene. A nil executor falls
// back to sequential execution.
func NewRenderer(s *scene.Scene, exec executor.Executor) *Renderer {
	if exec == nil {
		exec = executor.Sequential{}
	}
	return &Renderer{
		scene: s,
		exec:  exec,
		light: s.Light.Normalize(),
	}
}

// Render produces a fully populated framebuffer for the scene. Each row is
// one task; a row writes only its own disjoint index range, so no
// synchronization is needed beyond the hit counter.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(r.scene.Width, r.scene.Height)

	var hits atomic.Int64
	r.exec.Execute(r.scene.Height, func(j int) {
		rowHits := 0
		for i := 0; i < r.scene.Width; i++ {
			color, hit := r.renderPixel(i, j)
			fb.Pixels[j*r.scene.Width+i] = color
			if hit {
				rowHits++
			}
		}
		hits.Add(int64(rowHits))
	})

	stats := RenderStats{
		TotalPixels: r.scene.Width * r.scene.Height,
		HitPixels:   int(hits.Load()),
	}
	stats.MeanLuminance, stats.StdDevLuminance = fb.LuminanceStats()
	return fb, stats
}

// renderPixel computes the color for pixel (i, j) and reports whether the
// primary ray hit anything.
func (r *Renderer) renderPixel(i, j int) (core.Vec3, bool) {
	u := float64(i) / float64(r.scene.Width)
	v := float64(j) / float64(r.scene.Height)

	direction := core.NewVec3(u-0.5, v-0.5, 1.0).Normalize()
	ray := core.NewRay(r.scene.Camera, direction)

	winner, t, ok := r.nearestHit(ray)
	if !ok {
		return backgroundColor, false
	}

	sphere := r.scene.Spheres[winner]
	normal := sphere.NormalAt(ray.At(t))
	return shade(normal, r.light), true
}

// nearestHit scans all spheres for the smallest positive intersection
// distance. The strict less-than keeps the earliest sphere in the sequence
// on exact ties. O(n) per ray; scenes here are a handful of spheres, so no
// acceleration structure is used.
func (r *Renderer) nearestHit(ray core.Ray) (winner int, closest float64, ok bool) {
	closest = math.Inf(1)
	winner = -1

	for idx, sphere := range r.scene.Spheres {
		if t, hit := sphere.Hit(ray); hit && t < closest {
			closest = t
			winner = idx
		}
	}

	return winner, closest, winner >= 0
}

// shade encodes the unit surface normal as a color via 0.5*(normal+(1,1,1))
// and scales it by the raw dot product with the light direction. The result
// is deliberately unclamped: a normal facing away from the light yields
// negative channels, which the textual writer passes through unless the
// caller opts into clamping.
func shade(normal, light core.Vec3) core.Vec3 {
	base := normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	return base.Multiply(normal.Dot(light))
}
