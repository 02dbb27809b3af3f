// Package scene holds the in-memory Scene data model spec §3/§6 describes
// as the parser's external output: primitives, lights, camera and render
// settings, already preprocessed into a BVH. It has no parsing logic of
// its own — internal/loaders builds a Scene; internal/integrator and
// internal/scheduler consume one.
package scene

import (
	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	"github.com/krrud/pathtracer-go/internal/texture"
)

// Settings mirrors spec §6's scene input field list plus the
// Progressive flag supplemented from original_source/process.rs.
type Settings struct {
	Progressive  bool
	AspectRatio  float64
	Width        int
	Fov          float64
	Aperture     float64
	CameraOrigin core.Vec3
	CameraAim    core.Vec3
	CameraFocus  core.Vec3
	SamplesPerPixel int
	Depth        int
	OutputFile   string
}

// Environment samples the background for rays that escape the scene,
// grounded on original_source/src/render.rs's skydome UV mapping and
// y-gradient fallback.
type Environment struct {
	Texture     texture.Texture // nil selects the gradient fallback
	Rotation    float64
	HideSkydome bool
	Top, Bottom core.Vec3 // gradient fallback endpoints
}

// Sample returns the background color for a world-space direction. When
// HideSkydome is set and isPrimary is true (the ray is a primary camera
// ray, i.e. depth == max depth), the background is suppressed (alpha 0);
// it is still shown on reflection/refraction rays.
func (e *Environment) Sample(direction core.Vec3, isPrimary bool) core.Color {
	if e == nil {
		return core.Black()
	}
	if e.HideSkydome && isPrimary {
		return core.Color{}
	}
	d := direction.Normalize()
	if e.Texture != nil {
		phi := atan2(d.Z, d.X) + e.Rotation
		u := 1 - (phi+piConst)/(2*piConst)
		theta := asin(clampUnit(-d.Y))
		v := 1 - (theta+piConst/2)/piConst
		return e.Texture.Sample(u, v)
	}
	t := 0.5 * (d.Y + 1)
	grad := e.Bottom.Scale(1 - t).Add(e.Top.Scale(t))
	return core.ColorFromRGB(grad, 1)
}

// Scene is the fully preprocessed, read-only render input: BVH built,
// light list extracted, camera constructed. Construction (from JSON) is
// an external-collaborator concern handled by internal/loaders.
type Scene struct {
	World             core.Shape // BVH root over all primitives
	Lights            []core.Light
	DirectionalLights []*geometry.DirectionalLight
	Camera            *geometry.Camera
	Environment       *Environment
	Settings          Settings
}
