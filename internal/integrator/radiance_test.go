package integrator

import (
	"math/rand"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	"github.com/krrud/pathtracer-go/internal/material"
	"github.com/krrud/pathtracer-go/internal/scene"
	"github.com/stretchr/testify/assert"
)

// emptyWorld never reports a hit, matching scenario S1's empty-world case.
type emptyWorld struct{}

func (emptyWorld) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) { return nil, false }
func (emptyWorld) BoundingBox() core.Aabb                                    { return core.Aabb{} }

func TestRadianceEmptyWorldIsAllZero(t *testing.T) {
	sc := &scene.Scene{World: emptyWorld{}, Environment: nil}
	rnd := rand.New(rand.NewSource(1))
	r := core.NewRay(core.Vec3{}, core.Vec3{Z: -1}, 0)

	l := Radiance(r, sc, 3, 3, rnd)
	assert.Equal(t, core.Black(), l.RGBA)
	assert.Equal(t, core.Black(), l.Diffuse)
	assert.Equal(t, core.Black(), l.Specular)
}

func TestRadianceDepthZeroIsZero(t *testing.T) {
	sc := &scene.Scene{World: emptyWorld{}}
	rnd := rand.New(rand.NewSource(1))
	r := core.NewRay(core.Vec3{}, core.Vec3{Z: -1}, 0)
	l := Radiance(r, sc, 0, 3, rnd)
	assert.Equal(t, Lobes{}, l)
}

// emissiveSphereWorld always reports a single hit against a surface with
// the given material, used to sanity check emission-only composition.
type emissiveSphereWorld struct{ mat core.Material }

func (w emissiveSphereWorld) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return &core.HitRecord{
		Point: r.At(1), Normal: core.Vec3{Y: 1}, T: 1, FrontFace: true, Material: w.mat,
	}, true
}
func (emissiveSphereWorld) BoundingBox() core.Aabb { return core.Aabb{} }

func TestRadianceEmissiveSurfaceReturnsEmission(t *testing.T) {
	emissive := &material.Emissive{Color: core.Vec3{X: 1, Y: 1, Z: 1}, Intensity: 2}
	sc := &scene.Scene{World: emissiveSphereWorld{mat: emissive}}
	rnd := rand.New(rand.NewSource(5))
	r := core.NewRay(core.Vec3{}, core.Vec3{Y: 1}, 0)

	l := Radiance(r, sc, 2, 2, rnd)
	assert.InDelta(t, 4, l.RGBA.R, 1e-9)
	assert.InDelta(t, 4, l.Emission.R, 1e-9)
}

// opaqueMaterial never scatters, isolating the direct-lighting term from
// the recursive bounce contribution.
type opaqueMaterial struct{}

func (opaqueMaterial) Emit(hit core.HitRecord) core.Color { return core.Black() }
func (opaqueMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, lights []core.Light, rnd *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// upwardFacingSurface hits only downward-pointing rays (the primary camera
// ray), so shadow rays cast back toward an overhead light miss it.
type upwardFacingSurface struct{ mat core.Material }

func (w upwardFacingSurface) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if r.Direction.Y < 0 {
		return &core.HitRecord{Point: r.At(1), Normal: core.Vec3{Y: 1}, T: 1, FrontFace: true, Material: w.mat}, true
	}
	return nil, false
}
func (upwardFacingSurface) BoundingBox() core.Aabb { return core.Aabb{} }

func TestRadianceAddsUnoccludedDirectionalLight(t *testing.T) {
	world := upwardFacingSurface{mat: opaqueMaterial{}}
	dl := geometry.NewDirectionalLight(core.Vec3{Y: 1}, core.Vec3{X: 1, Y: 1, Z: 1}, 2, 0)
	sc := &scene.Scene{World: world, DirectionalLights: []*geometry.DirectionalLight{dl}}
	rnd := rand.New(rand.NewSource(7))
	r := core.NewRay(core.Vec3{}, core.Vec3{Y: -1}, 0)

	l := Radiance(r, sc, 2, 2, rnd)
	assert.Greater(t, l.RGBA.R, 0.0)
}

func TestRadianceSkipsShadowedDirectionalLight(t *testing.T) {
	world := emissiveSphereWorld{mat: opaqueMaterial{}} // hits every ray, including shadow rays
	dl := geometry.NewDirectionalLight(core.Vec3{Y: 1}, core.Vec3{X: 1, Y: 1, Z: 1}, 2, 0)
	sc := &scene.Scene{World: world, DirectionalLights: []*geometry.DirectionalLight{dl}}
	rnd := rand.New(rand.NewSource(7))
	r := core.NewRay(core.Vec3{}, core.Vec3{Y: -1}, 0)

	l := Radiance(r, sc, 2, 2, rnd)
	assert.Equal(t, 0.0, l.RGBA.R)
}
