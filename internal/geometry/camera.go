package geometry

import (
	"math"
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
)

// CameraConfig mirrors the field-naming style observed in the teacher's
// camera tests: thin-lens parameters plus a shutter interval. The
// BDPT-only methods visible on the teacher's camera (SampleCameraFromPoint,
// MapRayToPixel, EvaluateRayImportance) are intentionally not reproduced —
// bidirectional transport is a spec §1 Non-goal.
type CameraConfig struct {
	Center, LookAt, Up core.Vec3
	Width              int
	AspectRatio        float64
	VFov               float64
	Aperture           float64
	FocusDistance      float64
	Time0, Time1       float64
}

// Camera is a thin-lens pinhole camera, grounded on
// original_source/src/camera.rs's Camera::new/get_ray.
type Camera struct {
	origin                     core.Vec3
	lowerLeftCorner            core.Vec3
	horizontal, vertical       core.Vec3
	u, v, w                    core.Vec3
	lensRadius                 float64
	time0, time1               float64
	Width, Height              int
}

func NewCamera(cfg CameraConfig) *Camera {
	focusDistance := cfg.FocusDistance
	if focusDistance == 0 {
		focusDistance = cfg.Center.Subtract(cfg.LookAt).Length()
	}

	theta := cfg.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.Center.Subtract(cfg.LookAt).Normalize()
	up := cfg.Up
	if up.LengthSquared() == 0 {
		up = core.Vec3{Y: 1}
	}
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Scale(viewportWidth * focusDistance)
	vertical := v.Scale(viewportHeight * focusDistance)
	lowerLeftCorner := cfg.Center.
		Subtract(horizontal.Scale(0.5)).
		Subtract(vertical.Scale(0.5)).
		Subtract(w.Scale(focusDistance))

	height := int(float64(cfg.Width) / cfg.AspectRatio)

	t1 := cfg.Time1
	if t1 == 0 {
		t1 = 1
	}

	return &Camera{
		origin:          cfg.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u, v: v, w: w,
		lensRadius: cfg.Aperture / 2,
		time0:      cfg.Time0, time1: t1,
		Width: cfg.Width, Height: height,
	}
}

// GetRay returns the primary ray through normalized viewport coordinates
// (s,t), each in [0,1], jittering the origin across the lens aperture and
// the ray time across the shutter interval.
func (c *Camera) GetRay(s, t float64, rnd *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rnd).Scale(c.lensRadius)
	offset := c.u.Scale(rd.X).Add(c.v.Scale(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + rnd.Float64()*(c.time1-c.time0)
	}
	return core.NewRay(c.origin.Add(offset), direction, time)
}
