// Package geometry contains the scene primitives (sphere, triangle, quad
// light, directional light) and the camera, dispatched through
// core.Shape/core.Light rather than an open class hierarchy.
package geometry

import (
	"math"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Sphere supports optional linear motion between Time0 and Time1, matching
// the moving-sphere contract spec.md's primitive section allows.
type Sphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center0: center, Center1: center, Time0: 0, Time1: 1, Radius: radius, Material: mat}
}

func NewMovingSphere(center0, center1 core.Vec3, t0, t1, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center0: center0, Center1: center1, Time0: t0, Time1: t1, Radius: radius, Material: mat}
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Scale(frac))
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.centerAt(r.Time)
	oc := r.Origin.Subtract(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Subtract(center).Scale(1 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{Point: point, T: root, U: u, V: v, Material: s.Material}
	hit.SetFaceNormal(r, outwardNormal)
	return hit, true
}

// sphereUV derives spherical UV per spec §4.2: u = (atan2(-z,x)+pi)/2pi,
// v = acos(-y)/pi.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) BoundingBox() core.Aabb {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	box0 := core.NewAabb(s.Center0.Subtract(r), s.Center0.Add(r))
	box1 := core.NewAabb(s.Center1.Subtract(r), s.Center1.Add(r))
	return core.Union(box0, box1)
}
