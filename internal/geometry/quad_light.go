package geometry

import (
	"github.com/krrud/pathtracer-go/internal/core"
)

// QuadLight is a planar rectangular area light: four coplanar vertices,
// materialized internally as two triangles sharing an emissive material
// for hit testing, per spec §3/§4.2. Field layout is grounded on
// original_source/src/lights.rs's QuadLight.
type QuadLight struct {
	Vertices      [4]core.Vec3
	Color         core.Vec3
	Intensity     float64
	position      core.Vec3
	area          float64
	normal        core.Vec3
	xAxis, yAxis  core.Vec3
	width, height float64
	tri0, tri1    *Triangle
}

// NewQuadLight builds a quad light from four coplanar corners ordered
// around the perimeter (corner, corner+u, corner+u+v, corner+v), color and
// intensity. The emissive material used for hit testing returns
// color*intensity^2 per spec §4.3's emission rule.
func NewQuadLight(corner, u, v core.Vec3, color core.Vec3, intensity float64, mat core.Material) *QuadLight {
	verts := [4]core.Vec3{corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)}
	area := u.Cross(v).Length()
	normal := u.Cross(v).Normalize()
	position := core.Vec3{}
	for _, p := range verts {
		position = position.Add(p)
	}
	position = position.Scale(0.25)

	q := &QuadLight{
		Vertices: verts, Color: color, Intensity: intensity,
		position: position, area: area, normal: normal,
		xAxis: u, yAxis: v, width: u.Length(), height: v.Length(),
	}
	q.tri0 = &Triangle{V0: verts[0], V1: verts[1], V2: verts[2], Material: mat}
	q.tri0.N0, q.tri0.N1, q.tri0.N2 = normal, normal, normal
	q.tri1 = &Triangle{V0: verts[0], V1: verts[2], V2: verts[3], Material: mat}
	q.tri1.N0, q.tri1.N1, q.tri1.N2 = normal, normal, normal
	return q
}

func (q *QuadLight) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if hit, ok := q.tri0.Hit(r, tMin, tMax); ok {
		if hit2, ok2 := q.tri1.Hit(r, tMin, hit.T); ok2 {
			return hit2, true
		}
		return hit, true
	}
	return q.tri1.Hit(r, tMin, tMax)
}

func (q *QuadLight) BoundingBox() core.Aabb {
	return core.NewAabbFromPoints(q.Vertices[0], q.Vertices[1], q.Vertices[2], q.Vertices[3])
}

func (q *QuadLight) Area() float64     { return q.area }
func (q *QuadLight) Centroid() core.Vec3 { return q.position }
func (q *QuadLight) Normal() core.Vec3   { return q.normal }

// SamplePoint returns p = center + (s-1/2)*xAxis + (t-1/2)*yAxis per spec
// §4.4's generate() contract, using the full axis vectors (not unit
// vectors) so width/height fall out naturally.
func (q *QuadLight) SamplePoint(s, t float64) core.Vec3 {
	return q.position.
		Add(q.xAxis.Scale(s - 0.5)).
		Add(q.yAxis.Scale(t - 0.5))
}

// Emission is color * intensity^2, the deliberate quadratic intensity
// scaling spec §4.3/§9 requires.
func (q *QuadLight) Emission() core.Color {
	return core.ColorFromRGB(q.Color.Scale(q.Intensity*q.Intensity), 1)
}
