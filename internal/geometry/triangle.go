package geometry

import (
	"math"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Triangle is a single flat or smooth-shaded triangle. Smooth triangles
// interpolate the three vertex normals by barycentric weight; flat
// triangles use the geometric normal e1 x e2.
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	Smooth        bool
	Material      core.Material
}

func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n, N1: n, N2: n,
		Material: mat,
		Smooth:   false,
	}
}

// Area is ½|(v1-v0) x (v2-v0)|.
func (t *Triangle) Area() float64 {
	return 0.5 * t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
}

// Hit implements Möller–Trumbore per spec §4.2.
func (t *Triangle) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	h := r.Direction.Cross(e2)
	a := e1.Dot(h)
	if math.Abs(a) < 1e-7 {
		return nil, false
	}
	f := 1 / a
	s := r.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}
	q := s.Cross(e1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}
	tHit := f * e2.Dot(q)
	if tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	w := 1 - u - v
	point := r.At(tHit)
	var normal core.Vec3
	if t.Smooth {
		normal = t.N0.Scale(w).Add(t.N1.Scale(u)).Add(t.N2.Scale(v)).Normalize()
	} else {
		normal = e1.Cross(e2).Normalize()
	}
	uv := core.Vec2{
		X: t.UV0.X*w + t.UV1.X*u + t.UV2.X*v,
		Y: t.UV0.Y*w + t.UV1.Y*u + t.UV2.Y*v,
	}

	hit := &core.HitRecord{Point: point, T: tHit, U: uv.X, V: uv.Y, Material: t.Material}
	hit.SetFaceNormal(r, normal)
	return hit, true
}

func (t *Triangle) BoundingBox() core.Aabb {
	return core.NewAabbFromPoints(t.V0, t.V1, t.V2)
}

// TriangleMesh expands a flat triangle-list mesh description (positions,
// per-vertex normals, UVs, a shared material and a smooth flag) into the
// []core.Shape list the BVH builder expects. It changes nothing about the
// intersection contract — it is purely a scene-construction convenience,
// supplementing spec §3's mesh primitive.
type TriangleMesh struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	UVs       []core.Vec2
	Indices   [][3]int
	Smooth    bool
	Material  core.Material
}

func (m TriangleMesh) Triangles() []core.Shape {
	out := make([]core.Shape, 0, len(m.Indices))
	for _, idx := range m.Indices {
		i0, i1, i2 := idx[0], idx[1], idx[2]
		tri := &Triangle{
			V0: m.Positions[i0], V1: m.Positions[i1], V2: m.Positions[i2],
			Material: m.Material,
			Smooth:   m.Smooth,
		}
		if len(m.Normals) > i0 && len(m.Normals) > i1 && len(m.Normals) > i2 {
			tri.N0, tri.N1, tri.N2 = m.Normals[i0], m.Normals[i1], m.Normals[i2]
		} else {
			n := tri.V1.Subtract(tri.V0).Cross(tri.V2.Subtract(tri.V0)).Normalize()
			tri.N0, tri.N1, tri.N2 = n, n, n
		}
		if len(m.UVs) > i0 && len(m.UVs) > i1 && len(m.UVs) > i2 {
			tri.UV0, tri.UV1, tri.UV2 = m.UVs[i0], m.UVs[i1], m.UVs[i2]
		}
		out = append(out, tri)
	}
	return out
}
