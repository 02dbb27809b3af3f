package core

import "math"

// Aabb is an axis-aligned bounding box. A box with Max < Min on any axis is
// invalid and never reports a hit.
type Aabb struct {
	Min, Max Vec3
}

func NewAabb(min, max Vec3) Aabb { return Aabb{Min: min, Max: max} }

// NewAabbFromPoints returns the smallest box containing all given points.
func NewAabbFromPoints(points ...Vec3) Aabb {
	if len(points) == 0 {
		return Aabb{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return Aabb{Min: min, Max: max}
}

// IsValid reports whether Min <= Max on every axis.
func (b Aabb) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Hit performs the slab test and returns the overlap interval
// (tEnter, tExit) of the ray with the box, clipped to [tMin, tMax]. ok is
// false when the box is invalid or the ray misses (tExit <= tEnter).
func (b Aabb) Hit(r Ray, tMin, tMax float64) (tEnter, tExit float64, ok bool) {
	if !b.IsValid() {
		return 0, 0, false
	}
	tEnter, tExit = tMin, tMax

	axesMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	axesMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < axesMin[axis] || origin[axis] > axesMax[axis] {
				return 0, 0, false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (axesMin[axis] - origin[axis]) * invD
		t1 := (axesMax[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
		if tExit <= tEnter {
			return tEnter, tExit, false
		}
	}
	return tEnter, tExit, true
}

// Union returns the smallest box enclosing both a and b.
func Union(a, b Aabb) Aabb {
	return Aabb{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

func (b Aabb) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

func (b Aabb) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

func (b Aabb) SurfaceArea() float64 {
	s := b.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// AxisExtent returns Min/Max component for the given axis (0=X,1=Y,2=Z).
func (b Aabb) AxisExtent(axis int) (lo, hi float64) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// Contains reports whether o lies entirely within b (with tolerance for
// floating point drift).
func (b Aabb) Contains(o Aabb, tol float64) bool {
	return o.Min.X >= b.Min.X-tol && o.Min.Y >= b.Min.Y-tol && o.Min.Z >= b.Min.Z-tol &&
		o.Max.X <= b.Max.X+tol && o.Max.Y <= b.Max.Y+tol && o.Max.Z <= b.Max.Z+tol
}
