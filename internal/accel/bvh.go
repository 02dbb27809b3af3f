// Package accel implements the bounding volume hierarchy acceleration
// structure described in spec §4.1, grounded on
// original_source/src/bvh.rs's random-axis median-split build algorithm.
package accel

import (
	"math/rand"
	"sort"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Node is a BVH tree node: either an internal node with two children, or a
// leaf wrapping a single shape (Left == Right for leaves, matching
// original_source/bvh.rs's single-object node).
type Node struct {
	Left, Right core.Shape
	box         core.Aabb
}

// BVH owns the built tree root and exposes the same core.Shape contract as
// any other primitive, so it composes transparently with the rest of the
// scene.
type BVH struct {
	root core.Shape
}

// Build constructs a BVH over shapes using a uniformly-random split axis
// at every internal node (spec §4.1's deliberate simplification over a
// full surface-area heuristic). shapes is consumed (its order is
// rearranged) but ownership of the underlying primitives moves into the
// returned tree, per spec §3's lifecycle note.
func Build(shapes []core.Shape, rnd *rand.Rand) *BVH {
	if len(shapes) == 0 {
		panic("accel: cannot build BVH over zero primitives")
	}
	return &BVH{root: build(shapes, rnd)}
}

func build(shapes []core.Shape, rnd *rand.Rand) core.Shape {
	switch len(shapes) {
	case 1:
		return &Node{Left: shapes[0], Right: shapes[0], box: shapes[0].BoundingBox()}
	case 2:
		axis := core.RandomAxis(rnd)
		if !less(shapes[0], shapes[1], axis) {
			shapes[0], shapes[1] = shapes[1], shapes[0]
		}
		return &Node{
			Left: shapes[0], Right: shapes[1],
			box: core.Union(shapes[0].BoundingBox(), shapes[1].BoundingBox()),
		}
	default:
		axis := core.RandomAxis(rnd)
		sort.Slice(shapes, func(i, j int) bool { return less(shapes[i], shapes[j], axis) })
		mid := len(shapes) / 2
		left := build(shapes[:mid], rnd)
		right := build(shapes[mid:], rnd)
		return &Node{Left: left, Right: right, box: core.Union(left.BoundingBox(), right.BoundingBox())}
	}
}

func less(a, b core.Shape, axis int) bool {
	aLo, _ := a.BoundingBox().AxisExtent(axis)
	bLo, _ := b.BoundingBox().AxisExtent(axis)
	return aLo < bLo
}

func (b *BVH) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.root.Hit(r, tMin, tMax)
}

func (b *BVH) BoundingBox() core.Aabb {
	return b.root.BoundingBox()
}

// Hit traverses: test this node's box first; on miss, no hit. Otherwise
// test the left child over [tMin, tMax]; if it hits at tLeft, test the
// right child with the tightened range [tMin, tLeft] and return the
// closer of the two; if left misses, test right over the full range.
func (n *Node) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if _, _, ok := n.box.Hit(r, tMin, tMax); !ok {
		return nil, false
	}
	if n.Left == n.Right {
		return n.Left.Hit(r, tMin, tMax)
	}

	leftHit, leftOk := n.Left.Hit(r, tMin, tMax)
	if leftOk {
		if rightHit, rightOk := n.Right.Hit(r, tMin, leftHit.T); rightOk {
			return rightHit, true
		}
		return leftHit, true
	}
	return n.Right.Hit(r, tMin, tMax)
}

func (n *Node) BoundingBox() core.Aabb { return n.box }
