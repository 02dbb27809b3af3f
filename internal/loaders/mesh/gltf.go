// Package mesh supplements the JSON triangle-list scene contract with an
// optional glTF mesh loader (SPEC_FULL.md DOMAIN STACK), using
// github.com/qmuntal/gltf to decode a .gltf/.glb document's first mesh
// primitive into the same flat triangle-list shape
// internal/geometry.TriangleMesh expects.
package mesh

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
)

// LoadGLTF decodes the file at path and returns a TriangleMesh built from
// its first mesh's first primitive. mat is applied to every triangle; the
// glTF document's own material assignment is not used, since this repo's
// single tagged-variant Principled/Emissive material model (spec §9) has
// no direct analogue of glTF's PBR material JSON.
func LoadGLTF(path string, mat core.Material) (geometry.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return geometry.TriangleMesh{}, errors.Wrap(err, "opening gltf document")
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return geometry.TriangleMesh{}, errors.New("gltf document has no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]

	posAccessor, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return geometry.TriangleMesh{}, errors.New("gltf primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
	if err != nil {
		return geometry.TriangleMesh{}, errors.Wrap(err, "reading gltf positions")
	}

	var normals [][3]float32
	if normAccessor, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normAccessor], nil)
		if err != nil {
			return geometry.TriangleMesh{}, errors.Wrap(err, "reading gltf normals")
		}
	}

	var uvs [][2]float32
	if uvAccessor, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvAccessor], nil)
		if err != nil {
			return geometry.TriangleMesh{}, errors.Wrap(err, "reading gltf uvs")
		}
	}

	indicesU32, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return geometry.TriangleMesh{}, errors.Wrap(err, "reading gltf indices")
	}

	out := geometry.TriangleMesh{
		Positions: make([]core.Vec3, len(positions)),
		Normals:   make([]core.Vec3, len(normals)),
		UVs:       make([]core.Vec2, len(uvs)),
		Smooth:    len(normals) > 0,
		Material:  mat,
	}
	for i, p := range positions {
		out.Positions[i] = core.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
	}
	for i, n := range normals {
		out.Normals[i] = core.Vec3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}
	}
	for i, uv := range uvs {
		out.UVs[i] = core.Vec2{X: float64(uv[0]), Y: float64(uv[1])}
	}
	for i := 0; i+2 < len(indicesU32); i += 3 {
		out.Indices = append(out.Indices, [3]int{int(indicesU32[i]), int(indicesU32[i+1]), int(indicesU32[i+2])})
	}
	return out, nil
}
