// Package loader (internal/loaders/scene) parses the JSON scene description into the
// in-memory internal/scene.Scene. This is the external "parser" collaborator
// spec §1 treats as out of scope for the rendering core; the shape of the
// JSON document is grounded on original_source/src/process.rs's
// data["settings"]/data["scene"] layout and spec §6's field list.
package loader

import (
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/krrud/pathtracer-go/internal/accel"
	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	loadtexture "github.com/krrud/pathtracer-go/internal/loaders/texture"
	"github.com/krrud/pathtracer-go/internal/material"
	internalscene "github.com/krrud/pathtracer-go/internal/scene"
	internaltexture "github.com/krrud/pathtracer-go/internal/texture"
)

type jsonVec3 [3]float64

func (v jsonVec3) toVec3() core.Vec3 { return core.Vec3{X: v[0], Y: v[1], Z: v[2]} }

type jsonDocument struct {
	Settings struct {
		Progressive  bool     `json:"progressive"`
		AspectRatio  float64  `json:"aspect_ratio"`
		Width        int      `json:"width"`
		Fov          float64  `json:"fov"`
		Aperture     float64  `json:"aperture"`
		CameraOrigin jsonVec3 `json:"camera_origin"`
		CameraAim    jsonVec3 `json:"camera_aim"`
		CameraFocus  jsonVec3 `json:"camera_focus"`
		Spp          int      `json:"spp"`
		Depth        int      `json:"depth"`
		OutputFile   string   `json:"output_file"`
	} `json:"settings"`
	Scene struct {
		Materials []jsonMaterial `json:"materials"`
		Meshes    []jsonMesh     `json:"meshes"`
		Spheres   []jsonSphere   `json:"spheres"`
		QuadLights []jsonQuadLight `json:"quad_lights"`
		DirectionalLights []jsonDirectionalLight `json:"directional_lights"`
	} `json:"scene"`
}

type jsonMaterial struct {
	Name           string   `json:"name"`
	Diffuse        jsonVec3 `json:"diffuse"`
	DiffuseWeight  float64  `json:"diffuse_weight"`
	Specular       jsonVec3 `json:"specular"`
	SpecularWeight float64  `json:"specular_weight"`
	Roughness      float64  `json:"roughness"`
	IOR            float64  `json:"ior"`
	Metallic       float64  `json:"metallic"`
	Refraction     float64  `json:"refraction"`
	Emission       jsonVec3 `json:"emission"`

	DiffuseTexture  string  `json:"diffuse_texture"`
	SpecularTexture string  `json:"specular_texture"`
	BumpTexture     string  `json:"bump_texture"`
	BumpStrength    float64 `json:"bump_strength"`
	NormalTexture   string  `json:"normal_texture"`
	NormalStrength  float64 `json:"normal_strength"`
}

// loadMaterialTexture opens path and decodes it with loadtexture.LoadHDR for
// a ".hdr" suffix or loadtexture.LoadLDR otherwise, per spec §6's texture
// sampling interface.
func loadMaterialTexture(path string) (*internaltexture.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening texture %q", path)
	}
	defer f.Close()
	if strings.HasSuffix(strings.ToLower(path), ".hdr") {
		return loadtexture.LoadHDR(f)
	}
	return loadtexture.LoadLDR(f)
}

type jsonMesh struct {
	Material  string     `json:"material"`
	Positions []jsonVec3 `json:"positions"`
	Normals   []jsonVec3 `json:"normals"`
	UVs       [][2]float64 `json:"uvs"`
	Indices   [][3]int   `json:"indices"`
	Smooth    bool       `json:"smooth"`
}

type jsonSphere struct {
	Material string   `json:"material"`
	Center   jsonVec3 `json:"center"`
	Radius   float64  `json:"radius"`
}

type jsonQuadLight struct {
	Corners   [4]jsonVec3 `json:"corners"`
	Color     jsonVec3    `json:"color"`
	Intensity float64     `json:"intensity"`
}

type jsonDirectionalLight struct {
	Direction jsonVec3 `json:"direction"`
	Color     jsonVec3 `json:"color"`
	Intensity float64  `json:"intensity"`
	Softness  float64  `json:"softness"`
}

// Load parses a JSON scene document from r and builds a fully
// preprocessed internal/scene.Scene (BVH built, lights extracted, camera
// constructed). rnd seeds the BVH's random-axis build.
func Load(r io.Reader, rnd *rand.Rand) (*internalscene.Scene, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding scene json")
	}

	materials := map[string]core.Material{}
	for _, m := range doc.Scene.Materials {
		p := &material.Principled{
			Diffuse: m.Diffuse.toVec3(), DiffuseWeight: m.DiffuseWeight,
			Specular: m.Specular.toVec3(), SpecularWeight: m.SpecularWeight,
			Roughness: m.Roughness, IOR: m.IOR, Metallic: m.Metallic,
			Refraction: m.Refraction, Emission: m.Emission.toVec3(),
			BumpStrength: m.BumpStrength, NormalStrength: m.NormalStrength,
		}

		if m.DiffuseTexture != "" {
			tex, err := loadMaterialTexture(m.DiffuseTexture)
			if err != nil {
				return nil, errors.Wrapf(err, "material %q diffuse_texture", m.Name)
			}
			p.DiffuseTexture = tex
		}
		if m.SpecularTexture != "" {
			tex, err := loadMaterialTexture(m.SpecularTexture)
			if err != nil {
				return nil, errors.Wrapf(err, "material %q specular_texture", m.Name)
			}
			p.SpecularTexture = tex
		}
		if m.BumpTexture != "" {
			tex, err := loadMaterialTexture(m.BumpTexture)
			if err != nil {
				return nil, errors.Wrapf(err, "material %q bump_texture", m.Name)
			}
			p.BumpTexture = tex
		}
		if m.NormalTexture != "" {
			tex, err := loadMaterialTexture(m.NormalTexture)
			if err != nil {
				return nil, errors.Wrapf(err, "material %q normal_texture", m.Name)
			}
			p.NormalTexture = tex
		}

		materials[m.Name] = p
	}

	var shapes []core.Shape
	var lights []core.Light

	for _, s := range doc.Scene.Spheres {
		mat, ok := materials[s.Material]
		if !ok {
			return nil, errors.Errorf("sphere references unknown material %q", s.Material)
		}
		shapes = append(shapes, geometry.NewSphere(s.Center.toVec3(), s.Radius, mat))
	}

	for _, m := range doc.Scene.Meshes {
		mat, ok := materials[m.Material]
		if !ok {
			return nil, errors.Errorf("mesh references unknown material %q", m.Material)
		}
		positions := make([]core.Vec3, len(m.Positions))
		for i, p := range m.Positions {
			positions[i] = p.toVec3()
		}
		normals := make([]core.Vec3, len(m.Normals))
		for i, n := range m.Normals {
			normals[i] = n.toVec3()
		}
		uvs := make([]core.Vec2, len(m.UVs))
		for i, uv := range m.UVs {
			uvs[i] = core.Vec2{X: uv[0], Y: uv[1]}
		}
		mesh := geometry.TriangleMesh{Positions: positions, Normals: normals, UVs: uvs, Indices: m.Indices, Smooth: m.Smooth, Material: mat}
		shapes = append(shapes, mesh.Triangles()...)
	}

	for _, q := range doc.Scene.QuadLights {
		u := q.Corners[1].toVec3().Subtract(q.Corners[0].toVec3())
		v := q.Corners[3].toVec3().Subtract(q.Corners[0].toVec3())
		emissive := &material.Emissive{Color: q.Color.toVec3(), Intensity: q.Intensity}
		light := geometry.NewQuadLight(q.Corners[0].toVec3(), u, v, q.Color.toVec3(), q.Intensity, emissive)
		shapes = append(shapes, light)
		lights = append(lights, light)
	}

	var directional []*geometry.DirectionalLight
	for _, d := range doc.Scene.DirectionalLights {
		directional = append(directional, geometry.NewDirectionalLight(d.Direction.toVec3(), d.Color.toVec3(), d.Intensity, d.Softness))
	}

	if len(shapes) == 0 {
		return nil, errors.New("scene has no primitives; cannot build BVH")
	}
	world := accel.Build(shapes, rnd)

	aspect := doc.Settings.AspectRatio
	if aspect == 0 {
		aspect = 16.0 / 9.0
	}
	cam := geometry.NewCamera(geometry.CameraConfig{
		Center: doc.Settings.CameraOrigin.toVec3(),
		LookAt: doc.Settings.CameraAim.toVec3(),
		Up:     core.Vec3{Y: 1},
		Width:  doc.Settings.Width,
		AspectRatio:   aspect,
		VFov:          doc.Settings.Fov,
		Aperture:      doc.Settings.Aperture,
		FocusDistance: doc.Settings.CameraFocus.toVec3().Subtract(doc.Settings.CameraOrigin.toVec3()).Length(),
	})

	sc := &internalscene.Scene{
		World: world, Lights: lights, DirectionalLights: directional,
		Camera: cam,
		Settings: internalscene.Settings{
			Progressive: doc.Settings.Progressive, AspectRatio: aspect, Width: doc.Settings.Width,
			Fov: doc.Settings.Fov, Aperture: doc.Settings.Aperture,
			CameraOrigin: doc.Settings.CameraOrigin.toVec3(), CameraAim: doc.Settings.CameraAim.toVec3(),
			CameraFocus: doc.Settings.CameraFocus.toVec3(),
			SamplesPerPixel: doc.Settings.Spp, Depth: doc.Settings.Depth, OutputFile: doc.Settings.OutputFile,
		},
	}
	return sc, nil
}
