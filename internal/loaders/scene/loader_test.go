package loader

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneJSONTemplate = `{
	"settings": {
		"width": 64,
		"aspect_ratio": 1,
		"fov": 40,
		"aperture": %g,
		"camera_origin": [0, 0, 3],
		"camera_aim": [0, 0, 0],
		"camera_focus": [0, 0, 0],
		"spp": 4,
		"depth": 4
	},
	"scene": {
		"materials": [
			{"name": "white", "diffuse": [0.8, 0.8, 0.8], "diffuse_weight": 1}
		],
		"spheres": [
			{"material": "white", "center": [0, 0, 0], "radius": 1}
		]
	}
}`

func TestLoadDecodesAperture(t *testing.T) {
	const wantAperture = 0.25
	doc := strings.NewReader(fmt.Sprintf(sceneJSONTemplate, wantAperture))

	sc, err := Load(doc, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, wantAperture, sc.Settings.Aperture)

	// A non-zero aperture jitters the ray origin across the lens; two
	// primary rays through the same pixel with different RNG streams must
	// not share an origin, unlike a pinhole camera.
	r1 := sc.Camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	r2 := sc.Camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(2)))
	assert.NotEqual(t, r1.Origin, r2.Origin)
}

func TestLoadZeroApertureIsPinhole(t *testing.T) {
	doc := strings.NewReader(fmt.Sprintf(sceneJSONTemplate, 0.0))

	sc, err := Load(doc, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 0.0, sc.Settings.Aperture)

	r1 := sc.Camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	r2 := sc.Camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(2)))
	assert.Equal(t, r1.Origin, r2.Origin)
}
