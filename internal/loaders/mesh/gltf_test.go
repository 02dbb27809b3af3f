package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krrud/pathtracer-go/internal/material"
)

func TestLoadGLTFMissingFileReturnsWrappedError(t *testing.T) {
	_, err := LoadGLTF("/nonexistent/path/to/model.gltf", &material.Emissive{})
	assert.Error(t, err)
}
