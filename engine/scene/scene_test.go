package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/shading"
)

func TestNewSceneFromDefaults(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	require.Len(t, s.Models, 1)
	assert.Equal(t, "cube", s.Models[0].Name)
	assert.Equal(t, shading.DefaultMaterialName, s.Models[0].Material.Name)
	assert.True(t, s.Light.Position.Compare(math.NewVec3(3, 3, 3), 1e-6))
	assert.True(t, s.Light.Specular.Compare(math.NewVec3(2, 2, 2), 1e-6))
}

func TestNewSceneResolvesMaterials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = []MaterialConfig{{
		Name:      "ruby",
		Ambient:   [3]float32{0.17, 0.01, 0.01},
		Diffuse:   [3]float32{0.61, 0.04, 0.04},
		Specular:  [3]float32{0.73, 0.63, 0.63},
		Shininess: 76.8,
	}}
	cfg.Models[0].Material = "ruby"

	s, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "ruby", s.Models[0].Material.Name)
	assert.Equal(t, float32(76.8), s.Models[0].Material.Shininess)
}

func TestNewSceneRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Models[0].Mesh = "teapot"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestModelTransformComposition(t *testing.T) {
	mc := ModelConfig{
		Position: [3]float32{1, 2, 3},
		Scale:    [3]float32{2, 2, 2},
	}
	m := modelTransform(mc)

	// scale first, then translate: (1,0,0) -> (2,0,0) -> (3,2,3)
	out := math.NewVec3(1, 0, 0).Transform(m)
	assert.True(t, out.Compare(math.NewVec3(3, 2, 3), 1e-5))
}

func TestModelTransformDefaultsToUnitScale(t *testing.T) {
	m := modelTransform(ModelConfig{})
	assert.True(t, m.Compare(math.NewMat4Identity(), 1e-6))
}

func TestSceneCommands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Models = append(cfg.Models, ModelConfig{Mesh: "sphere", Size: 2})

	s, err := New(cfg)
	require.NoError(t, err)

	commands := s.Commands()
	require.Len(t, commands, 2)
	for _, cmd := range commands {
		assert.NotEmpty(t, cmd.Vertices)
		assert.Zero(t, len(cmd.Indices)%3)
		// draw commands carry the precomputed normal matrix
		want := cmd.Object.Model.Mat3().Inverse().Transpose()
		assert.True(t, cmd.Object.NormalMatrix.Compare(want, 1e-5))
	}
}

func TestCameraFrame(t *testing.T) {
	c := NewCamera()
	frame := c.Frame(16.0 / 9.0)

	assert.True(t, frame.CameraPosition.Compare(c.Position, 1e-6))
	// the view transform maps the eye to the view-space origin
	assert.True(t, c.Position.Transform(frame.View).Compare(math.NewVec3Zero(), 1e-5))
}

func TestCameraOrbit(t *testing.T) {
	c := NewCamera()
	c.Orbit(0)
	assert.True(t, c.Position.Compare(math.NewVec3(0, 1, 3), 1e-5))

	c.Orbit(math.K_PI) // half a revolution at 0.5 rad/s
	assert.True(t, c.Position.Compare(math.NewVec3(3, 1, 0), 1e-4))

	// the orbit keeps a constant radius in the xz-plane
	r := math.NewVec3(c.Position.X, 0, c.Position.Z).Length()
	assert.InDelta(t, 3.0, r, 1e-4)
}
