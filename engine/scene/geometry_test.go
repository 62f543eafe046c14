package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lumen/engine/math"
)

// assertOutwardWinding checks that every triangle's face normal points away
// from the origin, which is what the rasterizer's front-face convention
// expects from a closed mesh centred on the origin.
func assertOutwardWinding(t *testing.T, mesh *Mesh) {
	t.Helper()
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i+0]].Position
		b := mesh.Vertices[mesh.Indices[i+1]].Position
		c := mesh.Vertices[mesh.Indices[i+2]].Position

		faceNormal := b.Sub(a).Cross(c.Sub(a))
		if faceNormal.LengthSquared() < 1e-10 {
			// zero-area triangle at a pole
			continue
		}
		centroid := a.Add(b).Add(c).MulScalar(1.0 / 3.0)
		assert.Greater(t, faceNormal.Dot(centroid), float32(0),
			"triangle %d winds inward", i/3)
	}
}

func TestNewCubeMesh(t *testing.T) {
	cube := NewCubeMesh(2.0)

	assert.Len(t, cube.Vertices, 24)
	assert.Len(t, cube.Indices, 36)
	assert.NotEqual(t, "", cube.ID.String())

	for _, v := range cube.Vertices {
		// flat shading: each vertex normal matches one axis exactly
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-5)
		// every corner lies on the half-size Chebyshev shell
		assert.InDelta(t, 1.0, max(abs(v.Position.X), max(abs(v.Position.Y), abs(v.Position.Z))), 1e-5)
	}
	assertOutwardWinding(t, cube)
}

func TestNewSphereMesh(t *testing.T) {
	sphere := NewSphereMesh(1.5, 16, 8)

	require.NotEmpty(t, sphere.Vertices)
	require.NotEmpty(t, sphere.Indices)
	assert.Zero(t, len(sphere.Indices)%3)

	for _, v := range sphere.Vertices {
		assert.InDelta(t, 1.5, v.Position.Length(), 1e-4)
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-5)
		// normals point radially outward
		assert.InDelta(t, 1.5, v.Position.Dot(v.Normal), 1e-4)
	}
	assertOutwardWinding(t, sphere)
}

func TestNewSphereMeshClampsTessellation(t *testing.T) {
	// degenerate parameters still yield a valid mesh
	sphere := NewSphereMesh(1.0, 0, 0)
	assert.NotEmpty(t, sphere.Vertices)
	assert.Zero(t, len(sphere.Indices)%3)
}

func TestNewPlaneMesh(t *testing.T) {
	plane := NewPlaneMesh(4.0)

	assert.Len(t, plane.Vertices, 4)
	assert.Len(t, plane.Indices, 6)
	for _, v := range plane.Vertices {
		assert.Equal(t, float32(0.0), v.Position.Y)
		assert.True(t, v.Normal.Compare(math.NewVec3Up(), 1e-6))
	}
}

func TestNewMeshGeneratesMissingNormals(t *testing.T) {
	vertices := []math.Vertex3D{
		{Position: math.NewVec3(0, 0, 0)},
		{Position: math.NewVec3(1, 0, 0)},
		{Position: math.NewVec3(0, 1, 0)},
	}
	mesh := NewMesh("tri", vertices, []uint32{0, 1, 2})
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-5)
	}
}

func TestMeshFlipY(t *testing.T) {
	mesh := NewPlaneMesh(2.0)
	mesh.Vertices[0].Position.Y = 3.0
	mesh.FlipY()
	assert.Equal(t, float32(-3.0), mesh.Vertices[0].Position.Y)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
