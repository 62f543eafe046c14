package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/shading"
)

// testQuad is a unit quad in the xy-plane facing +z, wound counter-clockwise.
func testQuad() ([]math.Vertex3D, []uint32) {
	vertices := []math.Vertex3D{
		{Position: math.NewVec3(-1, -1, 0), Normal: math.NewVec3(0, 0, 1)},
		{Position: math.NewVec3(1, -1, 0), Normal: math.NewVec3(0, 0, 1)},
		{Position: math.NewVec3(1, 1, 0), Normal: math.NewVec3(0, 0, 1)},
		{Position: math.NewVec3(-1, 1, 0), Normal: math.NewVec3(0, 0, 1)},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return vertices, indices
}

func headOnFrame() shading.Frame {
	position := math.NewVec3(0, 0, 3)
	return shading.Frame{
		View:           math.NewMat4LookAt(position, math.NewVec3Zero(), math.NewVec3Up()),
		Proj:           math.NewMat4Perspective(math.DegToRad(60), 1.0, 0.1, 100.0),
		CameraPosition: position,
	}
}

func frontalLight() shading.Light {
	light := shading.DefaultLight()
	light.Position = math.NewVec3(0, 0, 5)
	return light
}

func TestFramebufferClear(t *testing.T) {
	fb, err := NewFramebuffer(4, 4)
	require.NoError(t, err)

	assert.True(t, fb.At(2, 2).Compare(ClearColor, 1e-6))
	assert.Equal(t, ClearDepth, fb.DepthAt(2, 2))

	_, err = NewFramebuffer(0, 4)
	assert.Error(t, err)
}

func TestRasterizerDrawsFrontFacingQuad(t *testing.T) {
	fb, err := NewFramebuffer(64, 64)
	require.NoError(t, err)
	r := NewRasterizer(fb)

	vertices, indices := testQuad()
	r.DrawTriangles(vertices, indices, shading.NewObject(math.NewMat4Identity()),
		headOnFrame(), shading.DefaultMaterial(), frontalLight())

	// the quad covers the centre of the screen and must be lit
	center := fb.At(32, 32)
	assert.Greater(t, center.X, float32(0.0))
	assert.Equal(t, float32(1.0), center.W)

	// a corner pixel stays at the clear colour
	assert.True(t, fb.At(0, 0).Compare(ClearColor, 1e-6))

	// the quad's depth must have been written in front of the far plane
	assert.Less(t, fb.DepthAt(32, 32), ClearDepth)
}

func TestRasterizerCullsBackFaces(t *testing.T) {
	fb, err := NewFramebuffer(64, 64)
	require.NoError(t, err)
	r := NewRasterizer(fb)

	vertices, indices := testQuad()
	// reverse the winding so the quad faces away from the camera
	for i := 0; i+2 < len(indices); i += 3 {
		indices[i+1], indices[i+2] = indices[i+2], indices[i+1]
	}
	r.DrawTriangles(vertices, indices, shading.NewObject(math.NewMat4Identity()),
		headOnFrame(), shading.DefaultMaterial(), frontalLight())
	assert.True(t, fb.At(32, 32).Compare(ClearColor, 1e-6))

	// with culling disabled the same triangles are drawn
	r.DisableBackfaceCulling = true
	r.DrawTriangles(vertices, indices, shading.NewObject(math.NewMat4Identity()),
		headOnFrame(), shading.DefaultMaterial(), frontalLight())
	assert.Greater(t, fb.At(32, 32).X, float32(0.0))
}

func TestRasterizerDepthTest(t *testing.T) {
	fb, err := NewFramebuffer(64, 64)
	require.NoError(t, err)
	r := NewRasterizer(fb)

	frame := headOnFrame()
	light := frontalLight()
	vertices, indices := testQuad()

	// draw a dark quad in front, then a bright one behind it: the back quad
	// must lose the depth test and leave the front colour in place
	dark := shading.DefaultMaterial()
	dark.Diffuse = math.NewVec3(0.1, 0.1, 0.1)
	dark.Ambient = math.NewVec3Zero()
	dark.Specular = math.NewVec3Zero()

	bright := shading.DefaultMaterial()
	bright.Diffuse = math.NewVec3One()

	r.DrawTriangles(vertices, indices, shading.NewObject(math.NewMat4Translation(math.NewVec3(0, 0, 1))),
		frame, dark, light)
	front := fb.At(32, 32)

	r.DrawTriangles(vertices, indices, shading.NewObject(math.NewMat4Translation(math.NewVec3(0, 0, -1))),
		frame, bright, light)
	assert.True(t, fb.At(32, 32).Compare(front, 1e-6))
}

func TestRasterizerRejectsTrianglesBehindEye(t *testing.T) {
	fb, err := NewFramebuffer(32, 32)
	require.NoError(t, err)
	r := NewRasterizer(fb)

	vertices, indices := testQuad()
	object := shading.NewObject(math.NewMat4Translation(math.NewVec3(0, 0, 10)))
	r.DrawTriangles(vertices, indices, object, headOnFrame(), shading.DefaultMaterial(), frontalLight())

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			assert.True(t, fb.At(x, y).Compare(ClearColor, 1e-6))
		}
	}
}

func TestRendererRenderClearsBetweenFrames(t *testing.T) {
	r, err := NewRenderer(32, 32)
	require.NoError(t, err)

	vertices, indices := testQuad()
	r.Render(headOnFrame(), frontalLight(), []DrawCommand{{
		Vertices: vertices,
		Indices:  indices,
		Object:   shading.NewObject(math.NewMat4Identity()),
		Material: shading.DefaultMaterial(),
	}})
	assert.Greater(t, r.Framebuffer().At(16, 16).X, float32(0.0))

	r.Render(headOnFrame(), frontalLight(), nil)
	assert.True(t, r.Framebuffer().At(16, 16).Compare(ClearColor, 1e-6))
}

func TestFramebufferImageClampsOverunity(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	require.NoError(t, err)
	fb.setPixel(0, 0, math.NewVec4(2.5, 0.5, -0.5, 1.0))

	img := fb.Image()
	c := img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestFramebufferSave(t *testing.T) {
	fb, err := NewFramebuffer(8, 8)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fb.Save(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Error(t, fb.Save(filepath.Join(dir, "out.gif")))
}
