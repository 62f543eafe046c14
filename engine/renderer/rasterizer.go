package renderer

import (
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/shading"
)

// triangles behind (or crossing) this clip-space w are rejected outright
// instead of being clipped against the near plane.
const nearEpsilon float32 = 1e-5

// Rasterizer fills triangles into a framebuffer, standing in for the fixed
// function hardware between the vertex and fragment stages: primitive
// assembly, back-face culling, viewport mapping, barycentric interpolation
// and the depth test.
type Rasterizer struct {
	fb *Framebuffer

	// render both sides of every triangle instead of culling back faces
	DisableBackfaceCulling bool
}

// NewRasterizer creates a rasterizer targeting the given framebuffer.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// screenVertex is a vertex-stage output mapped to screen space.
type screenVertex struct {
	X, Y    float32 // pixel coordinates
	Z       float32 // ndc depth, for the depth buffer
	W       float32 // clip-space w, for perspective-correct interpolation
	Varying shading.Varying
}

// edgeFunction returns twice the signed area of the triangle (a, b, p).
// Positive means p lies to the left of the directed edge a->b in screen
// space, where y grows downward.
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// DrawTriangles runs the full stage pair over an indexed triangle list:
// one VertexStage invocation per vertex, then per covered pixel an
// interpolated Varying and one FragmentStage invocation. Front faces wind
// counter-clockwise in NDC (y up).
func (r *Rasterizer) DrawTriangles(
	vertices []math.Vertex3D,
	indices []uint32,
	object shading.Object,
	frame shading.Frame,
	material shading.Material,
	light shading.Light,
) {
	outs := make([]shading.VertexOutput, len(vertices))
	for i, v := range vertices {
		outs[i] = shading.VertexStage(v, object, frame)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		r.rasterizeTriangle(
			outs[indices[i+0]],
			outs[indices[i+1]],
			outs[indices[i+2]],
			frame, material, light,
		)
	}
}

func (r *Rasterizer) toScreen(out shading.VertexOutput) screenVertex {
	w := out.ClipPosition.W
	ndcX := out.ClipPosition.X / w
	ndcY := out.ClipPosition.Y / w
	ndcZ := out.ClipPosition.Z / w
	return screenVertex{
		X:       (ndcX + 1.0) * 0.5 * float32(r.fb.Width),
		Y:       (1.0 - ndcY) * 0.5 * float32(r.fb.Height),
		Z:       ndcZ,
		W:       w,
		Varying: out.Varying,
	}
}

func (r *Rasterizer) rasterizeTriangle(
	o0, o1, o2 shading.VertexOutput,
	frame shading.Frame,
	material shading.Material,
	light shading.Light,
) {
	// no near-plane clipping in the reference rasterizer: a triangle that
	// reaches behind the eye is dropped whole
	if o0.ClipPosition.W <= nearEpsilon ||
		o1.ClipPosition.W <= nearEpsilon ||
		o2.ClipPosition.W <= nearEpsilon {
		return
	}

	v0 := r.toScreen(o0)
	v1 := r.toScreen(o1)
	v2 := r.toScreen(o2)

	// counter-clockwise in NDC turns clockwise once y is flipped to screen
	// space, so front faces have negative signed area here
	area := edgeFunction(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return
	}
	if area > 0 {
		if !r.DisableBackfaceCulling {
			return
		}
		// keep two-sided triangles renderable by flipping the winding
		v1, v2 = v2, v1
		area = -area
	}

	minX := int(math.Clamp(min3(v0.X, v1.X, v2.X), 0, float32(r.fb.Width-1)))
	maxX := int(math.Clamp(max3(v0.X, v1.X, v2.X), 0, float32(r.fb.Width-1)))
	minY := int(math.Clamp(min3(v0.Y, v1.Y, v2.Y), 0, float32(r.fb.Height-1)))
	maxY := int(math.Clamp(max3(v0.Y, v1.Y, v2.Y), 0, float32(r.fb.Height-1)))

	invArea := 1.0 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			e0 := edgeFunction(v1.X, v1.Y, v2.X, v2.Y, px, py)
			e1 := edgeFunction(v2.X, v2.Y, v0.X, v0.Y, px, py)
			e2 := edgeFunction(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if e0 > 0 || e1 > 0 || e2 > 0 {
				continue
			}

			// screen-space barycentric weights
			l0 := e0 * invArea
			l1 := e1 * invArea
			l2 := e2 * invArea

			// depth interpolates linearly in screen space
			z := l0*v0.Z + l1*v1.Z + l2*v2.Z
			if z < -1.0 || z > 1.0 {
				continue
			}
			if !r.fb.depthTest(x, y, z*0.5+0.5) {
				continue
			}

			// perspective-correct weights for the varyings
			w0 := l0 / v0.W
			w1 := l1 / v1.W
			w2 := l2 / v2.W
			invSum := 1.0 / (w0 + w1 + w2)
			bary := math.NewVec3(w0*invSum, w1*invSum, w2*invSum)

			varying := shading.Interpolate(v0.Varying, v1.Varying, v2.Varying, bary)
			r.fb.setPixel(x, y, shading.FragmentStage(varying, material, light, frame.CameraPosition))
		}
	}
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}
