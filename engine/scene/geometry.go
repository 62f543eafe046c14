package scene

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/lumen/engine/math"
)

// NewCubeMesh generates an axis-aligned cube centred on the origin with the
// given edge length. Each face carries its own four vertices so normals stay
// flat; front faces wind counter-clockwise seen from outside.
func NewCubeMesh(size float32) *Mesh {
	h := size * 0.5

	type face struct {
		corners [4]math.Vec3
		normal  math.Vec3
	}
	faces := []face{
		{ // +z
			corners: [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},
			normal:  math.NewVec3(0, 0, 1),
		},
		{ // -z
			corners: [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}},
			normal:  math.NewVec3(0, 0, -1),
		},
		{ // +x
			corners: [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},
			normal:  math.NewVec3(1, 0, 0),
		},
		{ // -x
			corners: [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}},
			normal:  math.NewVec3(-1, 0, 0),
		},
		{ // +y
			corners: [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},
			normal:  math.NewVec3(0, 1, 0),
		},
		{ // -y
			corners: [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}},
			normal:  math.NewVec3(0, -1, 0),
		},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	vertices := make([]math.Vertex3D, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, math.Vertex3D{
				Position: c,
				Normal:   f.normal,
				Texcoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh("cube", vertices, indices)
}

// NewSphereMesh generates a latitude/longitude sphere centred on the origin.
// segments is the slice count around the y axis, rings the stack count from
// pole to pole; both are clamped to a sane minimum.
func NewSphereMesh(radius float32, segments, rings int) *Mesh {
	segments = math.Clamp(segments, 3, 512)
	rings = math.Clamp(rings, 2, 512)

	vertices := make([]math.Vertex3D, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		phi := math.K_PI * float32(ring) / float32(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2.0 * math.K_PI * float32(seg) / float32(segments)
			normal := math.NewVec3(
				math32.Sin(phi)*math32.Cos(theta),
				math32.Cos(phi),
				math32.Sin(phi)*math32.Sin(theta),
			)
			vertices = append(vertices, math.Vertex3D{
				Position: normal.MulScalar(radius),
				Normal:   normal,
				Texcoord: math.NewVec2(
					float32(seg)/float32(segments),
					float32(ring)/float32(rings),
				),
			})
		}
	}

	indices := make([]uint32, 0, rings*segments*6)
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			indices = append(indices, a, a+1, b)
			indices = append(indices, a+1, b+1, b)
		}
	}

	return NewMesh("sphere", vertices, indices)
}

// NewPlaneMesh generates a square plane in the xz-plane facing +y with the
// given edge length.
func NewPlaneMesh(size float32) *Mesh {
	h := size * 0.5
	up := math.NewVec3Up()
	vertices := []math.Vertex3D{
		{Position: math.NewVec3(-h, 0, h), Normal: up, Texcoord: math.NewVec2(0, 0)},
		{Position: math.NewVec3(h, 0, h), Normal: up, Texcoord: math.NewVec2(1, 0)},
		{Position: math.NewVec3(h, 0, -h), Normal: up, Texcoord: math.NewVec2(1, 1)},
		{Position: math.NewVec3(-h, 0, -h), Normal: up, Texcoord: math.NewVec2(0, 1)},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return NewMesh("plane", vertices, indices)
}
