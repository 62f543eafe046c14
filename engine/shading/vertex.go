package shading

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

// VertexStage transforms one object-space vertex into clip space and emits
// the world-space varyings for rasterization. It is a pure function: one
// invocation per vertex, no shared state, no ordering between invocations.
//
// The world-space normal is obtained through the object's normal
// (inverse-transpose) matrix so that a non-uniform scale in the model
// transform does not skew the normal direction. The vertex texcoord is
// accepted for layout compatibility but never read.
func VertexStage(vertex math.Vertex3D, object Object, frame Frame) VertexOutput {
	fragPos := vertex.Position.Transform(object.Model)
	fragNormal := object.NormalMatrix.MulVec3(vertex.Normal)

	clipPosition := frame.Proj.Mul(frame.View).MulVec4(math.NewVec4FromVec3(fragPos, 1.0))

	return VertexOutput{
		ClipPosition: clipPosition,
		Varying: Varying{
			FragPos:    fragPos,
			FragNormal: fragNormal,
		},
	}
}
