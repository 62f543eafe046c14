package shading

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

/**
 * @brief Per-frame constants shared read-only by both pipeline stages.
 * Pushed once per draw call by the caller; the equivalent of the push
 * constant block of the hardware pipeline.
 */
type Frame struct {
	/** @brief The world-to-view transform. */
	View math.Mat4
	/** @brief The view-to-clip projection transform. */
	Proj math.Mat4
	/** @brief The world-space eye position. Must be consistent with View. */
	CameraPosition math.Vec3
}

/**
 * @brief Per-object transform state, read-only during a draw.
 * PRECONDITION: Model must be invertible; the normal matrix of a degenerate
 * model transform is undefined.
 */
type Object struct {
	/** @brief The object-to-world transform. */
	Model math.Mat4
	/** @brief The normal (inverse-transpose) matrix of the upper-left 3x3 of
	 * Model. Computed once per object by NewObject so the matrix inverse is
	 * amortized across all vertex invocations of the draw. */
	NormalMatrix math.Mat3
}

// NewObject builds the per-object state for the given model transform,
// precomputing the normal matrix.
func NewObject(model math.Mat4) Object {
	return Object{
		Model:        model,
		NormalMatrix: model.Mat3().Inverse().Transpose(),
	}
}

/**
 * @brief The values carried from the vertex stage to the fragment stage.
 * Produced per vertex, then interpolated across each primitive before
 * fragment evaluation. The slot order (frag_pos, frag_normal) is fixed.
 */
type Varying struct {
	/** @brief The world-space position of the surface point. */
	FragPos math.Vec3
	/** @brief The world-space surface normal. Not guaranteed to be unit
	 * length after interpolation. */
	FragNormal math.Vec3
}

/**
 * @brief The full output of one vertex stage invocation: the clip-space
 * position consumed by the rasterizer, plus the varyings to interpolate.
 */
type VertexOutput struct {
	/** @brief The clip-space position, prior to perspective division. */
	ClipPosition math.Vec4
	/** @brief The varyings handed to rasterization. */
	Varying Varying
}
