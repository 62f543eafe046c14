package shading

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

// Interpolate performs the linear barycentric interpolation of varyings that
// the hardware rasterizer applies between the vertex and fragment stages,
// made explicit so it can be tested on its own. a, b and c are the varyings
// of a primitive's three vertices and bary the barycentric weights of the
// sample point; the weights are expected to sum to 1.
//
// The interpolated normal is intentionally left un-normalized, exactly as a
// rasterizer would deliver it; renormalizing is the fragment stage's job.
func Interpolate(a, b, c Varying, bary math.Vec3) Varying {
	return Varying{
		FragPos: a.FragPos.MulScalar(bary.X).
			Add(b.FragPos.MulScalar(bary.Y)).
			Add(c.FragPos.MulScalar(bary.Z)),
		FragNormal: a.FragNormal.MulScalar(bary.X).
			Add(b.FragNormal.MulScalar(bary.Y)).
			Add(c.FragNormal.MulScalar(bary.Z)),
	}
}
