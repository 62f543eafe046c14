package shading

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/lumen/engine/math"
)

// FragmentStage evaluates the Phong reflectance model for one interpolated
// surface point and returns the final colour with alpha fixed at 1.0.
//
// The returned rgb is the plain sum of the ambient, diffuse and specular
// terms and is NOT clamped to [0,1]; clamping belongs to the colour-output
// stage that writes the framebuffer. The only guards are the max(dot, 0)
// cutoffs that zero out contributions from light arriving behind the surface.
//
// PRECONDITION: the interpolated normal must not be the zero vector.
// The stage is a pure function; identical inputs produce bit-identical
// output.
func FragmentStage(in Varying, material Material, light Light, cameraPosition math.Vec3) math.Vec4 {
	ambient := light.Ambient.Mul(material.Ambient)

	n := in.FragNormal.Normalized()
	l := light.Position.Sub(in.FragPos).Normalized()

	diff := math32.Max(n.Dot(l), 0.0)
	diffuse := light.Diffuse.Mul(material.Diffuse.MulScalar(diff))

	v := cameraPosition.Sub(in.FragPos).Normalized()
	r := l.Negate().Reflect(n)

	spec := math32.Pow(math32.Max(v.Dot(r), 0.0), material.Shininess)
	specular := light.Specular.Mul(material.Specular.MulScalar(spec))

	rgb := ambient.Add(diffuse).Add(specular)
	return math.NewVec4FromVec3(rgb, 1.0)
}
