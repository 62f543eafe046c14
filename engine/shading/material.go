package shading

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief A material, which represents the reflectance of a surface in the
 * world. All three coefficient vectors are RGB reflectances, by convention
 * in [0,1] per channel. Read-only during a draw.
 */
type Material struct {
	/** @brief The material name. */
	Name string
	/** @brief The ambient reflectance. */
	Ambient math.Vec3
	/** @brief The diffuse reflectance. */
	Diffuse math.Vec3
	/** @brief The specular reflectance. */
	Specular math.Vec3
	/** @brief The specular exponent. Must be > 0. */
	Shininess float32
}

// DefaultMaterial returns the stock grey material bound when an object does
// not carry one of its own.
func DefaultMaterial() Material {
	return Material{
		Name:      DefaultMaterialName,
		Ambient:   math.NewVec3(0.1, 0.1, 0.1),
		Diffuse:   math.NewVec3(0.7, 0.7, 0.7),
		Specular:  math.NewVec3(0.5, 0.5, 0.5),
		Shininess: 32.0,
	}
}
