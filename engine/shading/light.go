package shading

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

/**
 * @brief A single point light, the only light source of a scene.
 * The three colour vectors are RGB intensities and are not required to stay
 * inside [0,1]. Read-only during a draw.
 */
type Light struct {
	/** @brief The world-space position of the light. */
	Position math.Vec3
	/** @brief The ambient intensity. */
	Ambient math.Vec3
	/** @brief The diffuse intensity. */
	Diffuse math.Vec3
	/** @brief The specular intensity. */
	Specular math.Vec3
}

// DefaultLight returns the stock scene light.
func DefaultLight() Light {
	return Light{
		Position: math.NewVec3(3.0, 3.0, 3.0),
		Ambient:  math.NewVec3(1.0, 1.0, 1.0),
		Diffuse:  math.NewVec3(1.0, 1.0, 1.0),
		Specular: math.NewVec3(2.0, 2.0, 2.0),
	}
}
