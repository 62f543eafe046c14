package scene

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/shading"
)

/**
 * @brief Represents a camera in the world. Produces the view and projection
 * matrices plus the eye position that make up a frame's constants.
 */
type Camera struct {
	/** @brief The world-space position of the eye. */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The up direction used to orient the view. */
	Up math.Vec3
	/** @brief The vertical field of view in degrees. */
	FOVDegrees float32
	/** @brief The near clipping plane distance. */
	NearClip float32
	/** @brief The far clipping plane distance. */
	FarClip float32
}

// NewCamera returns a camera at the stock orbit start position, looking at
// the origin.
func NewCamera() *Camera {
	return &Camera{
		Position:   math.NewVec3(0, 1, 3),
		Target:     math.NewVec3Zero(),
		Up:         math.NewVec3Up(),
		FOVDegrees: 60.0,
		NearClip:   0.1,
		FarClip:    100.0,
	}
}

// View returns the world-to-view transform.
func (c *Camera) View() math.Mat4 {
	return math.NewMat4LookAt(c.Position, c.Target, c.Up)
}

// Projection returns the view-to-clip transform for the given aspect ratio.
func (c *Camera) Projection(aspectRatio float32) math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(c.FOVDegrees), aspectRatio, c.NearClip, c.FarClip)
}

// Frame bundles the camera state into the per-frame constant block shared by
// both pipeline stages.
func (c *Camera) Frame(aspectRatio float32) shading.Frame {
	return shading.Frame{
		View:           c.View(),
		Proj:           c.Projection(aspectRatio),
		CameraPosition: c.Position,
	}
}

// Orbit places the camera on the stock circular path around the origin:
// radius 3, height 1, half a radian per second.
func (c *Camera) Orbit(elapsedSeconds float32) {
	c.Position = math.NewVec3(
		math32.Sin(elapsedSeconds*0.5)*3.0,
		1.0,
		math32.Cos(elapsedSeconds*0.5)*3.0,
	)
	c.Target = math.NewVec3Zero()
}
