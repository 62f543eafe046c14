package scene

import (
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/renderer"
	"github.com/spaghettifunk/lumen/engine/shading"
)

/**
 * @brief A scene gathers everything one frame needs: the models to draw,
 * the single point light and the camera. All of it is read-only once a
 * draw has started.
 */
type Scene struct {
	/** @brief The camera observing the scene. */
	Camera *Camera
	/** @brief The scene's point light. */
	Light shading.Light
	/** @brief The drawable objects. */
	Models []*Model
}

// New assembles a scene from its configuration: meshes are generated,
// materials resolved by name and transforms composed.
func New(cfg *Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	camera := NewCamera()
	camera.Position = vec3FromConfig(cfg.Camera.Position)
	camera.Target = vec3FromConfig(cfg.Camera.Target)
	camera.FOVDegrees = cfg.Camera.FOV
	camera.NearClip = cfg.Camera.Near
	camera.FarClip = cfg.Camera.Far
	if cfg.Camera.OrbitSeconds > 0 {
		camera.Orbit(cfg.Camera.OrbitSeconds)
	}

	light := shading.Light{
		Position: vec3FromConfig(cfg.Light.Position),
		Ambient:  vec3FromConfig(cfg.Light.Ambient),
		Diffuse:  vec3FromConfig(cfg.Light.Diffuse),
		Specular: vec3FromConfig(cfg.Light.Specular),
	}

	materials := map[string]shading.Material{}
	for _, m := range cfg.Materials {
		materials[m.Name] = shading.Material{
			Name:      m.Name,
			Ambient:   vec3FromConfig(m.Ambient),
			Diffuse:   vec3FromConfig(m.Diffuse),
			Specular:  vec3FromConfig(m.Specular),
			Shininess: m.Shininess,
		}
	}

	s := &Scene{
		Camera: camera,
		Light:  light,
	}
	for _, mc := range cfg.Models {
		size := mc.Size
		if size <= 0 {
			size = 1.0
		}

		var mesh *Mesh
		switch mc.Mesh {
		case "cube":
			mesh = NewCubeMesh(size)
		case "sphere":
			mesh = NewSphereMesh(size*0.5, 32, 16)
		case "plane":
			mesh = NewPlaneMesh(size)
		}
		if mc.FlipY {
			mesh.FlipY()
		}

		material := shading.DefaultMaterial()
		if mc.Material != "" {
			material = materials[mc.Material]
		}

		name := mc.Name
		if name == "" {
			name = mc.Mesh
		}
		model := NewModel(name, mesh, modelTransform(mc), material)
		s.Models = append(s.Models, model)
		core.LogDebug("scene: added model %s (%s, %d vertices)", model.Name, model.ID, len(mesh.Vertices))
	}
	return s, nil
}

// modelTransform composes translation * rotation * scale from the config.
func modelTransform(mc ModelConfig) math.Mat4 {
	scale := vec3FromConfig(mc.Scale)
	if scale.LengthSquared() == 0 {
		scale = math.NewVec3One()
	}
	rotation := math.NewMat4EulerXYZ(
		math.DegToRad(mc.Rotation[0]),
		math.DegToRad(mc.Rotation[1]),
		math.DegToRad(mc.Rotation[2]),
	)
	return math.NewMat4Translation(vec3FromConfig(mc.Position)).
		Mul(rotation).
		Mul(math.NewMat4Scale(scale))
}

// Frame returns the per-frame constants for the given aspect ratio.
func (s *Scene) Frame(aspectRatio float32) shading.Frame {
	return s.Camera.Frame(aspectRatio)
}

// Commands flattens the scene's models into renderer draw commands.
func (s *Scene) Commands() []renderer.DrawCommand {
	commands := make([]renderer.DrawCommand, 0, len(s.Models))
	for _, m := range s.Models {
		commands = append(commands, m.DrawCommand())
	}
	return commands
}
