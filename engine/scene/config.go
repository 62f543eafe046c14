package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lumen/engine/math"
)

/** @brief Render target settings. */
type OutputConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Path   string `toml:"path"`
}

/** @brief Camera settings. */
type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	/** @brief When > 0, the camera is placed on the stock orbit path at
	 * this many elapsed seconds instead of using Position/Target. */
	OrbitSeconds float32 `toml:"orbit_seconds"`
}

/** @brief Scene light settings. */
type LightConfig struct {
	Position [3]float32 `toml:"position"`
	Ambient  [3]float32 `toml:"ambient"`
	Diffuse  [3]float32 `toml:"diffuse"`
	Specular [3]float32 `toml:"specular"`
}

/** @brief A named material definition. */
type MaterialConfig struct {
	Name      string     `toml:"name"`
	Ambient   [3]float32 `toml:"ambient"`
	Diffuse   [3]float32 `toml:"diffuse"`
	Specular  [3]float32 `toml:"specular"`
	Shininess float32    `toml:"shininess"`
}

/** @brief One drawable object: a generated mesh placed in the world. */
type ModelConfig struct {
	Name string `toml:"name"`
	/** @brief The mesh generator: "cube", "sphere" or "plane". */
	Mesh string `toml:"mesh"`
	/** @brief Edge length for cube/plane, diameter for sphere. */
	Size     float32    `toml:"size"`
	Position [3]float32 `toml:"position"`
	/** @brief Euler rotation in degrees, applied x then y then z. */
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
	/** @brief The name of a material from the materials list; empty means
	 * the default material. */
	Material string `toml:"material"`
	/** @brief Negate vertex y, for geometry authored y-down. */
	FlipY bool `toml:"flip_y"`
}

/** @brief Top-level scene configuration, typically loaded from a .toml file. */
type Config struct {
	Output    OutputConfig     `toml:"output"`
	Camera    CameraConfig     `toml:"camera"`
	Light     LightConfig      `toml:"light"`
	Materials []MaterialConfig `toml:"materials"`
	Models    []ModelConfig    `toml:"models"`
}

// DefaultConfig returns the stock scene: one unit cube with the default
// material, lit by the default light, seen from the orbit start.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Width:  1280,
			Height: 720,
			Path:   "render.png",
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 1, 3},
			Target:   [3]float32{0, 0, 0},
			FOV:      60,
			Near:     0.1,
			Far:      100,
		},
		Light: LightConfig{
			Position: [3]float32{3, 3, 3},
			Ambient:  [3]float32{1, 1, 1},
			Diffuse:  [3]float32{1, 1, 1},
			Specular: [3]float32{2, 2, 2},
		},
		Models: []ModelConfig{
			{Name: "cube", Mesh: "cube", Size: 1},
		},
	}
}

// LoadConfig reads a TOML scene description, with any omitted field falling
// back to the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	// go-toml appends array-of-tables entries to a pre-populated slice, so
	// the stock model list is cleared first and restored only when the file
	// declares no models of its own.
	cfg.Models = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config %s: %w", path, err)
	}
	if len(cfg.Models) == 0 {
		cfg.Models = DefaultConfig().Models
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the parts of the configuration that would otherwise fail
// deep inside the pipeline.
func (c *Config) Validate() error {
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("output size %dx%d is not positive", c.Output.Width, c.Output.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %f out of range", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip range [%f, %f] is invalid", c.Camera.Near, c.Camera.Far)
	}
	known := map[string]bool{}
	for _, m := range c.Materials {
		if m.Name == "" {
			return fmt.Errorf("material without a name")
		}
		if m.Shininess <= 0 {
			return fmt.Errorf("material %q has non-positive shininess", m.Name)
		}
		if known[m.Name] {
			return fmt.Errorf("duplicate material %q", m.Name)
		}
		known[m.Name] = true
	}
	for _, m := range c.Models {
		switch m.Mesh {
		case "cube", "sphere", "plane":
		default:
			return fmt.Errorf("model %q uses unknown mesh %q", m.Name, m.Mesh)
		}
		if m.Material != "" && !known[m.Material] {
			return fmt.Errorf("model %q references unknown material %q", m.Name, m.Material)
		}
	}
	return nil
}

func vec3FromConfig(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}
