package renderer

import (
	"fmt"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/shading"
)

// DrawCommand is one object to draw: its geometry buffers plus the uniform
// state bound for the draw. Everything is read-only for the duration of the
// draw.
type DrawCommand struct {
	Vertices []math.Vertex3D
	Indices  []uint32
	Object   shading.Object
	Material shading.Material
}

// Renderer owns a framebuffer and replays draw commands through the software
// pipeline. It is the stand-in for the external rasterization pipeline the
// stage pair was written against.
type Renderer struct {
	fb         *Framebuffer
	rasterizer *Rasterizer
}

// NewRenderer creates a renderer with a framebuffer of the given size. The
// pipeline interface description is validated here, at build time, the same
// way a graphics API validates its descriptor layouts.
func NewRenderer(width, height int) (*Renderer, error) {
	if err := shading.PhongPipelineInterface().Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline interface: %w", err)
	}
	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		fb:         fb,
		rasterizer: NewRasterizer(fb),
	}, nil
}

// Framebuffer returns the renderer's color/depth target.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Render clears the framebuffer and draws every command under the given
// frame constants and scene light.
func (r *Renderer) Render(frame shading.Frame, light shading.Light, commands []DrawCommand) {
	r.fb.Clear()
	for _, cmd := range commands {
		if len(cmd.Indices)%3 != 0 {
			core.LogWarn("draw command with %d indices is not a triangle list, skipping", len(cmd.Indices))
			continue
		}
		r.rasterizer.DrawTriangles(cmd.Vertices, cmd.Indices, cmd.Object, frame, cmd.Material, light)
	}
}
