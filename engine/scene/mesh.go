package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/renderer"
	"github.com/spaghettifunk/lumen/engine/shading"
)

/**
 * @brief A mesh holds the vertex and index buffers of one piece of geometry.
 * Meshes are shared: several models may draw the same mesh with different
 * transforms and materials.
 */
type Mesh struct {
	/** @brief The mesh identifier. */
	ID uuid.UUID
	/** @brief The mesh name. */
	Name string
	/** @brief The vertex buffer. */
	Vertices []math.Vertex3D
	/** @brief The index buffer, a triangle list. */
	Indices []uint32
}

// NewMesh wraps the given buffers into a mesh. When every vertex normal is
// zero, face normals are generated in place.
func NewMesh(name string, vertices []math.Vertex3D, indices []uint32) *Mesh {
	needsNormals := true
	for _, v := range vertices {
		if v.Normal.LengthSquared() > 0 {
			needsNormals = false
			break
		}
	}
	if needsNormals {
		math.GeometryGenerateNormals(vertices, indices)
	}
	return &Mesh{
		ID:       uuid.New(),
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// FlipY negates the y component of every vertex position, matching the
// convention of assets authored for a y-down pipeline.
func (m *Mesh) FlipY() {
	for i := range m.Vertices {
		m.Vertices[i].Position.Y = -m.Vertices[i].Position.Y
	}
}

/**
 * @brief A model is one drawable object in the scene: a mesh placed in the
 * world with a material bound to it.
 */
type Model struct {
	/** @brief The model identifier. */
	ID uuid.UUID
	/** @brief The model name. */
	Name string
	/** @brief The geometry drawn by this model. */
	Mesh *Mesh
	/** @brief The object-to-world transform. */
	Transform math.Mat4
	/** @brief The surface material. */
	Material shading.Material
}

// NewModel places a mesh in the world.
func NewModel(name string, mesh *Mesh, transform math.Mat4, material shading.Material) *Model {
	return &Model{
		ID:        uuid.New(),
		Name:      name,
		Mesh:      mesh,
		Transform: transform,
		Material:  material,
	}
}

// DrawCommand converts the model into the renderer's draw representation,
// precomputing the per-object normal matrix.
func (m *Model) DrawCommand() renderer.DrawCommand {
	return renderer.DrawCommand{
		Vertices: m.Mesh.Vertices,
		Indices:  m.Mesh.Indices,
		Object:   shading.NewObject(m.Transform),
		Material: m.Material,
	}
}
