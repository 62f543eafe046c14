package shading

import "fmt"

/** @brief The shader stages a resource is visible to. */
type ShaderStage int

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageFragment
)

/** @brief The data type of a single vertex attribute or varying slot. */
type ShaderAttributeType int

const (
	ShaderAttributeTypeFloat32_2 ShaderAttributeType = iota
	ShaderAttributeTypeFloat32_3
)

// ByteSize returns the tightly packed size of the attribute type.
func (t ShaderAttributeType) ByteSize() uint32 {
	switch t {
	case ShaderAttributeTypeFloat32_2:
		return 8
	case ShaderAttributeTypeFloat32_3:
		return 12
	}
	return 0
}

/** @brief Configuration for a single vertex attribute. */
type AttributeConfig struct {
	/** @brief The name of the attribute. */
	Name string
	/** @brief The input location of the attribute. */
	Location uint32
	/** @brief The type of the attribute. */
	ShaderAttributeType ShaderAttributeType
}

/** @brief Configuration for a uniform block binding. */
type UniformBlockConfig struct {
	/** @brief The name of the block. */
	Name string
	/** @brief The descriptor set the block belongs to. */
	Set uint32
	/** @brief The binding within the set. */
	Binding uint32
	/** @brief The std140 size of the block in bytes. */
	Size uint32
	/** @brief The stages the block is visible to. */
	Stages ShaderStage
}

/** @brief Configuration for a single varying slot between the two stages. */
type VaryingConfig struct {
	/** @brief The name of the varying. */
	Name string
	/** @brief The interface location of the varying. */
	Location uint32
	/** @brief The type of the varying. */
	ShaderAttributeType ShaderAttributeType
}

/**
 * @brief Describes the complete binding contract of the pipeline stage pair:
 * vertex input layout, push constants, uniform blocks, stage varyings and
 * colour attachments. It is consumed at pipeline-build time; none of it is
 * embedded in the shading logic itself. Any reimplementation must preserve
 * this exact arity and order to remain a drop-in replacement.
 */
type PipelineInterfaceConfig struct {
	/** @brief The name of the pipeline. */
	Name string
	/** @brief The std140 size of the per-frame push constant block. */
	PushConstantSize uint32
	/** @brief The vertex attributes, in slot order. */
	Attributes []*AttributeConfig
	/** @brief The uniform blocks, in (set, binding) order. */
	UniformBlocks []*UniformBlockConfig
	/** @brief The stage varyings, in slot order. */
	Varyings []*VaryingConfig
	/** @brief The number of colour attachments written by the fragment stage. */
	ColorAttachmentCount uint32
}

// std140 block sizes of the uniform data. vec3 members are padded to 16
// bytes except when trailing, and total block size rounds up to 16.
const (
	// view mat4 + proj mat4 + camera_pos vec3 (padded)
	PushConstantBlockSize uint32 = 64 + 64 + 16
	// model mat4
	ModelBlockSize uint32 = 64
	// ambient + diffuse padded vec3s, specular vec3, shininess float
	MaterialBlockSize uint32 = 16 + 16 + 12 + 4
	// position + ambient + diffuse padded vec3s, specular vec3, end padding
	LightBlockSize uint32 = 16 + 16 + 16 + 16
)

// PhongPipelineInterface returns the canonical interface description of the
// Phong stage pair: three vertex attributes (position, normal, tex_coord),
// the per-frame push constant block, the model block at set 0 binding 0, the
// material and light blocks at set 1 bindings 0 and 1, two varying slots and
// a single colour attachment.
func PhongPipelineInterface() *PipelineInterfaceConfig {
	return &PipelineInterfaceConfig{
		Name:             "phong",
		PushConstantSize: PushConstantBlockSize,
		Attributes: []*AttributeConfig{
			{Name: "position", Location: 0, ShaderAttributeType: ShaderAttributeTypeFloat32_3},
			{Name: "normal", Location: 1, ShaderAttributeType: ShaderAttributeTypeFloat32_3},
			{Name: "tex_coord", Location: 2, ShaderAttributeType: ShaderAttributeTypeFloat32_2},
		},
		UniformBlocks: []*UniformBlockConfig{
			{Name: "model", Set: 0, Binding: 0, Size: ModelBlockSize, Stages: ShaderStageVertex},
			{Name: "material", Set: 1, Binding: 0, Size: MaterialBlockSize, Stages: ShaderStageFragment},
			{Name: "light", Set: 1, Binding: 1, Size: LightBlockSize, Stages: ShaderStageFragment},
		},
		Varyings: []*VaryingConfig{
			{Name: "frag_pos", Location: 0, ShaderAttributeType: ShaderAttributeTypeFloat32_3},
			{Name: "frag_normal", Location: 1, ShaderAttributeType: ShaderAttributeTypeFloat32_3},
		},
		ColorAttachmentCount: 1,
	}
}

// VertexStride returns the packed byte stride of one vertex under the
// described input layout.
func (c *PipelineInterfaceConfig) VertexStride() uint32 {
	stride := uint32(0)
	for _, a := range c.Attributes {
		stride += a.ShaderAttributeType.ByteSize()
	}
	return stride
}

// Validate checks that the description is internally consistent: attribute
// and varying locations are contiguous from zero in slot order, uniform
// blocks are unique and ordered by (set, binding), and all sizes are set.
func (c *PipelineInterfaceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("pipeline interface has no name")
	}
	for i, a := range c.Attributes {
		if a.Location != uint32(i) {
			return fmt.Errorf("attribute %q at index %d has location %d", a.Name, i, a.Location)
		}
	}
	for i, v := range c.Varyings {
		if v.Location != uint32(i) {
			return fmt.Errorf("varying %q at index %d has location %d", v.Name, i, v.Location)
		}
	}
	prevSet, prevBinding := -1, -1
	for _, b := range c.UniformBlocks {
		if b.Size == 0 {
			return fmt.Errorf("uniform block %q has zero size", b.Name)
		}
		if b.Size%16 != 0 {
			return fmt.Errorf("uniform block %q size %d is not a multiple of 16", b.Name, b.Size)
		}
		set, binding := int(b.Set), int(b.Binding)
		if set < prevSet || (set == prevSet && binding <= prevBinding) {
			return fmt.Errorf("uniform block %q out of (set, binding) order", b.Name)
		}
		prevSet, prevBinding = set, binding
	}
	if c.ColorAttachmentCount == 0 {
		return fmt.Errorf("pipeline interface %q writes no colour attachment", c.Name)
	}
	return nil
}
