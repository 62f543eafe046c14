package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhongPipelineInterfaceBindingContract(t *testing.T) {
	pi := PhongPipelineInterface()
	require.NoError(t, pi.Validate())

	// three attributes in fixed slot order
	require.Len(t, pi.Attributes, 3)
	assert.Equal(t, "position", pi.Attributes[0].Name)
	assert.Equal(t, "normal", pi.Attributes[1].Name)
	assert.Equal(t, "tex_coord", pi.Attributes[2].Name)
	assert.Equal(t, ShaderAttributeTypeFloat32_3, pi.Attributes[0].ShaderAttributeType)
	assert.Equal(t, ShaderAttributeTypeFloat32_3, pi.Attributes[1].ShaderAttributeType)
	assert.Equal(t, ShaderAttributeTypeFloat32_2, pi.Attributes[2].ShaderAttributeType)

	// model at set 0 binding 0; material and light share set 1
	require.Len(t, pi.UniformBlocks, 3)
	assert.Equal(t, uint32(0), pi.UniformBlocks[0].Set)
	assert.Equal(t, uint32(0), pi.UniformBlocks[0].Binding)
	assert.Equal(t, uint32(1), pi.UniformBlocks[1].Set)
	assert.Equal(t, uint32(0), pi.UniformBlocks[1].Binding)
	assert.Equal(t, uint32(1), pi.UniformBlocks[2].Set)
	assert.Equal(t, uint32(1), pi.UniformBlocks[2].Binding)

	// two varying slots in fixed order, one colour attachment
	require.Len(t, pi.Varyings, 2)
	assert.Equal(t, "frag_pos", pi.Varyings[0].Name)
	assert.Equal(t, "frag_normal", pi.Varyings[1].Name)
	assert.Equal(t, uint32(1), pi.ColorAttachmentCount)
}

func TestPipelineInterfaceBlockSizes(t *testing.T) {
	assert.Equal(t, uint32(144), PushConstantBlockSize)
	assert.Equal(t, uint32(64), ModelBlockSize)
	assert.Equal(t, uint32(48), MaterialBlockSize)
	assert.Equal(t, uint32(64), LightBlockSize)
}

func TestVertexStride(t *testing.T) {
	// position vec3 + normal vec3 + tex_coord vec2, tightly packed
	assert.Equal(t, uint32(32), PhongPipelineInterface().VertexStride())
}

func TestValidateRejectsOutOfOrderAttributes(t *testing.T) {
	pi := PhongPipelineInterface()
	pi.Attributes[0].Location = 2
	assert.Error(t, pi.Validate())
}

func TestValidateRejectsOutOfOrderBindings(t *testing.T) {
	pi := PhongPipelineInterface()
	pi.UniformBlocks[1], pi.UniformBlocks[2] = pi.UniformBlocks[2], pi.UniformBlocks[1]
	assert.Error(t, pi.Validate())
}

func TestValidateRejectsUnalignedBlock(t *testing.T) {
	pi := PhongPipelineInterface()
	pi.UniformBlocks[1].Size = 44
	assert.Error(t, pi.Validate())
}

func TestValidateRejectsMissingAttachment(t *testing.T) {
	pi := PhongPipelineInterface()
	pi.ColorAttachmentCount = 0
	assert.Error(t, pi.Validate())
}
