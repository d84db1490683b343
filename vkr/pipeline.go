// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// SetupInputAssembly describes triangle lists without primitive restart.
func SetupInputAssembly() vk.PipelineInputAssemblyStateCreateInfo {
	return vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}
}

// SetupViewportScissor describes one viewport and one scissor,
// both covering extent.
func SetupViewportScissor(extent vk.Extent2D) (vk.PipelineViewportStateCreateInfo, vk.Viewport, vk.Rect2D) {
	viewport := vk.Viewport{
		X:        0,
		Y:        0,
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}
	scissor := vk.Rect2D{
		Offset: vk.Offset2D{X: 0, Y: 0},
		Extent: extent,
	}
	info := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports:    []vk.Viewport{viewport},
		ScissorCount:  1,
		PScissors:     []vk.Rect2D{scissor},
	}
	return info, viewport, scissor
}

// SetupRasterizationState describes filled polygons with back faces
// culled, clockwise being the front.
func SetupRasterizationState() vk.PipelineRasterizationStateCreateInfo {
	return vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}
}

// SetupMultisampleState disables multisampling.
func SetupMultisampleState() vk.PipelineMultisampleStateCreateInfo {
	return vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
		MinSampleShading:     1.0,
	}
}

// SetupColorBlendState writes every channel of one attachment
// without blending.
func SetupColorBlendState() vk.PipelineColorBlendStateCreateInfo {
	attachment := vk.PipelineColorBlendAttachmentState{
		BlendEnable: vk.False,
		ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit | vk.ColorComponentGBit |
			vk.ColorComponentBBit | vk.ColorComponentABit),
		SrcColorBlendFactor: vk.BlendFactorOne,
		DstColorBlendFactor: vk.BlendFactorZero,
		ColorBlendOp:        vk.BlendOpAdd,
		SrcAlphaBlendFactor: vk.BlendFactorOne,
		DstAlphaBlendFactor: vk.BlendFactorZero,
		AlphaBlendOp:        vk.BlendOpAdd,
	}
	return vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpCopy,
		AttachmentCount: 1,
		PAttachments:    []vk.PipelineColorBlendAttachmentState{attachment},
	}
}

// MakePipelineLayout creates a pipeline layout without descriptor sets
// or push constants.
func MakePipelineLayout(dev vk.Device) (vk.PipelineLayout, error) {
	plci := vk.PipelineLayoutCreateInfo{
		SType: vk.StructureTypePipelineLayoutCreateInfo,
	}
	var layout vk.PipelineLayout
	if err := newError(vk.CreatePipelineLayout(dev, &plci, nil, &layout), "vk.CreatePipelineLayout()"); err != nil {
		return nil, err
	}
	return layout, nil
}

// Pipeline owns a graphics pipeline and its layout, drawing what its
// input describes into the first subpass of a render pass.
type Pipeline struct {
	device   vk.Device
	handle   vk.Pipeline
	layout   vk.PipelineLayout
	input    PipelineInput
	Viewport vk.Viewport
	Scissor  vk.Rect2D
}

// NewPipeline creates a pipeline for renderpass with a fixed viewport
// covering extent. The pipeline does not own input.
func NewPipeline(dev vk.Device, renderpass *RenderPass, extent vk.Extent2D, input PipelineInput) (*Pipeline, error) {
	stages, err := input.SetupShaderStage()
	if err != nil {
		return nil, err
	}
	vertexInput := input.SetupVertexInputState()
	inputAssembly := SetupInputAssembly()
	viewportState, viewport, scissor := SetupViewportScissor(extent)
	rasterization := SetupRasterizationState()
	multisample := SetupMultisampleState()
	colorBlend := SetupColorBlendState()

	p := &Pipeline{
		device:   dev,
		input:    input,
		Viewport: viewport,
		Scissor:  scissor,
	}
	if p.layout, err = MakePipelineLayout(dev); err != nil {
		return nil, err
	}

	gpci := []vk.GraphicsPipelineCreateInfo{{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterization,
		PMultisampleState:   &multisample,
		PColorBlendState:    &colorBlend,
		Layout:              p.layout,
		RenderPass:          renderpass.Handle(),
		Subpass:             0,
		BasePipelineIndex:   -1,
	}}
	pipelines := make([]vk.Pipeline, len(gpci))
	if err := newError(vk.CreateGraphicsPipelines(dev, nil, uint32(len(gpci)), gpci, nil, pipelines), "vk.CreateGraphicsPipelines()"); err != nil {
		p.Release()
		return nil, err
	}
	p.handle = pipelines[0]
	return p, nil
}

// Handle returns the VkPipeline.
func (p *Pipeline) Handle() vk.Pipeline {
	return p.handle
}

// Layout returns the VkPipelineLayout.
func (p *Pipeline) Layout() vk.PipelineLayout {
	return p.layout
}

// Record binds the pipeline and lets the input record its draw.
func (p *Pipeline) Record(cmd vk.CommandBuffer) {
	vk.CmdBindPipeline(cmd, vk.PipelineBindPointGraphics, p.handle)
	p.input.Record(p, cmd)
}

// Release destroys the pipeline and the layout.
func (p *Pipeline) Release() {
	if p.handle != nil {
		vk.DestroyPipeline(p.device, p.handle, nil)
	}
	if p.layout != nil {
		vk.DestroyPipelineLayout(p.device, p.layout, nil)
	}
	*p = Pipeline{}
}
