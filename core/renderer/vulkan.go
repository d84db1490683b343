// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package renderer assembles the vkr wrappers into a frame loop
// presenting to a window surface.
package renderer

import (
	"time"

	"github.com/devblok/graphics/vkr"
	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// Renderer describes the rendering machinery
type Renderer interface {
	// Draw renders and presents one frame
	Draw() error

	// Destroy destroys internal members
	Destroy()
}

// Vulkan draws a pipeline input into every image of a swapchain.
// The device, the surface and the input are borrowed.
type Vulkan struct {
	cfg    Configuration
	logger log.FieldLogger

	device  *vkr.Device
	surface vk.Surface
	input   vkr.PipelineInput

	format     vk.Format
	colorSpace vk.ColorSpace
	mode       vk.PresentMode

	renderPass   *vkr.RenderPass
	swapchain    *vkr.Swapchain
	presentation *vkr.Presentation
	pipeline     *vkr.Pipeline
	commands     *vkr.CommandPool

	imageAvailable *vkr.Semaphore
	renderFinished *vkr.Semaphore
	frameFence     *vkr.Fence
}

var _ Renderer = (*Vulkan)(nil)

// NewVulkanRenderer creates a renderer for surface with every command
// buffer recorded. Nothing is left behind when it fails.
func NewVulkanRenderer(dev *vkr.Device, surface vk.Surface, input vkr.PipelineInput, cfg Configuration) (*Vulkan, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	if cfg.FenceTimeout == 0 {
		cfg.FenceTimeout = DefaultConfiguration().FenceTimeout
	}
	v := &Vulkan{
		cfg:     cfg,
		logger:  logger.WithField("component", "renderer"),
		device:  dev,
		surface: surface,
		input:   input,
	}
	if err := v.initialise(); err != nil {
		v.Destroy()
		return nil, err
	}
	return v, nil
}

func (v *Vulkan) initialise() error {
	formats, err := vkr.SurfaceFormats(v.device.Physical, v.surface)
	if err != nil {
		return err
	}
	v.format, v.colorSpace = PickSurfaceFormat(formats)

	v.mode = vk.PresentModeFifo
	if ok, err := vkr.CheckPresentMode(v.device.Physical, v.surface, v.cfg.PresentMode); err == nil && ok {
		v.mode = v.cfg.PresentMode
	}

	caps, err := vkr.SurfaceCapabilities(v.device.Physical, v.surface)
	if err != nil {
		return err
	}
	if v.swapchain, err = vkr.NewSwapchain(v.device.Handle, v.surface, caps, v.format, v.colorSpace, v.mode); err != nil {
		return err
	}
	if v.renderPass, err = vkr.NewRenderPass(v.device.Handle, v.format); err != nil {
		return err
	}
	if v.imageAvailable, err = vkr.NewSemaphore(v.device.Handle); err != nil {
		return err
	}
	if v.renderFinished, err = vkr.NewSemaphore(v.device.Handle); err != nil {
		return err
	}
	if v.frameFence, err = vkr.NewFence(v.device.Handle, true); err != nil {
		return err
	}
	if err := v.build(caps); err != nil {
		return err
	}
	v.logger.WithFields(log.Fields{
		"format": v.format,
		"mode":   v.mode,
		"images": v.presentation.Len(),
	}).Debug("renderer initialised")
	return nil
}

// build creates everything sized by the swapchain and records the commands.
func (v *Vulkan) build(caps vk.SurfaceCapabilities) error {
	var err error
	if v.presentation, err = vkr.NewPresentation(v.device.Handle, v.renderPass, v.swapchain, caps, v.format); err != nil {
		return err
	}
	extent := v.swapchain.Extent()
	if v.pipeline, err = vkr.NewPipeline(v.device.Handle, v.renderPass, extent, v.input); err != nil {
		return err
	}
	if v.commands, err = vkr.NewCommandPool(v.device.Handle, v.device.GraphicsIndex, v.presentation.Len()); err != nil {
		return err
	}
	for idx, framebuffer := range v.presentation.Framebuffers {
		if err := v.commands.Record(idx, v.renderPass, framebuffer, extent, v.pipeline.Record); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vulkan) teardown() {
	if v.commands != nil {
		v.commands.Release()
		v.commands = nil
	}
	if v.pipeline != nil {
		v.pipeline.Release()
		v.pipeline = nil
	}
	if v.presentation != nil {
		v.presentation.Release()
		v.presentation = nil
	}
}

func (v *Vulkan) recreate() error {
	if err := v.device.WaitIdle(); err != nil {
		return err
	}
	v.teardown()

	caps, err := vkr.SurfaceCapabilities(v.device.Physical, v.surface)
	if err != nil {
		return err
	}
	if extent := vkr.SwapchainExtent(caps); extent.Width == 0 || extent.Height == 0 {
		v.logger.Debug("surface has no area, skipping recreation")
		return nil
	}
	if err := v.swapchain.Recreate(caps); err != nil {
		return err
	}
	v.logger.WithField("extent", v.swapchain.Extent()).Debug("swapchain recreated")
	return v.build(caps)
}

// Draw implements interface
func (v *Vulkan) Draw() error {
	if v.presentation == nil {
		return v.recreate()
	}
	if err := v.frameFence.Wait(time.Duration(v.cfg.FenceTimeout)); err != nil {
		return err
	}

	idx, err := v.swapchain.AcquireNext(v.imageAvailable, v.cfg.FenceTimeout)
	if vkr.IsOutOfDate(err) {
		return v.recreate()
	}
	if err != nil {
		return err
	}

	if err := v.frameFence.Reset(); err != nil {
		return err
	}
	commands := v.commands.Buffers[idx : idx+1]
	queue := v.device.GraphicsQueue()
	if err := vkr.RenderSubmit(queue, commands, v.frameFence, v.imageAvailable, v.renderFinished); err != nil {
		return err
	}
	err = vkr.PresentSubmit(v.device.PresentQueue(), idx, v.swapchain, v.renderFinished)
	if vkr.IsOutOfDate(err) {
		return v.recreate()
	}
	return err
}

// Destroy implements interface
func (v *Vulkan) Destroy() {
	if v.device == nil {
		return
	}
	if err := v.device.WaitIdle(); err != nil {
		v.logger.WithError(err).Warn("renderer destroy: device not idle")
	}
	v.teardown()
	for _, s := range []*vkr.Semaphore{v.imageAvailable, v.renderFinished} {
		if s != nil {
			s.Release()
		}
	}
	if v.frameFence != nil {
		v.frameFence.Release()
	}
	if v.renderPass != nil {
		v.renderPass.Release()
	}
	if v.swapchain != nil {
		v.swapchain.Release()
	}
	v.device = nil
}
