// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestNewError(t *testing.T) {
	assert.NoError(t, newError(vk.Success, "vk.CreateDevice()"))

	err := newError(vk.ErrorOutOfDeviceMemory, "vk.AllocateMemory()")
	require.Error(t, err)
	assert.Equal(t, vk.ErrorOutOfDeviceMemory, ResultOf(err))
	assert.Contains(t, err.Error(), "vk.AllocateMemory(): ")

	wrapped := fmt.Errorf("upload: %w", err)
	assert.Equal(t, vk.ErrorOutOfDeviceMemory, ResultOf(wrapped))
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, vk.Success, ResultOf(nil))
	assert.Equal(t, vk.ErrorInitializationFailed, ResultOf(errors.New("plain")))
}

func TestIsOutOfDate(t *testing.T) {
	assert.True(t, IsOutOfDate(&Error{Code: vk.ErrorOutOfDate}))
	assert.True(t, IsOutOfDate(&Error{Code: vk.Suboptimal}))
	assert.False(t, IsOutOfDate(&Error{Code: vk.ErrorDeviceLost}))
	assert.False(t, IsOutOfDate(nil))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface"))
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface\x00"))
	assert.Equal(t, []string{"a\x00", "b\x00"}, safeStrings([]string{"a", "b\x00"}))
	assert.Empty(t, safeStrings(nil))
}

func TestSliceUint32(t *testing.T) {
	assert.Nil(t, SliceUint32(nil))
	assert.Nil(t, SliceUint32([]byte{1, 2, 3}))

	words := SliceUint32([]byte{0x03, 0x02, 0x23, 0x07, 1, 0, 0, 0, 0xff})
	require.Len(t, words, 2)
	assert.Equal(t, uint32(0x07230203), words[0])
	assert.Equal(t, uint32(1), words[1])
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, VertexShaderName), []byte("spir"), 0o644))

	data, err := DirSource(dir).ReadAll(VertexShaderName)
	require.NoError(t, err)
	assert.Equal(t, []byte("spir"), data)

	_, err = ReadAll(filepath.Join(dir, "missing.spv"))
	var vkErr *Error
	require.True(t, errors.As(err, &vkErr))
	assert.Equal(t, vk.ErrorInitializationFailed, vkErr.Code)
}

func TestNewShaderModuleFromBytesSize(t *testing.T) {
	for _, code := range [][]byte{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := NewShaderModuleFromBytes(nil, code)
		assert.Error(t, err, "%d bytes", len(code))
	}
}

func TestFindMemoryType(t *testing.T) {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 3
	props.MemoryTypes[0].PropertyFlags = vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit)
	props.MemoryTypes[1].PropertyFlags = vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)
	props.MemoryTypes[2].PropertyFlags = HostVisible

	idx, ok := FindMemoryType(props, 0x7, HostVisible)
	require.True(t, ok)
	assert.EqualValues(t, 2, idx)

	idx, ok = FindMemoryType(props, 0x7, vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit))
	require.True(t, ok)
	assert.EqualValues(t, 1, idx)

	_, ok = FindMemoryType(props, 0x3, HostVisible)
	assert.False(t, ok, "type 2 is excluded by the type bits")

	_, ok = FindMemoryType(props, 0x8, 0)
	assert.False(t, ok, "type 3 is past the type count")
}

func TestGraphicsQueueIndex(t *testing.T) {
	families := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueFlags(vk.QueueTransferBit), QueueCount: 1},
		{QueueFlags: vk.QueueFlags(vk.QueueComputeBit | vk.QueueGraphicsBit), QueueCount: 1},
		{QueueFlags: vk.QueueFlags(vk.QueueGraphicsBit), QueueCount: 1},
	}
	idx, ok := GraphicsQueueIndex(families)
	require.True(t, ok)
	assert.EqualValues(t, 1, idx)

	_, ok = GraphicsQueueIndex(families[:1])
	assert.False(t, ok)
	_, ok = GraphicsQueueIndex(nil)
	assert.False(t, ok)
}

func TestQueueCreateInfos(t *testing.T) {
	infos := QueueCreateInfos(DefaultQueuePriority, 0, 0)
	require.Len(t, infos, 1)
	assert.EqualValues(t, 0, infos[0].QueueFamilyIndex)
	assert.Equal(t, []float32{DefaultQueuePriority}, infos[0].PQueuePriorities)

	infos = QueueCreateInfos(1, 0, 2)
	require.Len(t, infos, 2)
	assert.EqualValues(t, 2, infos[1].QueueFamilyIndex)
}

func TestHasSurfaceFormat(t *testing.T) {
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}
	assert.True(t, HasSurfaceFormat(formats, vk.FormatB8g8r8a8Unorm, vk.ColorSpaceSrgbNonlinear))
	assert.False(t, HasSurfaceFormat(formats, vk.FormatR8g8b8a8Unorm, vk.ColorSpaceSrgbNonlinear))
	assert.False(t, HasSurfaceFormat(nil, vk.FormatB8g8r8a8Unorm, vk.ColorSpaceSrgbNonlinear))

	anyFormat := []vk.SurfaceFormat{{Format: vk.FormatUndefined}}
	assert.True(t, HasSurfaceFormat(anyFormat, vk.FormatR8g8b8a8Unorm, vk.ColorSpaceSrgbNonlinear))
}

func TestHasPresentMode(t *testing.T) {
	modes := []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox}
	assert.True(t, HasPresentMode(modes, vk.PresentModeMailbox))
	assert.False(t, HasPresentMode(modes, vk.PresentModeImmediate))
}

func TestCompositeAlpha(t *testing.T) {
	assert.Equal(t, vk.CompositeAlphaOpaqueBit, CompositeAlpha(vk.CompositeAlphaFlags(vk.CompositeAlphaOpaqueBit|vk.CompositeAlphaInheritBit)))
	assert.Equal(t, vk.CompositeAlphaInheritBit, CompositeAlpha(vk.CompositeAlphaFlags(vk.CompositeAlphaInheritBit)))
	assert.Equal(t, vk.CompositeAlphaOpaqueBit, CompositeAlpha(0))
}

func TestSwapchainInfo(t *testing.T) {
	caps := vk.SurfaceCapabilities{
		MinImageCount:           2,
		MaxImageCount:           2,
		CurrentExtent:           vk.Extent2D{Width: 640, Height: 480},
		CurrentTransform:        vk.SurfaceTransformIdentityBit,
		SupportedCompositeAlpha: vk.CompositeAlphaFlags(vk.CompositeAlphaPreMultipliedBit),
	}
	assert.EqualValues(t, 2, SwapchainImageCount(caps))
	caps.MaxImageCount = 0
	assert.EqualValues(t, 3, SwapchainImageCount(caps))

	info := SwapchainInfo(vk.NullSurface, caps, vk.FormatB8g8r8a8Unorm, vk.ColorSpaceSrgbNonlinear, vk.PresentModeFifo)
	assert.Equal(t, vk.Extent2D{Width: 640, Height: 480}, info.ImageExtent)
	assert.Equal(t, vk.CompositeAlphaPreMultipliedBit, info.CompositeAlpha)
	assert.Equal(t, vk.PresentModeFifo, info.PresentMode)
	assert.EqualValues(t, 1, info.ImageArrayLayers)
	assert.Equal(t, vk.SharingModeExclusive, info.ImageSharingMode)
}

func TestRenderPassInfo(t *testing.T) {
	color := SetupColorAttachment(vk.FormatB8g8r8a8Unorm)
	assert.Equal(t, vk.FormatB8g8r8a8Unorm, color.Format)
	assert.Equal(t, vk.AttachmentLoadOpClear, color.LoadOp)
	assert.Equal(t, vk.ImageLayoutPresentSrc, color.FinalLayout)

	info := RenderPassInfo(vk.FormatB8g8r8a8Unorm)
	assert.EqualValues(t, 1, info.AttachmentCount)
	require.Len(t, info.PSubpasses, 1)
	assert.EqualValues(t, 1, info.PSubpasses[0].ColorAttachmentCount)
	require.Len(t, info.PDependencies, 1)
	assert.Equal(t, uint32(vk.SubpassExternal), info.PDependencies[0].SrcSubpass)
}

func TestPipelineSetup(t *testing.T) {
	assert.Equal(t, vk.PrimitiveTopologyTriangleList, SetupInputAssembly().Topology)

	extent := vk.Extent2D{Width: 800, Height: 600}
	state, viewport, scissor := SetupViewportScissor(extent)
	assert.EqualValues(t, 800, viewport.Width)
	assert.EqualValues(t, 600, viewport.Height)
	assert.EqualValues(t, 1, viewport.MaxDepth)
	assert.Equal(t, extent, scissor.Extent)
	assert.Equal(t, []vk.Viewport{viewport}, state.PViewports)
	assert.Equal(t, []vk.Rect2D{scissor}, state.PScissors)

	raster := SetupRasterizationState()
	assert.Equal(t, vk.PolygonModeFill, raster.PolygonMode)
	assert.EqualValues(t, 1, raster.LineWidth)

	assert.Equal(t, vk.SampleCount1Bit, SetupMultisampleState().RasterizationSamples)

	blend := SetupColorBlendState()
	require.Len(t, blend.PAttachments, 1)
	assert.EqualValues(t, 0xF, blend.PAttachments[0].ColorWriteMask)
	assert.EqualValues(t, vk.False, blend.PAttachments[0].BlendEnable)
}

func TestVertexInputState(t *testing.T) {
	state := vertexInputState()
	assert.EqualValues(t, 1, state.VertexBindingDescriptionCount)
	assert.EqualValues(t, 2, state.VertexAttributeDescriptionCount)
	assert.Len(t, state.PVertexAttributeDescriptions, 2)
}

func TestClearValues(t *testing.T) {
	assert.Len(t, ClearValues(DefaultClearColor), 1)
}

func TestZeroWrappersRelease(t *testing.T) {
	var (
		b  Buffer
		m  Memory
		rp RenderPass
		sm ShaderModule
		s  Semaphore
		f  Fence
		sc Swapchain
		p  Pipeline
		cp CommandPool
		pr Presentation
		d  Device
		i  Instance
	)
	b.Release()
	m.Release()
	rp.Release()
	sm.Release()
	s.Release()
	f.Release()
	sc.Release()
	p.Release()
	cp.Release()
	pr.Release()
	d.Release()
	i.Release()
}

func TestInstanceSmoke(t *testing.T) {
	if err := InitLoader(nil); err != nil {
		t.Skip("no Vulkan loader: " + err.Error())
	}
	instance, err := NewInstance("vkr-test", nil, nil)
	if err != nil {
		t.Skip("no Vulkan instance: " + err.Error())
	}
	defer instance.Release()

	devices, err := PhysicalDevices(instance.Handle())
	require.NoError(t, err)
	if len(devices) == 0 {
		t.Skip("no Vulkan physical device")
	}
	info := PhysicalDevicesInfo(devices)
	require.Len(t, info, len(devices))
	assert.NotEmpty(t, info[0].Name)

	dev, err := MakeDevice(devices[0], DefaultQueuePriority)
	require.NoError(t, err)
	defer dev.Release()

	fence, err := NewFence(dev.Handle, true)
	require.NoError(t, err)
	defer fence.Release()
	require.NoError(t, fence.Wait(0))
	require.NoError(t, fence.Reset())

	semaphore, err := NewSemaphore(dev.Handle)
	require.NoError(t, err)
	semaphore.Release()

	pool, err := NewCommandPool(dev.Handle, dev.GraphicsIndex, 2)
	require.NoError(t, err)
	assert.Len(t, pool.Buffers, 2)
	pool.Release()

	rp, err := NewRenderPass(dev.Handle, vk.FormatB8g8r8a8Unorm)
	require.NoError(t, err)
	rp.Release()

	buffer, err := NewBuffer(dev.Handle, NewMemoryAllocator(dev), vk.BufferUsageVertexBufferBit, make([]byte, 64))
	require.NoError(t, err)
	assert.NoError(t, buffer.Write(make([]byte, 32)))
	assert.Error(t, buffer.Write(make([]byte, 1<<20)))
	buffer.Release()

	require.NoError(t, dev.WaitIdle())
}

func BenchmarkSliceUint32Small(b *testing.B) {
	data := make([]byte, 100)
	for idx := 0; idx < b.N; idx++ {
		SliceUint32(data)
	}
}

func BenchmarkSliceUint32Medium(b *testing.B) {
	data := make([]byte, 1000)
	for idx := 0; idx < b.N; idx++ {
		SliceUint32(data)
	}
}

func BenchmarkSliceUint32Big(b *testing.B) {
	data := make([]byte, 100000)
	for idx := 0; idx < b.N; idx++ {
		SliceUint32(data)
	}
}
