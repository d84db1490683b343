// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command triangle draws a triangle, or an indexed quad, into an SDL
// window through the vkr wrappers.
//
// The SPIR-V under shaders/ is checked in; run go generate after editing
// tri.vert or tri.frag to rebuild it with glslangValidator.
package main

//go:generate glslangValidator -V -o shaders/tri-vert.spv shaders/tri.vert
//go:generate glslangValidator -V -o shaders/tri-frag.spv shaders/tri.frag

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/graphics/core"
	"github.com/devblok/graphics/core/renderer"
	"github.com/devblok/graphics/pack"
	"github.com/devblok/graphics/vkr"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	vk "github.com/vulkan-go/vulkan"
)

func init() {
	runtime.LockOSThread()
}

var (
	envFile = flag.String("env", ".env", "Configuration file")
	indexed = flag.Bool("indexed", false, "Draw an indexed quad instead of a triangle")
)

// boxSource serves shaders embedded with packr.
type boxSource struct {
	box packr.Box
}

func (b boxSource) ReadAll(name string) ([]byte, error) {
	return b.box.Find(name)
}

// Closes whatever shaderSource opened.
type closer func() error

func shaderSource(cfg core.RendererConfiguration, logger log.FieldLogger) (vkr.ShaderSource, closer, error) {
	if cfg.ShaderPack != "" {
		ar, err := pack.OpenFile(cfg.ShaderPack)
		if err != nil {
			return nil, nil, err
		}
		logger.WithField("pack", cfg.ShaderPack).Info("shaders from archive")
		return ar, ar.Close, nil
	}
	if cfg.ShaderDirectory != core.DefaultConfiguration().Renderer.ShaderDirectory {
		logger.WithField("dir", cfg.ShaderDirectory).Info("shaders from directory")
		return vkr.DirSource(cfg.ShaderDirectory), func() error { return nil }, nil
	}
	return boxSource{box: packr.NewBox("./shaders")}, func() error { return nil }, nil
}

func newWindow(cfg core.RendererConfiguration) (*sdl.Window, error) {
	return sdl.CreateWindow("triangle",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := core.LoadConfiguration(*envFile)
	if err != nil {
		return err
	}
	logger, err := core.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return err
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow(cfg.Renderer)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := vkr.InitLoader(sdl.VulkanGetVkGetInstanceProcAddr()); err != nil {
		return err
	}

	var layers []string
	if cfg.Renderer.Debug {
		layers = append(layers, "VK_LAYER_KHRONOS_validation")
	}
	instance, err := vkr.NewInstance("triangle", layers, window.VulkanGetInstanceExtensions())
	if err != nil {
		return err
	}
	defer instance.Release()

	surfacePtr, err := window.VulkanCreateSurface(instance.Handle())
	if err != nil {
		return err
	}
	surface := vk.SurfaceFromPointer(uintptr(surfacePtr))
	defer vk.DestroySurface(instance.Handle(), surface, nil)

	physical, err := vkr.PhysicalDevice(instance.Handle())
	if err != nil {
		return err
	}
	dev, err := vkr.MakeDeviceWithSurface(physical, surface, vkr.DefaultQueuePriority)
	if err != nil {
		return err
	}
	defer dev.Release()

	src, closeSource, err := shaderSource(cfg.Renderer, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	newInput := vkr.NewTriangleInput
	if *indexed {
		newInput = vkr.NewIndexedInput
	}
	input, err := newInput(dev.Handle, vkr.NewMemoryAllocator(dev), src)
	if err != nil {
		return err
	}
	defer input.Release()

	rcfg := renderer.DefaultConfiguration()
	rcfg.Logger = logger
	if swapchainMode(cfg.Renderer.SwapchainSize) {
		rcfg.PresentMode = vk.PresentModeMailbox
	}
	r, err := renderer.NewVulkanRenderer(dev, surface, input, rcfg)
	if err != nil {
		return err
	}
	defer r.Destroy()

	return loop(r, core.NewTime(cfg.Time), logger)
}

// swapchainMode asks for mailbox presentation when triple buffering.
func swapchainMode(size uint32) bool {
	return size >= 3
}

func loop(r renderer.Renderer, t *core.Time, logger log.FieldLogger) error {
	defer t.Stop()
	frames := 0
	for {
		select {
		case <-t.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						logger.WithField("frames", frames).Info("event loop exited")
						return nil
					}
				case *sdl.QuitEvent:
					logger.WithField("frames", frames).Info("event loop exited")
					return nil
				}
			}
		case <-t.FpsTicker().C:
			if err := r.Draw(); err != nil {
				return err
			}
			frames++
		}
	}
}
