// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfiguration.
const (
	EnvFramesPerSecond = "GFX_FPS"
	EnvEventPollDelay  = "GFX_EVENT_POLL_DELAY"
	EnvScreenWidth     = "GFX_WIDTH"
	EnvScreenHeight    = "GFX_HEIGHT"
	EnvSwapchainSize   = "GFX_SWAPCHAIN_SIZE"
	EnvShaderDirectory = "GFX_SHADER_DIR"
	EnvShaderPack      = "GFX_SHADER_PACK"
	EnvDebug           = "GFX_DEBUG"
	EnvLogLevel        = "GFX_LOG_LEVEL"
	EnvLogFormat       = "GFX_LOG_FORMAT"
)

// Configuration defines a global configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
	Log      LogConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the event loop period in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	SwapchainSize uint32

	ScreenWidth  uint32
	ScreenHeight uint32

	// ShaderPack, when set, is a kar archive preferred over ShaderDirectory
	ShaderDirectory string
	ShaderPack      string

	// Debug enables the validation layers
	Debug bool
}

// LogConfiguration is used to configure the process logger
type LogConfiguration struct {
	Level string
	// Format is "text" or "json"
	Format string
}

// DefaultConfiguration returns the configuration used when nothing is set.
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  10,
		},
		Renderer: RendererConfiguration{
			SwapchainSize:   3,
			ScreenWidth:     800,
			ScreenHeight:    600,
			ShaderDirectory: "./shaders",
		},
		Log: LogConfiguration{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfiguration loads the .env files that exist among files, without
// overriding the environment, then reads the GFX_* variables over
// DefaultConfiguration.
func LoadConfiguration(files ...string) (Configuration, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Configuration{}, fmt.Errorf("godotenv.Load(%s): %w", file, err)
		}
	}
	envy.Reload()

	cfg := DefaultConfiguration()
	var err error
	if cfg.Time.FramesPerSecond, err = envInt(EnvFramesPerSecond, cfg.Time.FramesPerSecond); err != nil {
		return cfg, err
	}
	if cfg.Time.EventPollDelay, err = envInt(EnvEventPollDelay, cfg.Time.EventPollDelay); err != nil {
		return cfg, err
	}
	if cfg.Renderer.ScreenWidth, err = envUint32(EnvScreenWidth, cfg.Renderer.ScreenWidth); err != nil {
		return cfg, err
	}
	if cfg.Renderer.ScreenHeight, err = envUint32(EnvScreenHeight, cfg.Renderer.ScreenHeight); err != nil {
		return cfg, err
	}
	if cfg.Renderer.SwapchainSize, err = envUint32(EnvSwapchainSize, cfg.Renderer.SwapchainSize); err != nil {
		return cfg, err
	}
	if cfg.Renderer.Debug, err = envBool(EnvDebug, cfg.Renderer.Debug); err != nil {
		return cfg, err
	}
	cfg.Renderer.ShaderDirectory = envy.Get(EnvShaderDirectory, cfg.Renderer.ShaderDirectory)
	cfg.Renderer.ShaderPack = envy.Get(EnvShaderPack, cfg.Renderer.ShaderPack)
	cfg.Log.Level = envy.Get(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = envy.Get(EnvLogFormat, cfg.Log.Format)
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v := envy.Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envUint32(key string, fallback uint32) (uint32, error) {
	v := envy.Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return uint32(n), nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := envy.Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
