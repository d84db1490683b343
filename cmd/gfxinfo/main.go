// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command gfxinfo prints what the Vulkan loader and EGL report, as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/devblok/graphics/core"
	"github.com/devblok/graphics/vkr"
)

var (
	indent   = flag.Bool("indent", true, "Indent the output")
	logLevel = flag.String("log", "warning", "Log level")
)

// Report is the document printed by gfxinfo.
type Report struct {
	Vulkan *VulkanReport `json:"vulkan,omitempty"`
	EGL    *EGLReport    `json:"egl,omitempty"`
}

// VulkanReport lists the instance level capabilities and the devices.
type VulkanReport struct {
	Extensions []string                 `json:"extensions"`
	Layers     []string                 `json:"layers"`
	Devices    []vkr.PhysicalDeviceInfo `json:"devices"`
}

// EGLReport describes the default EGL display.
type EGLReport struct {
	Vendor     string   `json:"vendor"`
	Version    string   `json:"version"`
	ClientAPIs []string `json:"clientApis"`
	Extensions []string `json:"extensions"`
	GL         *GLInfo  `json:"gl,omitempty"`
}

// GLInfo is what a current OpenGL context reports about itself.
type GLInfo struct {
	Vendor   string `json:"vendor"`
	Renderer string `json:"renderer"`
	Version  string `json:"version"`
}

func vulkanReport() (*VulkanReport, error) {
	if err := vkr.InitLoader(nil); err != nil {
		return nil, err
	}
	instance, err := vkr.NewInstance("gfxinfo", nil, nil)
	if err != nil {
		return nil, err
	}
	defer instance.Release()

	r := &VulkanReport{}
	if r.Extensions, err = vkr.InstanceExtensions(); err != nil {
		return nil, err
	}
	if r.Layers, err = vkr.InstanceLayers(); err != nil {
		return nil, err
	}
	devices, err := vkr.PhysicalDevices(instance.Handle())
	if err != nil {
		return nil, err
	}
	r.Devices = vkr.PhysicalDevicesInfo(devices)
	return r, nil
}

func main() {
	flag.Parse()
	logger, err := core.NewLogger(core.LogConfiguration{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var report Report
	if report.Vulkan, err = vulkanReport(); err != nil {
		logger.WithError(err).Warn("Vulkan is not available")
	}
	if report.EGL, err = eglReport(logger); err != nil {
		logger.WithError(err).Warn("EGL is not available")
	}

	var out []byte
	if *indent {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		logger.WithError(err).Fatal("encoding report")
	}
	fmt.Printf("%s\n", out)
}
