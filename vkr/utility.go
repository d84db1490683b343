// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"os"
	"strings"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// ReadAll reads the whole file at path.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: vk.ErrorInitializationFailed, Message: "vkr.ReadAll(): " + err.Error()}
	}
	return data, nil
}

// SliceUint32 reslices bytes into uint32 words, the way SPIR-V code
// is handed to vk.CreateShaderModule. Trailing bytes are dropped.
func SliceUint32(data []byte) []uint32 {
	if len(data) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}

func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}
