// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"

	vk "github.com/vulkan-go/vulkan"
)

// Error is the failure of a Vulkan call, or of a check made while
// constructing a wrapper. Message names the call.
type Error struct {
	Code    vk.Result
	Message string
}

func (e *Error) Error() string {
	if err := vk.Error(e.Code); err != nil {
		return e.Message + ": " + err.Error()
	}
	return e.Message
}

// newError returns nil for vk.Success.
func newError(ret vk.Result, message string) error {
	if ret == vk.Success {
		return nil
	}
	return &Error{Code: ret, Message: message}
}

// ResultOf returns the Vulkan result carried by err, vk.Success for nil.
func ResultOf(err error) vk.Result {
	if err == nil {
		return vk.Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return vk.ErrorInitializationFailed
}

// IsOutOfDate reports whether err asks for the swapchain to be recreated.
func IsOutOfDate(err error) bool {
	switch ResultOf(err) {
	case vk.ErrorOutOfDate, vk.Suboptimal:
		return true
	}
	return false
}
