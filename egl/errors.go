// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

import (
	"github.com/devblok/graphics/errcode"
)

var messages = map[int64]string{
	int64(Success):           "success",
	int64(NotInitialized):    "EGL is not initialized, or could not be initialized, for the specified display connection",
	int64(BadAccess):         "EGL cannot access a requested resource (for example a context is bound in another thread)",
	int64(BadAlloc):          "EGL failed to allocate resources for the requested operation",
	int64(BadAttribute):      "an unrecognized attribute or attribute value was passed in the attribute list",
	int64(BadConfig):         "an EGLConfig argument does not name a valid frame buffer configuration",
	int64(BadContext):        "an EGLContext argument does not name a valid rendering context",
	int64(BadCurrentSurface): "the current surface of the calling thread is no longer valid",
	int64(BadDisplay):        "an EGLDisplay argument does not name a valid display connection",
	int64(BadMatch):          "arguments are inconsistent",
	int64(BadNativePixmap):   "a native pixmap argument does not refer to a valid native pixmap",
	int64(BadNativeWindow):   "a native window argument does not refer to a valid native window",
	int64(BadParameter):      "one or more argument values are invalid",
	int64(BadSurface):        "an EGLSurface argument does not name a valid surface configured for GL rendering",
	int64(ContextLost):       "a power management event has occurred, the context must be recreated",
	int64(InvalidValue):      "invalid value",
}

// NewErrorDomain creates the EGL error domain.
func NewErrorDomain() *errcode.Domain {
	return errcode.NewDomain("EGL", messages)
}

// Sentinels comparable with errors.Is against any error the wrappers return.
var (
	ErrNotInitialized = &errcode.Error{Code: int64(NotInitialized)}
	ErrInvalidValue   = &errcode.Error{Code: int64(InvalidValue)}
	ErrBadContext     = &errcode.Error{Code: int64(BadContext)}
	ErrContextLost    = &errcode.Error{Code: int64(ContextLost)}
	ErrBadSurface     = &errcode.Error{Code: int64(BadSurface)}
)

// CodeOf returns the EGL code carried by err, Success for nil.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	if code, ok := errcode.CodeOf(err); ok {
		return Code(code)
	}
	return BadParameter
}
