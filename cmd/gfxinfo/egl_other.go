// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !linux && !freebsd && !openbsd && !windows
// +build !linux,!freebsd,!openbsd,!windows

package main

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

func eglReport(logger log.FieldLogger) (*EGLReport, error) {
	return nil, errors.New("no EGL binding for this platform")
}
