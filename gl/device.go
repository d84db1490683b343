// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gl wraps OpenGL objects in owners with explicit Release.
//
// Every constructor acquires its names and fails when the driver does,
// releasing whatever was acquired so far. Release frees exactly what was
// acquired and does nothing for zero names. The wrappers never bind behind
// the caller's back except where binding is the purpose of the call.
package gl

import (
	"github.com/devblok/graphics/errcode"
	log "github.com/sirupsen/logrus"
)

// NewErrorDomain creates the OpenGL error domain. Codes are rendered
// numerically, as glGetError provides no messages.
func NewErrorDomain() *errcode.Domain {
	return errcode.NewDomain("OpenGL", nil)
}

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger for driver errors.
func WithLogger(logger log.FieldLogger) Option {
	return func(d *Device) {
		d.logger = logger
	}
}

// WithErrorDomain sets the domain GL errors are raised in.
func WithErrorDomain(domain *errcode.Domain) Option {
	return func(d *Device) {
		d.errs = domain
	}
}

// Device creates OpenGL objects through a Functions table.
type Device struct {
	f      Functions
	logger log.FieldLogger
	errs   *errcode.Domain
}

// NewDevice wraps f, which must belong to the context current on this thread.
func NewDevice(f Functions, opts ...Option) *Device {
	d := &Device{f: f}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.StandardLogger()
	}
	d.logger = d.logger.WithField("component", "gl")
	if d.errs == nil {
		d.errs = NewErrorDomain()
	}
	return d
}

// Functions returns the underlying entry point table.
func (d *Device) Functions() Functions {
	return d.f
}

// ErrorDomain returns the domain errors are raised in.
func (d *Device) ErrorDomain() *errcode.Domain {
	return d.errs
}

// CheckError reads glGetError and reports a failure of op.
func (d *Device) CheckError(op string) error {
	if code := d.f.GetError(); code != NoError {
		return d.report(op, code)
	}
	return nil
}

// Info returns the vendor, renderer and version strings of the context.
func (d *Device) Info() (vendor, renderer, version string) {
	return d.f.GetString(Vendor), d.f.GetString(Renderer), d.f.GetString(Version)
}

func (d *Device) report(op string, code Enum) error {
	return errcode.Report(d.logger, d.errs, op, int64(code))
}

// CodeOf returns the GL code carried by err, NoError for nil.
func CodeOf(err error) Enum {
	if err == nil {
		return NoError
	}
	if code, ok := errcode.CodeOf(err); ok {
		return Enum(code)
	}
	return InvalidOperation
}

// ErrInvalidValue matches GL_INVALID_VALUE raised by any domain.
var ErrInvalidValue = &errcode.Error{Code: int64(InvalidValue)}
