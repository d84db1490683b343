// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package errcode maps native driver error codes to Go errors.
// A Domain names the driver API the codes come from and knows how
// to render them. Domains are plain values: every wrapper package
// builds its own and accepts one from the caller if given.
package errcode

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// NewDomain creates an error domain. Codes missing from messages
// are rendered with the generic numeric format.
func NewDomain(name string, messages map[int64]string) *Domain {
	m := make(map[int64]string, len(messages))
	for k, v := range messages {
		m[k] = v
	}
	return &Domain{
		name:     name,
		messages: m,
	}
}

// Domain is a named family of driver error codes.
type Domain struct {
	name     string
	messages map[int64]string
}

// Name returns the API name of the domain, e.g. "OpenGL".
func (d *Domain) Name() string {
	if d == nil {
		return "unknown"
	}
	return d.name
}

// Message returns a human readable text for code.
func (d *Domain) Message(code int64) string {
	if d != nil {
		if msg, ok := d.messages[code]; ok {
			return msg
		}
	}
	return fmt.Sprintf("error %5d(%4x)", code, code)
}

// New creates an Error for code raised by the operation op.
func (d *Domain) New(op string, code int64) *Error {
	return &Error{
		Domain: d,
		Op:     op,
		Code:   code,
	}
}

// Error is a driver error code raised by a named operation.
type Error struct {
	Domain *Domain
	Op     string
	Code   int64
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Domain.Name() + " " + e.Domain.Message(e.Code)
	}
	return e.Op + ": " + e.Domain.Name() + " " + e.Domain.Message(e.Code)
}

// Is reports whether target carries the same code. A target without a
// domain matches the code in any domain, so package level sentinels
// can be compared against errors raised through a caller's domain.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Domain != nil && e.Domain != nil && t.Domain.name != e.Domain.name {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the driver code carried by err.
func CodeOf(err error) (int64, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// Report logs the failure of op with code and returns it as an Error.
func Report(logger log.FieldLogger, d *Domain, op string, code int64) *Error {
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.WithField("domain", d.Name()).Errorf("%s: %#x", op, code)
	return d.New(op, code)
}
