// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package egl wraps an EGL context and the surface it renders into.
//
// A Context goes through the states mandated by EGL itself:
// initialized (context, no surface), bound (context and surface current),
// suspended (surface released, context kept) and destroyed. All methods
// must be called on the thread the context is current on.
package egl

import (
	"github.com/devblok/graphics/errcode"
	log "github.com/sirupsen/logrus"
)

// maxConfigs is how many configs are requested from eglChooseConfig.
const maxConfigs = 3

// Lifecycle is the platform independent surface of a rendering context.
// Every construction function of this package returns a value satisfying it.
type Lifecycle interface {
	IsValid() bool
	Handle() ContextHandle
	Resume(surface Surface) error
	ResumeWindow(window NativeWindow) error
	Suspend() error
	Swap() error
	Destroy() error
}

var _ Lifecycle = (*Context)(nil)

// Option configures a Context at construction.
type Option func(*Context)

// WithLogger sets the logger used for lifecycle and error reports.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithErrorDomain sets the domain errors are raised in.
func WithErrorDomain(d *errcode.Domain) Option {
	return func(c *Context) {
		c.errs = d
	}
}

// WithConfigAttribs replaces the default config attribute list.
// The list must be terminated with None.
func WithConfigAttribs(attribs []Int) Option {
	return func(c *Context) {
		c.configAttribs = attribs
	}
}

// WithClientVersion sets the requested OpenGL ES version, 3.0 by default.
func WithClientVersion(major, minor Int) Option {
	return func(c *Context) {
		c.clientMajor = major
		c.clientMinor = minor
	}
}

// NewContext initializes display and creates an OpenGL ES context on it,
// sharing objects with share unless it is NoContext.
//
// The returned Context is never nil. When an EGL call fails the error is
// returned together with a Context whose IsValid reports false, and which
// is still safe to Destroy.
func NewContext(drv Driver, display Display, share ContextHandle, opts ...Option) (*Context, error) {
	c := newContext(drv, opts...)
	c.logger.Debug("NewContext")

	c.display = display
	major, minor, ok := drv.Initialize(display)
	if !ok {
		return c, c.report("eglInitialize", drv.GetError())
	}
	c.major, c.minor = major, minor
	c.logger.Debugf("EGLDisplay %#x %d.%d", display, major, minor)

	configs, err := c.Configs(c.configAttribs)
	if err != nil {
		return c, err
	}
	if len(configs) == 0 {
		return c, c.report("eglChooseConfig", BadConfig)
	}
	c.configs = configs

	attribs := []Int{
		ContextMajorVersion, c.clientMajor,
		ContextMinorVersion, c.clientMinor,
		None,
	}
	ctx := drv.CreateContext(display, configs[0], share, attribs)
	if ctx == NoContext {
		return c, c.report("eglCreateContext", drv.GetError())
	}
	c.context = ctx
	c.logger.Debugf("EGL create: context %#x %#x", ctx, share)
	return c, nil
}

// NewDefaultContext creates a context on the default display of the platform.
func NewDefaultContext(drv Driver, opts ...Option) (*Context, error) {
	return NewContext(drv, drv.GetDisplay(DefaultDisplay), NoContext, opts...)
}

func newContext(drv Driver, opts ...Option) *Context {
	c := &Context{
		drv:         drv,
		clientMajor: 3,
		clientMinor: 0,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.StandardLogger()
	}
	c.logger = c.logger.WithField("component", "egl")
	if c.errs == nil {
		c.errs = NewErrorDomain()
	}
	if c.configAttribs == nil {
		c.configAttribs = DefaultConfigAttribs()
	}
	return c
}

// Context owns an EGL context and the surface bound to it.
type Context struct {
	drv    Driver
	logger log.FieldLogger
	errs   *errcode.Domain

	display Display
	context ContextHandle
	surface Surface
	configs []Config

	major, minor  Int
	width, height Int

	configAttribs            []Int
	clientMajor, clientMinor Int
}

// IsValid reports whether the context was created.
func (c *Context) IsValid() bool {
	return c != nil && c.context != NoContext
}

// Handle returns the EGLContext, NoContext once destroyed.
func (c *Context) Handle() ContextHandle {
	return c.context
}

// Display returns the display the context lives on.
func (c *Context) Display() Display {
	return c.display
}

// Surface returns the currently owned surface.
func (c *Context) Surface() Surface {
	return c.surface
}

// Config returns the config the context was created with.
func (c *Context) Config() Config {
	if len(c.configs) == 0 {
		return NoConfig
	}
	return c.configs[0]
}

// Version returns the EGL version negotiated by eglInitialize.
func (c *Context) Version() (major, minor Int) {
	return c.major, c.minor
}

// SurfaceSize returns the size queried when the surface was bound.
func (c *Context) SurfaceSize() (width, height Int) {
	return c.width, c.height
}

// Configs returns up to three configs matching attribs.
// A nil attribs uses DefaultConfigAttribs.
func (c *Context) Configs(attribs []Int) ([]Config, error) {
	if attribs == nil {
		attribs = DefaultConfigAttribs()
	}
	configs := make([]Config, maxConfigs)
	n, ok := c.drv.ChooseConfig(c.display, attribs, configs)
	if !ok {
		return nil, c.report("eglChooseConfig", c.drv.GetError())
	}
	return configs[:n], nil
}

// CreatePbufferSurface creates an offscreen surface of the given size with
// the context's config. The caller owns it until it is passed to Resume.
func (c *Context) CreatePbufferSurface(width, height Int) (Surface, error) {
	if c.context == NoContext {
		return NoSurface, c.errs.New("CreatePbufferSurface", int64(NotInitialized))
	}
	attribs := []Int{
		Width, width,
		Height, height,
		None,
	}
	s := c.drv.CreatePbufferSurface(c.display, c.Config(), attribs)
	if s == NoSurface {
		return NoSurface, c.report("eglCreatePbufferSurface", c.drv.GetError())
	}
	return s, nil
}

// Resume binds surface and makes it current. The context takes ownership
// of surface and destroys it on Suspend or Destroy. A different surface
// bound before is destroyed.
func (c *Context) Resume(surface Surface) error {
	c.logger.Debug("Resume")
	if c.context == NoContext {
		return c.errs.New("Resume", int64(NotInitialized))
	}
	if surface == NoSurface {
		return c.errs.New("Resume", int64(InvalidValue))
	}
	if err := c.replaceSurface(surface); err != nil {
		return err
	}
	if err := c.querySize(); err != nil {
		return err
	}
	return c.makeCurrent()
}

// ResumeWindow creates a surface for window and makes it current,
// destroying the surface bound before.
func (c *Context) ResumeWindow(window NativeWindow) error {
	c.logger.Debug("ResumeWindow")
	if c.context == NoContext {
		return c.errs.New("ResumeWindow", int64(NotInitialized))
	}

	s := c.drv.CreateWindowSurface(c.display, c.Config(), window, []Int{None})
	if s == NoSurface {
		code := c.drv.GetError()
		if code == Success {
			// some drivers return no surface without raising an error
			code = BadNativeWindow
		}
		return c.report("eglCreateWindowSurface", code)
	}
	if err := c.replaceSurface(s); err != nil {
		c.drv.DestroySurface(c.display, s)
		return err
	}
	if err := c.querySize(); err != nil {
		return err
	}
	c.logger.Debugf("EGL create: surface %#x %d %d", s, c.width, c.height)
	return c.makeCurrent()
}

// replaceSurface binds s, destroying the surface owned until now.
func (c *Context) replaceSurface(s Surface) error {
	if old := c.surface; old != NoSurface && old != s {
		c.logger.Warnf("EGL destroy: surface %#x", old)
		c.surface = NoSurface
		c.width, c.height = 0, 0
		if !c.drv.DestroySurface(c.display, old) {
			return c.report("eglDestroySurface", c.drv.GetError())
		}
	}
	c.surface = s
	return nil
}

func (c *Context) querySize() error {
	w, okw := c.drv.QuerySurface(c.display, c.surface, Width)
	h, okh := c.drv.QuerySurface(c.display, c.surface, Height)
	if code := c.drv.GetError(); code != Success || !okw || !okh {
		if code == Success {
			code = BadSurface
		}
		return c.report("eglQuerySurface", code)
	}
	c.width, c.height = w, h
	return nil
}

func (c *Context) makeCurrent() error {
	c.logger.Debugf("EGL current: %#x/%#x %#x", c.surface, c.surface, c.context)
	if !c.drv.MakeCurrent(c.display, c.surface, c.surface, c.context) {
		return c.report("eglMakeCurrent", c.drv.GetError())
	}
	return nil
}

// Suspend releases the surface while keeping the context alive.
func (c *Context) Suspend() error {
	c.logger.Debug("Suspend")
	if c.context == NoContext {
		return c.errs.New("Suspend", int64(NotInitialized))
	}

	// OpenGL ES 3.1 accepts a context without surfaces, 3.0 reports an error.
	// Consume it and unbind the context as well.
	c.logger.Debugf("EGL current: NoSurface/NoSurface %#x", c.context)
	if !c.drv.MakeCurrent(c.display, NoSurface, NoSurface, c.context) {
		c.report("eglMakeCurrent", c.drv.GetError())
		c.drv.MakeCurrent(c.display, NoSurface, NoSurface, NoContext)
	}

	if c.surface != NoSurface {
		c.logger.Warnf("EGL destroy: surface %#x", c.surface)
		if !c.drv.DestroySurface(c.display, c.surface) {
			return c.report("eglDestroySurface", c.drv.GetError())
		}
		c.surface = NoSurface
		c.width, c.height = 0, 0
	}
	return nil
}

// Swap presents the surface. When the context is lost, the context is
// destroyed before the error is returned.
func (c *Context) Swap() error {
	if c.drv.SwapBuffers(c.display, c.surface) {
		return nil
	}
	code := c.drv.GetError()
	switch code {
	case BadContext, ContextLost:
		c.Destroy()
	}
	return c.errs.New("eglSwapBuffers", int64(code))
}

// SwapInterval sets the minimum number of video frames per swap.
func (c *Context) SwapInterval(interval Int) error {
	if !c.drv.SwapInterval(c.display, interval) {
		return c.report("eglSwapInterval", c.drv.GetError())
	}
	return nil
}

// Destroy unbinds and destroys the context and its surface. The display
// is forgotten, not terminated: its lifetime belongs to whoever got it.
// Calling Destroy again does nothing.
func (c *Context) Destroy() error {
	c.logger.Debug("Destroy")
	if c.display == NoDisplay {
		return nil
	}

	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	c.logger.Debug("EGL current: NoSurface/NoSurface NoContext")
	if !c.drv.MakeCurrent(c.display, NoSurface, NoSurface, NoContext) {
		keep(c.report("eglMakeCurrent", c.drv.GetError()))
	}
	if c.context != NoContext {
		c.logger.Warnf("EGL destroy: context %#x", c.context)
		if !c.drv.DestroyContext(c.display, c.context) {
			keep(c.report("eglDestroyContext", c.drv.GetError()))
		}
		c.context = NoContext
	}
	if c.surface != NoSurface {
		c.logger.Warnf("EGL destroy: surface %#x", c.surface)
		if !c.drv.DestroySurface(c.display, c.surface) {
			keep(c.report("eglDestroySurface", c.drv.GetError()))
		}
		c.surface = NoSurface
		c.width, c.height = 0, 0
	}
	c.display = NoDisplay
	return first
}

func (c *Context) report(op string, code Code) error {
	return errcode.Report(c.logger, c.errs, op, int64(code))
}

// Terminate releases a display obtained from GetDisplay or GetPlatformDisplay.
// Contexts living on it must be destroyed first.
func Terminate(drv Driver, display Display) error {
	if display == NoDisplay {
		return nil
	}
	if !drv.Terminate(display) {
		return errcode.Report(nil, NewErrorDomain(), "eglTerminate", int64(drv.GetError()))
	}
	return nil
}
