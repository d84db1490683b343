// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

// Opaque EGL handles. The driver hands them out and takes them back,
// they are never dereferenced on the Go side.
type (
	Display       uintptr
	Config        uintptr
	ContextHandle uintptr
	Surface       uintptr
	NativeDisplay uintptr
	NativeWindow  uintptr
)

// Null handles.
const (
	NoDisplay      Display       = 0
	NoContext      ContextHandle = 0
	NoSurface      Surface       = 0
	NoConfig       Config        = 0
	DefaultDisplay NativeDisplay = 0
)

// Int mirrors EGLint.
type Int = int32

// Code is an EGL error code as returned by eglGetError.
type Code = Int

// Error codes.
const (
	Success           Code = 0x3000
	NotInitialized    Code = 0x3001
	BadAccess         Code = 0x3002
	BadAlloc          Code = 0x3003
	BadAttribute      Code = 0x3004
	BadConfig         Code = 0x3005
	BadContext        Code = 0x3006
	BadCurrentSurface Code = 0x3007
	BadDisplay        Code = 0x3008
	BadMatch          Code = 0x3009
	BadNativePixmap   Code = 0x300A
	BadNativeWindow   Code = 0x300B
	BadParameter      Code = 0x300C
	BadSurface        Code = 0x300D
	ContextLost       Code = 0x300E

	// InvalidValue is GL_INVALID_VALUE, returned when a required
	// handle argument is missing.
	InvalidValue Code = 0x0501
)

// Attributes and values.
const (
	None     Int = 0x3038
	True     Int = 1
	False    Int = 0
	DontCare Int = -1

	AlphaSize      Int = 0x3021
	BlueSize       Int = 0x3022
	GreenSize      Int = 0x3023
	RedSize        Int = 0x3024
	DepthSize      Int = 0x3025
	StencilSize    Int = 0x3026
	SurfaceType    Int = 0x3033
	RenderableType Int = 0x3040
	Height         Int = 0x3056
	Width          Int = 0x3057

	PbufferBit   Int = 0x0001
	WindowBit    Int = 0x0004
	OpenGLES2Bit Int = 0x0004
	OpenGLES3Bit Int = 0x0040
	OpenGLBit    Int = 0x0008

	ContextMajorVersion  Int = 0x3098
	ContextMinorVersion  Int = 0x30FB
	ContextClientVersion Int = 0x3098
)

// String names for QueryString.
const (
	Vendor     Int = 0x3053
	Version    Int = 0x3054
	Extensions Int = 0x3055
	ClientAPIs Int = 0x308D
)

// API is a client rendering API for BindAPI.
type API uint32

// Client APIs.
const (
	OpenGLESAPI API = 0x30A0
	OpenGLAPI   API = 0x30A2
)

// ANGLE platform attributes (EGL_ANGLE_platform_angle).
const (
	PlatformANGLE                   uint32 = 0x3202
	PlatformANGLEType               Int    = 0x3203
	PlatformANGLEMaxVersionMajor    Int    = 0x3204
	PlatformANGLEMaxVersionMinor    Int    = 0x3205
	PlatformANGLETypeD3D11          Int    = 0x3208
	PlatformANGLEDeviceType         Int    = 0x3209
	PlatformANGLEDeviceTypeHardware Int    = 0x322A
	DirectCompositionANGLE          Int    = 0x33A5
)
