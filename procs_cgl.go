//go:build darwin

package qgl

var (
	platformProcs = []string{
		"CGLChoosePixelFormat",
		"CGLDestroyPixelFormat",
		"CGLCreateContext",
		"CGLDestroyContext",
		"CGLSetCurrentContext",
		"CGLFlushDrawable",
	}
	swapProcs = []string{
		"CGLSetParameter",
	}
)

// DefaultLibrary is the driver library name used when none configured.
const DefaultLibrary = "/System/Library/Frameworks/OpenGL.framework/OpenGL"
