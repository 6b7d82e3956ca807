//go:build !darwin

package qgl

var (
	platformProcs = []string{
		"glXChooseVisual",
		"glXCreateContext",
		"glXDestroyContext",
		"glXMakeCurrent",
		"glXCopyContext",
		"glXSwapBuffers",
	}
	swapProcs = []string{
		"glXSwapIntervalEXT",
	}
)

// DefaultLibrary is the driver library name used when none configured.
const DefaultLibrary = "libGL.so.1"
