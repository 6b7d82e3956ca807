package qgl

// Default is the process-wide binding used by the package level functions.
//
// It is created on the OS loader with the standard logger. Replace it before the first Init when another loader or
// printer is wanted.
var Default = NewBinding(OSLoader{}, nil)

// Init initialize the Default binding, see [Binding.Initialize].
func Init(name string) error {
	return Default.Initialize(name)
}

// Shutdown the Default binding, see [Binding.Shutdown].
func Shutdown() error {
	return Default.Shutdown()
}

// ProcAddress resolves a symbol from the library held by Default, null when nothing loaded or not found.
func ProcAddress(name string) Proc {
	if f := Default.ProcAddress; f != nil {
		return f(name)
	}
	return 0
}
