package qgl

type (
	//Proc is the address of a resolved entry point, zero means null.
	Proc uintptr
	//Handle is an opaque reference to an opened shared library, zero means not loaded.
	Handle uintptr
	//Loader opens shared libraries and looks up symbols in them.
	//
	//[OSLoader] is backed by the dynamic linker of the OS, [FakeLoader] keeps everything in memory.
	Loader interface {
		Open(path string, global bool) (Handle, error) //open a library, global exports its symbols to later loaded libraries; always lazy binding
		Lookup(h Handle, name string) (Proc, error)    //lookup a symbol inside an opened library
		Close(h Handle) error                          //release an opened library
	}
)

// Valid reports whether the Proc is not null.
func (p Proc) Valid() bool {
	return p != 0
}
