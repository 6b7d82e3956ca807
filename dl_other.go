//go:build !((darwin || freebsd || linux || netbsd) && !android)

package qgl

// OSLoader is not available on this platform, every call returns ErrUnsupported.
type OSLoader struct{}

func (OSLoader) Open(string, bool) (Handle, error) {
	return 0, ErrUnsupported
}

func (OSLoader) Lookup(Handle, string) (Proc, error) {
	return 0, ErrUnsupported
}

func (OSLoader) Close(Handle) error {
	return ErrUnsupported
}

// Func is not available on this platform.
func Func[T any](b *Binding, name string) (f T, err error) {
	if _, err = b.Lookup(name); err != nil {
		return
	}
	err = ErrUnsupported
	return
}

// MustFunc same as Func but panics on error.
func MustFunc[T any](b *Binding, name string) T {
	f, err := Func[T](b, name)
	if err != nil {
		panic(err)
	}
	return f
}
