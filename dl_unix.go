//go:build (darwin || freebsd || linux || netbsd) && !android

package qgl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// OSLoader is the Loader backed by the dynamic linker of the OS.
type OSLoader struct{}

func (OSLoader) Open(path string, global bool) (Handle, error) {
	mode := purego.RTLD_LAZY
	if global {
		mode |= purego.RTLD_GLOBAL
	} else {
		mode |= purego.RTLD_LOCAL
	}
	h, err := purego.Dlopen(path, mode)
	return Handle(h), err
}

func (OSLoader) Lookup(h Handle, name string) (Proc, error) {
	p, err := purego.Dlsym(uintptr(h), name)
	return Proc(p), err
}

func (OSLoader) Close(h Handle) error {
	return purego.Dlclose(uintptr(h))
}

// Func converts a resolved slot into a callable Go function of type T.
//
// T must be a func type which purego can call, it returns ErrUnloaded when the binding holds no library,
// ErrMissingSymbol when the slot is null.
func Func[T any](b *Binding, name string) (f T, err error) {
	p, err := b.Lookup(name)
	if err != nil {
		return
	}
	defer func() {
		switch x := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("bind %s: %w", name, x)
		default:
			err = fmt.Errorf("bind %s: %v", name, x)
		}
	}()
	purego.RegisterFunc(&f, uintptr(p))
	if b.debug {
		b.log.Printf("bound %s at %x", name, uintptr(p))
	}
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
