/*
Package qgl binds a native OpenGL driver library at runtime, based on [purego].

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. The driver library is opened with dlopen, first through the system search path (lazy, global),
    then from the current working directory (lazy, local).
 2. Every entry point the renderer needs is looked up by name and kept in a [Slots] table.
    Names are grouped as [Core], [Platform], [Swap] and [Extension].
 3. Core and Platform symbols are required, Swap symbols are optional, Extension symbols are
    never resolved here: they stay null until a later capability step binds them through [Binding.ProcAddress].
 4. No cgo is required.

# Notes

 1. A [Binding] is not thread-safe. Initialize, Shutdown and any use of the resolved slots must not overlap.
 2. A failed Initialize may leave the library open with some slots bound. Always call [Binding.Shutdown] after a failure.
 3. Shutdown sleeps a short cool-down before dlclose, some driver stacks crash the machine when libGL is unloaded too early.

# Use

	b := qgl.NewBinding(qgl.OSLoader{}, nil)
	if err := b.Initialize("libGL.so.1"); err != nil {
		_ = b.Shutdown()
		return err
	}
	defer b.Shutdown()
	clear := qgl.MustFunc[func(mask uint32)](b, "glClear")
	clear(0x4000)

# Probe tool

The probe cli loads a driver library and reports which symbols it exports:

	go install github.com/ZenLiuCN/qgl/probe@latest
	probe inspect libGL.so.1

[purego]: https://github.com/ebitengine/purego
*/
package qgl
