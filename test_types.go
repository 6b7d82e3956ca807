package qgl

import (
	"fmt"
	"slices"
)

// FakeLoader is an in-memory Loader for testing purpose.
//
// Libraries maps a path to the symbols it exports, every symbol gets a distinct non-null address.
// Global records the visibility flag of each Open, Closed the handles released by Close.
type FakeLoader struct {
	Libraries map[string][]string
	Global    map[string]bool
	Closed    []Handle
	CloseErr  error

	opened []string
}

// NewFakeLoader create a FakeLoader exporting the given symbols under path.
func NewFakeLoader(path string, symbols ...string) *FakeLoader {
	return &FakeLoader{
		Libraries: map[string][]string{path: symbols},
		Global:    map[string]bool{},
	}
}

// AllProcs returns every known symbol name except those excluded.
func AllProcs(exclude ...string) (v []string) {
	for _, g := range Groups() {
		for _, name := range tables[g] {
			if !slices.Contains(exclude, name) {
				v = append(v, name)
			}
		}
	}
	return
}

func (f *FakeLoader) Open(path string, global bool) (Handle, error) {
	if _, ok := f.Libraries[path]; !ok {
		return 0, fmt.Errorf("%s: cannot open shared object file: No such file or directory", path)
	}
	if f.Global == nil {
		f.Global = map[string]bool{}
	}
	f.Global[path] = global
	f.opened = append(f.opened, path)
	return Handle(len(f.opened)), nil
}

func (f *FakeLoader) Lookup(h Handle, name string) (Proc, error) {
	if h == 0 || int(h) > len(f.opened) {
		return 0, fmt.Errorf("invalid handle %d", h)
	}
	path := f.opened[h-1]
	i := slices.Index(f.Libraries[path], name)
	if i < 0 {
		return 0, fmt.Errorf("%s: undefined symbol: %s", path, name)
	}
	return Proc(0x1000*int(h) + i + 1), nil
}

func (f *FakeLoader) Close(h Handle) error {
	f.Closed = append(f.Closed, h)
	return f.CloseErr
}

// Opened dump the paths passed to successful Open calls, in order.
func (f *FakeLoader) Opened() []string {
	return slices.Clone(f.opened)
}
