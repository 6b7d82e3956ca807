//go:build linux && !android

package qgl

import (
	"errors"
	"testing"

	"github.com/ZenLiuCN/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSLoader(t *testing.T) {
	var l OSLoader
	h, err := l.Open("libc.so.6", false)
	if err != nil {
		t.Skipf("no glibc: %s", err)
	}
	p, err := l.Lookup(h, "getpid")
	require.NoError(t, err)
	assert.True(t, p.Valid())
	_, err = l.Lookup(h, "qgl_no_such_symbol")
	assert.Error(t, err)
	fn.Panic(l.Close(h))

	_, err = l.Open("libqgl-no-such-library.so", true)
	assert.Error(t, err)
}

func TestOSLoaderDriver(t *testing.T) {
	b := NewBinding(OSLoader{}, nil, debugging)
	b.SetCoolDown(0)
	defer func() { fn.Panic(b.Shutdown()) }()
	err := b.Initialize(DefaultLibrary)
	if errors.Is(err, ErrLibraryNotFound) {
		t.Skipf("no driver: %s", err)
	}
	require.NoError(t, err)
	requireGroupsBound(t, b, Core, Platform)
	getError, err := Func[func() uint32](b, "glGetError")
	require.NoError(t, err)
	require.NotNil(t, getError)
}

func TestOSLoaderMissing(t *testing.T) {
	b := NewBinding(OSLoader{}, nil, debugging)
	b.SetCoolDown(0)
	err := b.Initialize("libqgl-no-such-library.so")
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.False(t, b.Loaded())
}
