package qgl

import (
	"bytes"
	"testing"

	"github.com/ZenLiuCN/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	l := NewFakeLoader(libName, AllProcs("glClear", "glLockArraysEXT")...)
	b, s, _ := newTestBinding(l)
	r, err := b.Inspect(libName)
	require.NoError(t, err)
	assert.False(t, r.Usable())
	assert.Equal(t, []string{"glClear"}, r.Missing[Core])
	assert.Equal(t, []string{"glLockArraysEXT"}, r.Missing[Extension])
	assert.Empty(t, r.Missing[Platform])
	assert.Len(t, r.Present[Swap], len(swapProcs))
	assert.Contains(t, r.String(), "core: 64 present, 1 missing")
	// opened by Inspect, so released by it
	assert.False(t, b.Loaded())
	assert.Len(t, l.Closed, 1)
	assert.Len(t, s.calls, 1)

	out := new(bytes.Buffer)
	r.Dump(out)
	assert.Contains(t, out.String(), "Library: (string) (len=10) \"libGL.so.1\"")
	assert.Contains(t, out.String(), "(string) (len=7) \"glClear\"")
	assert.NotContains(t, out.String(), "unusable")
}

func TestInspectHeld(t *testing.T) {
	l := NewFakeLoader(libName, AllProcs()...)
	b, _, _ := newTestBinding(l)
	fn.Panic(b.Initialize(libName))
	r := fn.Panic1(b.Inspect("ignored"))
	assert.True(t, r.Usable())
	assert.Equal(t, libName, r.Library)
	assert.True(t, b.Ready())
	assert.Empty(t, l.Closed)
}

func TestInspectNotFound(t *testing.T) {
	b, _, _ := newTestBinding(NewFakeLoader("other.so"))
	_, err := b.Inspect(libName)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}
