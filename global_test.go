package qgl

import (
	"testing"

	"github.com/ZenLiuCN/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	saved := Default
	defer func() { Default = saved }()
	l := NewFakeLoader(libName, AllProcs()...)
	Default, _, _ = newTestBinding(l)

	assert.Zero(t, ProcAddress("glClear"))
	fn.Panic(Init(libName))
	require.True(t, Default.Ready())
	assert.Equal(t, Default.Slots().Get("glClear"), ProcAddress("glClear"))
	fn.Panic(Shutdown())
	assert.False(t, Default.Loaded())
	assert.Zero(t, ProcAddress("glClear"))
	fn.Panic(Shutdown())
}
