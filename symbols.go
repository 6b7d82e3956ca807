package qgl

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ZenLiuCN/fn"
)

// Group of entry points sharing the same resolution policy.
type Group int

const (
	Core      Group = iota // required for any rendering
	Platform               // window system integration, required on this OS
	Swap                   // swap interval control, optional
	Extension              // bound later by capability negotiation, never resolved on Initialize
	groups
)

var groupNames = [groups]string{"core", "platform", "swap", "extension"}

func (g Group) String() string {
	if g < 0 || g >= groups {
		return fmt.Sprintf("group(%d)", int(g))
	}
	return groupNames[g]
}

// Required reports whether a missing symbol of this group fails Initialize.
func (g Group) Required() bool {
	return g == Core || g == Platform
}

// Groups returns every group in resolution order.
func Groups() []Group {
	return []Group{Core, Platform, Swap, Extension}
}

var (
	coreProcs = []string{
		"glAlphaFunc",
		"glBegin",
		"glBindTexture",
		"glBlendFunc",
		"glClear",
		"glClearColor",
		"glClearDepth",
		"glClearStencil",
		"glClipPlane",
		"glColor3f",
		"glColor4f",
		"glColor4ubv",
		"glColorMask",
		"glColorPointer",
		"glCopyTexSubImage2D",
		"glCullFace",
		"glDeleteTextures",
		"glDepthFunc",
		"glDepthMask",
		"glDepthRange",
		"glDisable",
		"glDisableClientState",
		"glDrawArrays",
		"glDrawBuffer",
		"glDrawElements",
		"glEnable",
		"glEnableClientState",
		"glEnd",
		"glFinish",
		"glFlush",
		"glGenTextures",
		"glGetBooleanv",
		"glGetError",
		"glGetIntegerv",
		"glGetString",
		"glLineWidth",
		"glLoadIdentity",
		"glLoadMatrixf",
		"glMatrixMode",
		"glNormalPointer",
		"glOrtho",
		"glPolygonMode",
		"glPolygonOffset",
		"glPopMatrix",
		"glPushMatrix",
		"glReadPixels",
		"glScissor",
		"glShadeModel",
		"glStencilFunc",
		"glStencilMask",
		"glStencilOp",
		"glTexCoord2f",
		"glTexCoord2fv",
		"glTexCoordPointer",
		"glTexEnvf",
		"glTexImage2D",
		"glTexParameterf",
		"glTexParameteri",
		"glTexSubImage2D",
		"glTranslatef",
		"glVertex2f",
		"glVertex3f",
		"glVertex3fv",
		"glVertexPointer",
		"glViewport",
	}
	extensionProcs = []string{
		"glActiveTextureARB",
		"glClientActiveTextureARB",
		"glMultiTexCoord2fARB",
		"glLockArraysEXT",
		"glUnlockArraysEXT",
	}
)

// Procs returns a copy of the symbol names of a group, in resolution order.
func Procs(g Group) []string {
	switch g {
	case Core:
		return slices.Clone(coreProcs)
	case Platform:
		return slices.Clone(platformProcs)
	case Swap:
		return slices.Clone(swapProcs)
	case Extension:
		return slices.Clone(extensionProcs)
	}
	return nil
}

type slot struct {
	group Group
	index int
}

var (
	tables = [groups][]string{coreProcs, platformProcs, swapProcs, extensionProcs}
	slotOf = func() map[string]slot {
		m := make(map[string]slot)
		for g, names := range tables {
			for i, name := range names {
				m[name] = slot{Group(g), i}
			}
		}
		return m
	}()
)

// GroupOf returns the group a symbol name belongs to.
func GroupOf(name string) (Group, bool) {
	s, ok := slotOf[name]
	return s.group, ok
}

// Slots holds one Proc per known symbol name.
//
// A slot is either a resolved address or null. The zero value is usable, all slots null.
type Slots struct {
	procs [groups][]Proc
}

func (s *Slots) group(g Group) []Proc {
	if s.procs[g] == nil {
		s.procs[g] = make([]Proc, len(tables[g]))
	}
	return s.procs[g]
}

// Get the Proc stored for a symbol name, null when unknown or unresolved.
func (s *Slots) Get(name string) Proc {
	x, ok := slotOf[name]
	if !ok || s.procs[x.group] == nil {
		return 0
	}
	return s.procs[x.group][x.index]
}

// Set store a Proc for a known symbol name, returns false when the name is unknown.
func (s *Slots) Set(name string, p Proc) bool {
	x, ok := slotOf[name]
	if !ok {
		return false
	}
	s.group(x.group)[x.index] = p
	return true
}

// Clear null every slot of a group.
func (s *Slots) Clear(g Group) {
	clear(s.group(g))
}

// Reset null every slot of every group.
func (s *Slots) Reset() {
	for g := Core; g < groups; g++ {
		s.Clear(g)
	}
}

// Bound dump the names of non-null slots inside a group.
func (s *Slots) Bound(g Group) (v []string) {
	for i, p := range s.procs[g] {
		if p.Valid() {
			v = append(v, tables[g][i])
		}
	}
	return
}

// Missing dump the names of null slots inside a group.
func (s *Slots) Missing(g Group) (v []string) {
	for i, name := range tables[g] {
		if s.procs[g] == nil || !s.procs[g][i].Valid() {
			v = append(v, name)
		}
	}
	return
}

// Empty reports whether all slots are null.
func (s *Slots) Empty() bool {
	for g := Core; g < groups; g++ {
		if len(s.Bound(g)) > 0 {
			return false
		}
	}
	return true
}

var (
	// ErrLibraryNotFound occurs when the library can't be opened from the search path nor the working directory.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrMissingSymbol occurs when a symbol can't be resolved.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrUnloaded occurs when use a Binding which holds no library.
	ErrUnloaded = errors.New("library not loaded")
	// ErrUnsupported occurs when the OS has no dynamic loader support.
	ErrUnsupported = errors.New("dynamic loading unsupported")
)

// ResolveError reports the required symbols of a group which failed to resolve.
type ResolveError struct {
	Library string
	Group   Group
	Missing map[string]error // symbol name to the lookup error
}

func (e *ResolveError) Error() string {
	names := fn.MapKeys(e.Missing)
	slices.Sort(names)
	return fmt.Sprintf("can't resolve required %s function from %s: %s", e.Group, e.Library, strings.Join(names, ", "))
}

func (e *ResolveError) Unwrap() error {
	return ErrMissingSymbol
}
