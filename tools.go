package qgl

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Report of which symbols a library exports, per group.
type Report struct {
	Library string
	Present [groups][]string
	Missing [groups][]string
}

// Usable reports whether every required symbol is present.
func (r *Report) Usable() bool {
	for _, g := range Groups() {
		if g.Required() && len(r.Missing[g]) > 0 {
			return false
		}
	}
	return true
}

func (r *Report) String() string {
	s := strings.Builder{}
	s.WriteString(r.Library)
	if r.Usable() {
		s.WriteString(" usable\n")
	} else {
		s.WriteString(" unusable\n")
	}
	for _, g := range Groups() {
		s.WriteString(fmt.Sprintf("%s: %d present, %d missing\n", g, len(r.Present[g]), len(r.Missing[g])))
		for _, name := range r.Missing[g] {
			s.WriteString(fmt.Sprintf("\t- %s\n", name))
		}
	}
	return s.String()
}

// Dump writes the structure of the report, not its String form.
func (r *Report) Dump(w io.Writer) {
	sp := spew.NewDefaultConfig()
	sp.DisableMethods = true
	sp.MaxDepth = 4
	sp.Fdump(w, r)
}

// Inspect looks up every known symbol, including [Extension] ones, without touching the slots.
//
// A library already held is inspected in place. Otherwise name is opened the same way Initialize does and released
// through Shutdown afterward.
func (b *Binding) Inspect(name string) (r *Report, err error) {
	opened := false
	if b.handle == 0 {
		var h Handle
		if h, err = b.open(name); err != nil {
			return
		}
		b.handle = h
		b.library = name
		opened = true
	}
	r = &Report{Library: b.library}
	for _, g := range Groups() {
		for _, sym := range tables[g] {
			if p, e := b.loader.Lookup(b.handle, sym); e == nil && p.Valid() {
				r.Present[g] = append(r.Present[g], sym)
			} else {
				r.Missing[g] = append(r.Missing[g], sym)
			}
		}
	}
	if opened {
		err = b.Shutdown()
	}
	return
}
