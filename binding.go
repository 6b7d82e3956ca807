package qgl

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultCoolDown is the pause before a held library is closed.
const DefaultCoolDown = 250 * time.Millisecond

type (
	//Printer is the diagnostic sink, *log.Logger satisfies it.
	Printer interface {
		Printf(format string, v ...any)
	}
	//Binding holds one opened driver library and the entry points resolved from it.
	//
	//Use Steps:
	//
	//	1. [Binding.Initialize] to open the library and resolve all groups.
	//	2. Use the slots via [Binding.Lookup] or [Func].
	//	3. [Binding.Shutdown] to release the library, also after a failed Initialize.
	//
	//Note:
	//
	//	A Binding is not thread-safe, the owner must serialize Initialize, Shutdown and slot usage.
	Binding struct {
		//ProcAddress resolves a symbol from the held library, installed by a successful open and nil after Shutdown.
		//It is used by the extension negotiation which binds [Extension] slots later.
		ProcAddress func(name string) Proc

		loader   Loader
		log      Printer
		debug    bool
		coolDown time.Duration
		sleep    func(time.Duration)
		getwd    func() (string, error)

		library string
		handle  Handle
		slots   Slots
		errors  int
		ready   bool
	}
)

// NewBinding create a Binding on the Loader, nil Printer writes to the standard logger.
// An optional debug parameter enables debug logging.
func NewBinding(l Loader, p Printer, debug ...bool) *Binding {
	if p == nil {
		p = log.Default()
	}
	return &Binding{
		loader:   l,
		log:      p,
		debug:    len(debug) > 0 && debug[0],
		coolDown: DefaultCoolDown,
		sleep:    time.Sleep,
		getwd:    os.Getwd,
	}
}

// SetCoolDown change the pause before the library is closed, zero or negative disables it.
func (b *Binding) SetCoolDown(d time.Duration) {
	b.coolDown = d
}

// CoolDown returns the pause before the library is closed.
func (b *Binding) CoolDown() time.Duration {
	return b.coolDown
}

// Loaded reports whether a library handle is held, this is true after a partially failed Initialize.
func (b *Binding) Loaded() bool {
	return b.handle != 0
}

// Ready reports whether the last Initialize succeeded and no Shutdown happened since.
func (b *Binding) Ready() bool {
	return b.ready
}

// Handle returns the held library handle, zero when nothing loaded.
func (b *Binding) Handle() Handle {
	return b.handle
}

// Library returns the name given to the Initialize which opened the held library.
func (b *Binding) Library() string {
	return b.library
}

// Slots returns the slot table, slots of [Extension] may be set through it.
func (b *Binding) Slots() *Slots {
	return &b.slots
}

// Initialize open the library and resolve every group.
//
// The library is first opened through the search path with global symbol visibility, when that fails and name is
// not empty, it is opened again as an absolute path under the working directory with local visibility.
// A library already held is reused.
//
// Failure to open wraps ErrLibraryNotFound. Failure to resolve a [Core] or [Platform] symbol returns a *ResolveError,
// in that case the library stays opened with partially bound slots, and the caller should call Shutdown.
// Missing [Swap] symbols are tolerated. [Extension] slots are always nulled.
func (b *Binding) Initialize(name string) (err error) {
	b.ready = false
	b.log.Printf("...initializing QGL")
	if b.handle == 0 {
		var h Handle
		if h, err = b.open(name); err != nil {
			b.log.Printf("...loading '%s' : failed", name)
			b.log.Printf("QGL_Init: %s", err)
			return
		}
		b.handle = h
		b.library = name
	}
	b.log.Printf("...loading '%s' : succeeded", name)

	b.ProcAddress = b.resolve
	b.errors = 0

	for _, g := range []Group{Core, Platform} {
		if missing := b.bind(g); b.errors > 0 {
			err = &ResolveError{Library: name, Group: g, Missing: missing}
			b.log.Printf("QGL_Init: %s", err)
			return
		}
	}
	if missing := b.bind(Swap); b.debug && len(missing) > 0 {
		b.log.Printf("optional symbols not found: %v", b.slots.Missing(Swap))
	}
	b.slots.Clear(Extension)
	b.ready = true
	return
}

func (b *Binding) open(name string) (h Handle, err error) {
	if h, err = b.loader.Open(name, true); err == nil && h != 0 {
		return
	}
	err = dlError(err)
	if name == "" {
		return 0, fmt.Errorf("%w: can't load %q from search path: %s", ErrLibraryNotFound, name, err)
	}
	if b.debug {
		b.log.Printf("search path failed for %s: %s", name, err)
	}
	var wd string
	if wd, err = b.getwd(); err != nil {
		return 0, fmt.Errorf("%w: can't load %s from search path or current dir: %s", ErrLibraryNotFound, name, err)
	}
	path := filepath.Join(wd, name)
	if h, err = b.loader.Open(path, false); err == nil && h != 0 {
		if b.debug {
			b.log.Printf("loaded %s from current dir", path)
		}
		return
	}
	return 0, fmt.Errorf("%w: can't load %s from search path or current dir: %s", ErrLibraryNotFound, name, dlError(err))
}

func dlError(err error) error {
	if err == nil {
		return errors.New("null handle")
	}
	return err
}

// bind resets the error count and resolves every slot of the group.
func (b *Binding) bind(g Group) (missing map[string]error) {
	b.errors = 0
	procs := b.slots.group(g)
	for i, name := range tables[g] {
		p, err := b.lookup(name)
		procs[i] = p
		if err != nil {
			if missing == nil {
				missing = make(map[string]error)
			}
			missing[name] = err
		}
	}
	if b.debug {
		b.log.Printf("resolved %s: %d of %d", g, len(tables[g])-len(missing), len(tables[g]))
	}
	return
}

func (b *Binding) lookup(name string) (p Proc, err error) {
	if b.handle == 0 {
		b.errors++
		return 0, ErrUnloaded
	}
	if p, err = b.loader.Lookup(b.handle, name); err == nil && !p.Valid() {
		err = fmt.Errorf("%w: %s", ErrMissingSymbol, name)
	}
	if err != nil {
		b.errors++
		return 0, err
	}
	return
}

func (b *Binding) resolve(name string) Proc {
	p, _ := b.lookup(name)
	return p
}

// Lookup fetch a resolved slot by symbol name.
//
// It returns ErrUnloaded when no library is held and ErrMissingSymbol when the slot is null or unknown.
func (b *Binding) Lookup(name string) (Proc, error) {
	if b.handle == 0 {
		return 0, ErrUnloaded
	}
	p := b.slots.Get(name)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrMissingSymbol, name)
	}
	return p, nil
}

// Shutdown release the held library and null every slot.
//
// When a library is held it sleeps the cool-down first. Calling Shutdown with nothing loaded makes no OS call.
// A close failure is reported and returned, the Binding is left unloaded anyway.
func (b *Binding) Shutdown() (err error) {
	if b.handle != 0 {
		if b.coolDown > 0 {
			if b.debug {
				b.log.Printf("cool down %s before close %s", b.coolDown, b.library)
			}
			b.sleep(b.coolDown)
		}
		if err = b.loader.Close(b.handle); err != nil {
			b.log.Printf("QGL_Shutdown: close %s: %s", b.library, err)
		}
		b.handle = 0
	}
	b.slots.Reset()
	b.ProcAddress = nil
	b.library = ""
	b.errors = 0
	b.ready = false
	return
}
