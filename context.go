package axjson

import (
	"strconv"
	"time"
)

// Context carries per-call validation state. It is passed by value: Field and
// Index return extended copies. All copies made during one top-level call
// share the same key-remap queue.
type Context struct {
	path    string
	reverse bool
	now     func() time.Time
	remap   *remapQueue
}

type remapEntry struct {
	object   map[string]any
	from, to string
}

// remapQueue collects key renames requested in reverse mode. Entries are
// applied once, in order, after the whole tree has been validated.
type remapQueue struct {
	entries []remapEntry
}

func newContext(reverse bool, opt Options) Context {
	c := Context{reverse: reverse, now: opt.Now}
	if reverse {
		c.remap = &remapQueue{}
	}
	return c
}

// Path returns the location being validated ("" for the root).
func (c Context) Path() string { return c.path }

// Reverse reports whether the call runs in reverse (output) direction.
func (c Context) Reverse() bool { return c.reverse }

// Now returns the current instant from the configured clock. It is read on
// every call.
func (c Context) Now() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// Field returns a copy of c located at the record field name.
func (c Context) Field(name string) Context {
	c.path = c.path + "." + name
	return c
}

// Index returns a copy of c located at sequence element i.
func (c Context) Index(i int) Context {
	c.path = c.path + "[" + strconv.Itoa(i) + "]"
	return c
}

// Fail builds a ValidationError at the current path.
func (c Context) Fail(kind, description string) *ValidationError {
	return &ValidationError{Path: c.path, Kind: kind, Description: description}
}

func (c Context) queueRemap(object map[string]any, from, to string) {
	if c.remap == nil {
		return
	}
	c.remap.entries = append(c.remap.entries, remapEntry{object: object, from: from, to: to})
}

// Mark returns the current length of the remap queue. Combinators that may
// discard or merge branch results use it with Rewind and Retarget.
func (c Context) Mark() int {
	if c.remap == nil {
		return 0
	}
	return len(c.remap.entries)
}

// Rewind drops remap entries queued after mark.
func (c Context) Rewind(mark int) {
	if c.remap == nil || mark >= len(c.remap.entries) {
		return
	}
	c.remap.entries = c.remap.entries[:mark]
}

// Retarget redirects remap entries queued after mark for the map from so they
// apply to the map to instead.
func (c Context) Retarget(mark int, from, to map[string]any) {
	if c.remap == nil {
		return
	}
	for i := mark; i < len(c.remap.entries); i++ {
		if sameMap(c.remap.entries[i].object, from) {
			c.remap.entries[i].object = to
		}
	}
}

func (q *remapQueue) apply() {
	if q == nil {
		return
	}
	for _, e := range q.entries {
		v, ok := e.object[e.from]
		if !ok {
			continue
		}
		e.object[e.to] = v
		delete(e.object, e.from)
	}
	q.entries = nil
}
