// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package unity

import (
	"sync"

	"go.uber.org/unity/unityevent"
)

// Resolver holds one registered entry and its singleton. Resolvers are
// created by Register and Replace.
type Resolver struct {
	id        string
	entry     Entry
	container *Container

	mu        sync.Mutex
	given     Args
	binds     Binds
	protected bool
	instance  interface{}
	resolved  bool
}

func newResolver(c *Container, id string, entry Entry) *Resolver {
	return &Resolver{id: id, entry: entry, container: c}
}

// ID returns the identifier the Resolver is registered under.
func (r *Resolver) ID() string { return r.id }

// Entry returns the registered entry.
func (r *Resolver) Entry() Entry { return r.entry }

// Resolve returns the singleton, building it with Make on first use. A
// failed build is not cached; the next call tries again. When concurrent
// first calls race, the first instance stored is returned to all of them.
func (r *Resolver) Resolve() (interface{}, error) {
	return r.resolve(r.container)
}

func (r *Resolver) resolve(c *Container) (interface{}, error) {
	start := c.clock.Now()

	r.mu.Lock()
	if r.resolved {
		v := r.instance
		r.mu.Unlock()
		c.log.LogEvent(&unityevent.Resolved{ID: r.id, Runtime: c.clock.Since(start)})
		return v, nil
	}
	r.mu.Unlock()

	v, err := r.make(c, nil)
	if err != nil {
		c.log.LogEvent(&unityevent.Resolved{ID: r.id, Err: err})
		return nil, err
	}

	r.mu.Lock()
	if !r.resolved {
		r.instance = v
		r.resolved = true
	}
	v = r.instance
	r.mu.Unlock()

	c.log.LogEvent(&unityevent.Resolved{ID: r.id, Runtime: c.clock.Since(start)})
	return v, nil
}

// Make builds a new instance of the entry, ignoring the singleton.
//
// Protected resolvers return the raw entry payload: the value, the
// FactoryFunc, the reflect.Type or the constructor function. Otherwise
// args are merged over the given arguments, factories are called with the
// container and types are built with the resolver's binds.
func (r *Resolver) Make(args Args) (interface{}, error) {
	return r.make(r.container, args)
}

// make builds the entry on behalf of c. Nested lookups made by the entry's
// factory, binds and injected fields go through a Container that records
// r.id, so that reaching r again is reported as a cycle.
func (r *Resolver) make(c *Container, args Args) (interface{}, error) {
	r.mu.Lock()
	protected := r.protected
	given := r.given
	binds := r.binds
	r.mu.Unlock()

	if protected {
		return r.entry.raw(), nil
	}

	if err := c.cycle(r.id); err != nil {
		c.log.LogEvent(&unityevent.Made{ID: r.id, Kind: r.entry.Kind().String(), Err: err})
		return nil, err
	}

	start := c.clock.Now()
	nested := c.within(r.id)

	var (
		v          interface{}
		err        error
		resolution string
	)
	switch e := r.entry.(type) {
	case factoryEntry:
		v, err = e.fn(nested)
	case typeEntry:
		resolution = newResolutionID()
		v, err = nested.newBuilder(resolution, binds).build(e, given.merge(args))
	default:
		v = e.raw()
	}
	if err != nil {
		err = &ConstructionError{ID: r.id, Err: err}
		c.log.LogEvent(&unityevent.Made{
			ID:           r.id,
			Kind:         r.entry.Kind().String(),
			ResolutionID: resolution,
			Err:          err,
		})
		return nil, err
	}

	c.log.LogEvent(&unityevent.Made{
		ID:           r.id,
		Kind:         r.entry.Kind().String(),
		ResolutionID: resolution,
		Runtime:      c.clock.Since(start),
	})
	return v, nil
}

// Give sets the explicit constructor arguments used by every build of
// this entry, replacing any given before.
func (r *Resolver) Give(args Args) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.given = copyArgs(args)
	return r
}

// Given returns a copy of the given arguments.
func (r *Resolver) Given() Args {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyArgs(r.given)
}

// Bind sets binds that apply only to the parameters of the entry itself,
// ahead of the container binds. They do not reach autowired dependencies.
func (r *Resolver) Bind(binds Binds) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.binds = make(Binds, len(binds))
	for t, fn := range binds {
		r.binds[t] = fn
	}
	return r
}

// Binds returns a copy of the resolver's local binds.
func (r *Resolver) Binds() Binds {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(Binds, len(r.binds))
	for t, fn := range r.binds {
		out[t] = fn
	}
	return out
}

// Protect sets whether Make and Resolve hand out the raw entry instead of
// resolving it.
func (r *Resolver) Protect(enabled bool) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.protected = enabled
	return r
}

// Protected reports whether the resolver is protected.
func (r *Resolver) Protected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.protected
}

// Resolved reports whether the singleton has been built.
func (r *Resolver) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolved
}

func copyArgs(args Args) Args {
	if args == nil {
		return nil
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}
