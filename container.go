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
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/unity/internal/clock"
	"go.uber.org/unity/reflector"
	"go.uber.org/unity/unityevent"
)

// Container maps string identifiers to entries and resolves them into
// instances. It is safe for concurrent use.
//
// Factories and bind functions receive a Container that shares its registry
// with the one they were registered in, and also remembers which ids are
// being made. Calling Get or Make on it for one of those ids fails with a
// CircularDependencyError instead of recursing forever.
type Container struct {
	*registry

	// resolving lists the ids being made by the call that handed out this
	// Container, outermost first.
	resolving []string
}

type registry struct {
	mu             sync.RWMutex
	resolvers      map[string]*Resolver
	binds          map[reflect.Type]*BindResolver
	autowiring     bool
	useAnnotations bool

	reflector reflector.Reflector
	log       unityevent.Logger
	clock     clock.Clock
}

// New creates an empty container. Autowiring is enabled and annotations are
// disabled unless opts say otherwise.
func New(opts ...Option) *Container {
	c := &Container{registry: &registry{
		resolvers:  make(map[string]*Resolver),
		binds:      make(map[reflect.Type]*BindResolver),
		autowiring: true,
		reflector:  reflector.New(),
		log:        unityevent.NopLogger,
		clock:      clock.System,
	}}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Register adds entry under id. A nil entry registers a nil Value.
func (c *Container) Register(id string, entry Entry) (*Resolver, error) {
	if entry == nil {
		entry = Value(nil)
	}

	c.mu.Lock()
	if _, ok := c.resolvers[id]; ok {
		c.mu.Unlock()
		err := &DuplicateIDError{ID: id}
		c.log.LogEvent(&unityevent.Registered{ID: id, Kind: entry.Kind().String(), Err: err})
		return nil, err
	}
	r := newResolver(c.root(), id, entry)
	c.resolvers[id] = r
	c.mu.Unlock()

	c.log.LogEvent(&unityevent.Registered{
		ID:    id,
		Kind:  entry.Kind().String(),
		Entry: entry.String(),
	})
	return r, nil
}

// Unregister removes id from the container.
func (c *Container) Unregister(id string) error {
	c.mu.Lock()
	_, ok := c.resolvers[id]
	delete(c.resolvers, id)
	c.mu.Unlock()

	if !ok {
		err := &NotFoundError{ID: id}
		c.log.LogEvent(&unityevent.Unregistered{ID: id, Err: err})
		return err
	}
	c.log.LogEvent(&unityevent.Unregistered{ID: id})
	return nil
}

// Replace stores entry under id whether or not it is registered. The new
// Resolver starts empty; instances handed out by the old one stay valid
// but are no longer returned by Get.
func (c *Container) Replace(id string, entry Entry) *Resolver {
	if entry == nil {
		entry = Value(nil)
	}

	r := newResolver(c.root(), id, entry)
	c.mu.Lock()
	c.resolvers[id] = r
	c.mu.Unlock()

	c.log.LogEvent(&unityevent.Replaced{
		ID:    id,
		Kind:  entry.Kind().String(),
		Entry: entry.String(),
	})
	return r
}

// Get returns the singleton for id, building it on first use.
func (c *Container) Get(id string) (interface{}, error) {
	r, err := c.Resolver(id)
	if err != nil {
		c.log.LogEvent(&unityevent.Resolved{ID: id, Err: err})
		return nil, err
	}
	return r.resolve(c)
}

// Has reports whether id is registered.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.resolvers[id]
	return ok
}

// Make builds a new instance for id. args are merged over the arguments
// given to the Resolver, and win on collision.
func (c *Container) Make(id string, args Args) (interface{}, error) {
	r, err := c.Resolver(id)
	if err != nil {
		c.log.LogEvent(&unityevent.Made{ID: id, Err: err})
		return nil, err
	}
	return r.make(c, args)
}

// Resolver returns the Resolver registered under id.
func (c *Container) Resolver(id string) (*Resolver, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.resolvers[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return r, nil
}

// Len returns the number of registered identifiers.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.resolvers)
}

// IDs returns the registered identifiers in sorted order.
func (c *Container) IDs() []string {
	c.mu.RLock()
	ids := make([]string, 0, len(c.resolvers))
	for id := range c.resolvers {
		ids = append(ids, id)
	}
	c.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Bind makes every constructor parameter declared as t resolve to the
// value returned by fn. Binding t again replaces the previous function.
//
//	c.Bind(reflect.TypeOf((*io.Writer)(nil)).Elem(), func(*unity.Container) (interface{}, error) {
//		return os.Stdout, nil
//	})
func (c *Container) Bind(t reflect.Type, fn BindFunc) *Container {
	if t == nil {
		panic("unity: can not bind a nil type")
	}
	if fn == nil {
		panic(fmt.Sprintf("unity: nil bind function for %s", t))
	}

	c.mu.Lock()
	c.binds[t] = newBindResolver(c.root(), t, fn)
	c.mu.Unlock()

	c.log.LogEvent(&unityevent.Bound{TypeName: reflector.TypeName(t)})
	return c
}

// IsBound reports whether t has a bind.
func (c *Container) IsBound(t reflect.Type) bool {
	return c.bindFor(t) != nil
}

// GetBoundValue calls the bind function for t.
func (c *Container) GetBoundValue(t reflect.Type) (interface{}, error) {
	br := c.bindFor(t)
	if br == nil {
		return nil, &NotFoundError{Type: t}
	}
	return br.fn(c)
}

func (c *Container) bindFor(t reflect.Type) *BindResolver {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.binds[t]
}

// within returns a Container sharing c's registry that records id as being
// made.
func (c *Container) within(id string) *Container {
	resolving := make([]string, len(c.resolving), len(c.resolving)+1)
	copy(resolving, c.resolving)
	return &Container{registry: c.registry, resolving: append(resolving, id)}
}

// root returns a Container sharing c's registry with no ids being made.
func (c *Container) root() *Container {
	if len(c.resolving) == 0 {
		return c
	}
	return &Container{registry: c.registry}
}

// cycle returns the error for making id again, or nil if id is not being
// made.
func (c *Container) cycle(id string) error {
	for i, rid := range c.resolving {
		if rid == id {
			ids := append(append([]string(nil), c.resolving[i:]...), id)
			return &CircularDependencyError{IDs: ids}
		}
	}
	return nil
}

// EnableAutowiring sets whether class-typed parameters are built
// automatically. It affects resolutions started after the call.
func (c *Container) EnableAutowiring(enabled bool) *Container {
	c.mu.Lock()
	c.autowiring = enabled
	c.mu.Unlock()
	return c
}

// CanAutowire reports whether autowiring is enabled.
func (c *Container) CanAutowire() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.autowiring
}

// EnableUseAnnotations sets whether fields tagged `inject:"..."` are
// filled after construction.
func (c *Container) EnableUseAnnotations(enabled bool) *Container {
	c.mu.Lock()
	c.useAnnotations = enabled
	c.mu.Unlock()
	return c
}

// CanUseAnnotations reports whether annotation injection is enabled.
func (c *Container) CanUseAnnotations() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.useAnnotations
}

// Define registers fn as the constructor for the type it returns, so that
// Type entries and autowiring build that type by calling fn. params names
// each argument of fn using the "name[,optional]" syntax.
func (c *Container) Define(fn interface{}, params ...string) error {
	d, ok := c.reflector.(reflector.Definer)
	if !ok {
		return fmt.Errorf("reflector %T does not support constructor functions", c.reflector)
	}
	return d.Define(fn, params...)
}

// Build constructs an unregistered type the same way a Type entry would,
// using args as explicit constructor arguments.
func (c *Container) Build(t reflect.Type, args Args) (interface{}, error) {
	if t == nil {
		return nil, fmt.Errorf("unity: can not build a nil type")
	}
	return c.newBuilder(newResolutionID(), nil).build(typeEntry{typ: t}, args)
}
