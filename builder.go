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
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/unity/internal/clock"
	"go.uber.org/unity/reflector"
	"go.uber.org/unity/unityevent"
)

// funcs instantiates Constructor entries. Their TypeInfo comes from
// reflector.Func, which the container's reflector may know nothing about.
var funcs = reflector.New()

// builder resolves the constructor graph of one Make call. It is never
// shared between calls, so it needs no locking.
type builder struct {
	c *Container

	// Resolver-local binds; consulted for the top-level type only.
	binds Binds

	resolution string
	path       []reflect.Type

	autowire  bool
	annotate  bool
	reflector reflector.Reflector
	log       unityevent.Logger
	clock     clock.Clock

	// dryRun walks the graph without calling binds or constructors.
	dryRun bool
}

func newResolutionID() string {
	return uuid.NewString()
}

func (c *Container) newBuilder(resolution string, binds Binds) *builder {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &builder{
		c:          c,
		binds:      binds,
		resolution: resolution,
		autowire:   c.autowiring,
		annotate:   c.useAnnotations,
		reflector:  c.reflector,
		log:        c.log,
		clock:      c.clock,
	}
}

// build constructs the type described by e with explicit args.
func (b *builder) build(e typeEntry, args Args) (interface{}, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.info != nil {
		return b.construct(e.info, funcs, args, b.binds)
	}

	info, err := b.reflector.Reflect(e.typ)
	if err != nil {
		return nil, err
	}
	return b.construct(info, b.reflector, args, b.binds)
}

func (b *builder) construct(
	info *reflector.TypeInfo,
	inst reflector.Reflector,
	args Args,
	local Binds,
) (v interface{}, err error) {
	if !info.Instantiable {
		return nil, &NonInstantiableError{Type: info.Type}
	}
	for _, t := range b.path {
		if t == info.Type {
			path := append(append([]reflect.Type(nil), b.path...), info.Type)
			return nil, &CircularDependencyError{Path: path}
		}
	}

	depth := len(b.path)
	b.path = append(b.path, info.Type)
	defer func() { b.path = b.path[:depth] }()

	if !b.dryRun {
		start := b.clock.Now()
		defer func() {
			b.log.LogEvent(&unityevent.Built{
				TypeName:     info.Name,
				ResolutionID: b.resolution,
				Depth:        depth,
				Runtime:      b.clock.Since(start),
				Err:          err,
			})
		}()
	}

	if info.RequiredParams() == 0 && len(args) == 0 {
		if b.dryRun {
			return nil, b.checkFields(info)
		}
		v, err = inst.NewInstanceWithoutConstructor(info)
		if err != nil {
			return nil, err
		}
		return v, b.injectFields(info, v)
	}

	values := make([]reflect.Value, len(info.Params))
	resolved := make([]bool, len(info.Params))
	for i, p := range info.Params {
		if a, ok := args[p.Name]; ok {
			rv, ok := reflector.Assignable(a, p.Type)
			if !ok {
				return nil, &ArgumentTypeError{
					Param: p.Name,
					Type:  info.Type,
					Want:  p.Type,
					Got:   reflect.TypeOf(a),
				}
			}
			values[i], resolved[i] = rv, true
			continue
		}

		if !p.HasType {
			continue
		}

		if fn := b.bindFor(p.Type, local); fn != nil {
			resolved[i] = true
			if b.dryRun {
				continue
			}
			bv, err := fn(b.c)
			if err != nil {
				return nil, errors.Wrapf(err, "resolving bind for parameter %q of %s", p.Name, info.Name)
			}
			rv, ok := reflector.Assignable(bv, p.Type)
			if !ok {
				return nil, &ArgumentTypeError{
					Param: p.Name,
					Type:  info.Type,
					Want:  p.Type,
					Got:   reflect.TypeOf(bv),
				}
			}
			values[i] = rv
			continue
		}

		if b.autowire && b.reflector.IsClass(p.Type) {
			nv, err := b.autowireType(p.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "autowiring parameter %q of %s", p.Name, info.Name)
			}
			resolved[i] = true
			if b.dryRun {
				continue
			}
			rv, ok := reflector.Assignable(nv, p.Type)
			if !ok {
				return nil, &ArgumentTypeError{
					Param: p.Name,
					Type:  info.Type,
					Want:  p.Type,
					Got:   reflect.TypeOf(nv),
				}
			}
			values[i] = rv
		}
	}

	for i, p := range info.Params {
		if !resolved[i] && !p.Optional {
			return nil, &MissingArgumentError{Param: p.Name, Type: info.Type}
		}
	}

	if b.dryRun {
		return nil, b.checkFields(info)
	}

	v, err = inst.NewInstance(info, values)
	if err != nil {
		return nil, err
	}
	return v, b.injectFields(info, v)
}

// autowireType builds t with no explicit arguments and no local binds.
func (b *builder) autowireType(t reflect.Type) (interface{}, error) {
	info, err := b.reflector.Reflect(t)
	if err != nil {
		return nil, err
	}
	return b.construct(info, b.reflector, nil, nil)
}

// bindFor returns the bind function for t, preferring local binds.
func (b *builder) bindFor(t reflect.Type, local Binds) BindFunc {
	if fn, ok := local[t]; ok && fn != nil {
		return fn
	}
	if br := b.c.bindFor(t); br != nil {
		return br.fn
	}
	return nil
}
