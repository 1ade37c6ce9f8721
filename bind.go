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

	"go.uber.org/unity/reflector"
)

// BindFunc produces the value for a bound type. It is called every time a
// parameter of that type is resolved.
type BindFunc func(c *Container) (interface{}, error)

// Args are explicit constructor arguments keyed by parameter name.
type Args map[string]interface{}

// merge returns a copy of a overlaid with over. Keys in over win.
func (a Args) merge(over Args) Args {
	if len(over) == 0 {
		return a
	}
	if len(a) == 0 {
		return over
	}

	out := make(Args, len(a)+len(over))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Binds map parameter types to the function producing their value.
type Binds map[reflect.Type]BindFunc

// Ref returns a BindFunc that resolves the singleton registered under id.
// A Ref reached while id itself is being made fails with a
// CircularDependencyError.
//
//	c.Bind(unity.TypeKey[io.Writer](), unity.Ref("stdout"))
func Ref(id string) BindFunc {
	return func(c *Container) (interface{}, error) {
		return c.Get(id)
	}
}

// BindResolver resolves a bound type by invoking its BindFunc. Nothing is
// cached; every Resolve calls the function again.
type BindResolver struct {
	typ       reflect.Type
	fn        BindFunc
	container *Container
}

func newBindResolver(c *Container, t reflect.Type, fn BindFunc) *BindResolver {
	return &BindResolver{typ: t, fn: fn, container: c}
}

// Type returns the bound type.
func (b *BindResolver) Type() reflect.Type { return b.typ }

// Resolve invokes the bind function with the owning container.
func (b *BindResolver) Resolve() (interface{}, error) {
	return b.fn(b.container)
}

func (b *BindResolver) String() string {
	return reflector.TypeName(b.typ) + " <= " + reflector.FuncName(b.fn)
}
