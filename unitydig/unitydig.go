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

// Package unitydig connects unity containers with go.uber.org/dig.
//
// Entries of a unity.Container can be exported to a dig.Container as
// constructors, and types provided by dig can be bound on a
// unity.Container so that its builds consume them.
package unitydig

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/multierr"
	"go.uber.org/unity"
)

// Provide exports the singletons registered under ids to dc. Each one is
// resolved immediately and provided as its dynamic type. All ids are
// attempted; failures are returned together.
func Provide(dc *dig.Container, c *unity.Container, ids ...string) error {
	var errs error
	for _, id := range ids {
		errs = multierr.Append(errs, errors.Wrapf(provide(dc, c, id), "providing %q", id))
	}
	return errs
}

func provide(dc *dig.Container, c *unity.Container, id string) error {
	v, err := c.Get(id)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%q resolved to nil", id)
	}

	rv := reflect.ValueOf(v)
	ft := reflect.FuncOf(nil, []reflect.Type{rv.Type()}, false)
	fn := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{rv}
	})
	return dc.Provide(fn.Interface())
}

// ProvideAs exports id to dc as a T. The singleton is resolved lazily, the
// first time dig needs a T. opts are passed to dig, so dig.Name can be
// used to export several ids of the same type.
func ProvideAs[T any](dc *dig.Container, c *unity.Container, id string, opts ...dig.ProvideOption) error {
	err := dc.Provide(func() (T, error) {
		return unity.GetAs[T](c, id)
	}, opts...)
	return errors.Wrapf(err, "providing %q", id)
}

// FromDig returns a BindFunc that asks dc for a value of type t.
func FromDig(dc *dig.Container, t reflect.Type) unity.BindFunc {
	ft := reflect.FuncOf([]reflect.Type{t}, nil, false)
	return func(*unity.Container) (interface{}, error) {
		var out interface{}
		fn := reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
			out = args[0].Interface()
			return nil
		})
		if err := dc.Invoke(fn.Interface()); err != nil {
			return nil, errors.Wrapf(err, "resolving %v from dig", t)
		}
		return out, nil
	}
}

// Bind binds t on c to the value dc provides for it.
func Bind(c *unity.Container, dc *dig.Container, t reflect.Type) *unity.Container {
	return c.Bind(t, FromDig(dc, t))
}
