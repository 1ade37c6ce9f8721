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

	"go.uber.org/unity/reflector"
)

// TypeKey returns the reflect.Type of T, including interface types.
//
//	c.Bind(unity.TypeKey[io.Writer](), unity.Ref("stdout"))
func TypeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetAs is Get with the result asserted to T. A nil singleton yields the
// zero T.
func GetAs[T any](c *Container, id string) (T, error) {
	v, err := c.Get(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return assertAs[T](id, v)
}

// MakeAs is Make with the result asserted to T.
func MakeAs[T any](c *Container, id string, args Args) (T, error) {
	v, err := c.Make(id, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return assertAs[T](id, v)
}

// BindType binds T to fn.
func BindType[T any](c *Container, fn func(*Container) (T, error)) *Container {
	return c.Bind(TypeKey[T](), func(c *Container) (interface{}, error) {
		return fn(c)
	})
}

func assertAs[T any](id string, v interface{}) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return t, fmt.Errorf("%q resolved to %T, not %s", id, v, reflector.TypeName(TypeKey[T]()))
	}
	return t, nil
}
