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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		c := New()
		_, err := c.Register("greeting", Value("hi"))
		require.NoError(t, err)
		_, err = c.Register("svc", Type[NeedsDep]())
		require.NoError(t, err)
		r, err := c.Register("greeter", Type[Greeter]())
		require.NoError(t, err)
		r.Give(Args{"greeting": "hey"})

		assert.NoError(t, c.Validate())
	})

	t.Run("ReportsEveryBrokenEntry", func(t *testing.T) {
		t.Parallel()

		c := New()
		_, err := c.Register("cycle", Type[CycleA]())
		require.NoError(t, err)
		_, err = c.Register("missing", Type[UsesFoo]())
		require.NoError(t, err)
		_, err = c.Register("ok", Type[Service]())
		require.NoError(t, err)
		r, err := c.Register("badarg", Type[Greeter]())
		require.NoError(t, err)
		r.Give(Args{"greeting": 42})
		_, err = c.Register("iface", TypeOf(TypeKey[Foo]()))
		require.NoError(t, err)

		err = c.Validate()
		require.Error(t, err)

		errs := multierr.Errors(err)
		require.Len(t, errs, 4)
		for _, e := range errs {
			assert.True(t, IsConstructionError(e))
		}
		// Entries are validated in id order.
		assert.Contains(t, errs[0].Error(), `"badarg"`)
		assert.True(t, IsCircularDependency(errs[1]))
		assert.True(t, IsNonInstantiable(errs[2]))
		assert.True(t, IsMissingArgument(errs[3]))
	})

	t.Run("CallsNothing", func(t *testing.T) {
		t.Parallel()

		calls := 0
		c := New()
		c.Bind(TypeKey[int](), func(*Container) (interface{}, error) {
			calls++
			return 1, nil
		})
		_, err := c.Register("widget", Constructor(func(size int) *widget {
			calls++
			return &widget{size: size}
		}, "size"))
		require.NoError(t, err)
		_, err = c.Register("factory", Factory(func(*Container) (interface{}, error) {
			calls++
			return nil, nil
		}))
		require.NoError(t, err)

		require.NoError(t, c.Validate())
		assert.Zero(t, calls)
	})

	t.Run("SkipsProtected", func(t *testing.T) {
		t.Parallel()

		c := New()
		r, err := c.Register("iface", TypeOf(TypeKey[Foo]()))
		require.NoError(t, err)
		r.Protect(true)

		assert.NoError(t, c.Validate())
	})

	t.Run("Annotations", func(t *testing.T) {
		t.Parallel()

		c := New(UseAnnotations(true))
		_, err := c.Register("annotated", Type[Annotated]())
		require.NoError(t, err)

		err = c.Validate()
		require.Error(t, err)
		assert.False(t, IsNotFound(err))

		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Contains(t, err.Error(), "injecting field Greeting of *unity.Annotated")
	})
}
