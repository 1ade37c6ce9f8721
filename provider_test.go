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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type databaseProvider struct {
	dsn string
}

func (p databaseProvider) Register(c *Container) error {
	_, err := c.Register("dsn", Value(p.dsn))
	return err
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		c := New()
		err := c.RegisterProviders(
			databaseProvider{dsn: "postgres://"},
			ProviderFunc(func(c *Container) error {
				_, err := c.Register("svc", Type[Service]())
				return err
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"dsn", "svc"}, c.IDs())
	})

	t.Run("AllProvidersRun", func(t *testing.T) {
		t.Parallel()

		c := New()
		err := c.RegisterProviders(
			databaseProvider{dsn: "a"},
			databaseProvider{dsn: "b"},
			ProviderFunc(func(*Container) error { return errors.New("great sadness") }),
			ProviderFunc(func(c *Container) error {
				_, err := c.Register("last", Value(true))
				return err
			}),
		)
		require.Error(t, err)

		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		assert.True(t, IsDuplicateID(errs[0]))
		assert.Contains(t, errs[0].Error(), "service provider unity.databaseProvider")
		assert.Contains(t, errs[1].Error(), "great sadness")

		assert.True(t, c.Has("last"), "providers after a failure still run")
		v, err := c.Get("dsn")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, New().RegisterProviders())
	})
}
