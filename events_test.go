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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/unity/internal/clock"
	"go.uber.org/unity/internal/eventlog"
	"go.uber.org/unity/unityevent"
)

func TestEvents(t *testing.T) {
	t.Parallel()

	t.Run("Lifecycle", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy))

		_, err := c.Register("svc", Type[Service]())
		require.NoError(t, err)
		c.Bind(TypeKey[Foo](), func(*Container) (interface{}, error) { return &fooImpl{}, nil })
		_, err = c.Get("svc")
		require.NoError(t, err)
		_, err = c.Get("svc")
		require.NoError(t, err)
		c.Replace("svc", Value(1))
		require.NoError(t, c.Unregister("svc"))

		assert.Equal(t, []string{
			"Registered",
			"Bound",
			"Built",
			"Made",
			"Resolved",
			"Resolved",
			"Replaced",
			"Unregistered",
		}, spy.EventTypes())

		events := spy.Events()
		assert.Equal(t, &unityevent.Registered{ID: "svc", Kind: "type", Entry: "unity.Service"}, events[0])
		assert.Equal(t, &unityevent.Bound{TypeName: "unity.Foo"}, events[1])
		assert.Equal(t, &unityevent.Replaced{ID: "svc", Kind: "value", Entry: "int"}, events[6])
	})

	t.Run("Failures", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy))

		_, err := c.Register("svc", Value(1))
		require.NoError(t, err)
		_, err = c.Register("svc", Value(2))
		require.Error(t, err)
		assert.Error(t, c.Unregister("nope"))
		_, err = c.Get("nope")
		require.Error(t, err)

		events := spy.Events()
		require.Len(t, events, 4)
		assert.Error(t, events[1].(*unityevent.Registered).Err)
		assert.Error(t, events[2].(*unityevent.Unregistered).Err)
		assert.Error(t, events[3].(*unityevent.Resolved).Err)
	})

	t.Run("Resolution", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy), withClock(clock.NewMock(time.Millisecond)))
		_, err := c.Register("svc", Type[NeedsDep]())
		require.NoError(t, err)
		spy.Reset()

		_, err = c.Make("svc", nil)
		require.NoError(t, err)

		events := spy.Events()
		require.Len(t, events, 3)

		dep := events[0].(*unityevent.Built)
		svc := events[1].(*unityevent.Built)
		made := events[2].(*unityevent.Made)

		assert.Equal(t, "*unity.Dep", dep.TypeName)
		assert.Equal(t, 1, dep.Depth)
		assert.Equal(t, time.Millisecond, dep.Runtime)

		assert.Equal(t, "*unity.NeedsDep", svc.TypeName)
		assert.Equal(t, 0, svc.Depth)
		assert.Equal(t, 2*time.Millisecond, svc.Runtime)

		assert.Equal(t, "svc", made.ID)
		assert.Equal(t, "type", made.Kind)
		assert.Equal(t, 3*time.Millisecond, made.Runtime)

		assert.NotEmpty(t, made.ResolutionID)
		assert.Equal(t, made.ResolutionID, svc.ResolutionID, "builds share the resolution id of their Make")
		assert.Equal(t, made.ResolutionID, dep.ResolutionID)

		spy.Reset()
		_, err = c.Make("svc", nil)
		require.NoError(t, err)
		again := spy.Events()[2].(*unityevent.Made)
		assert.NotEqual(t, made.ResolutionID, again.ResolutionID, "every Make gets a new resolution id")
	})

	t.Run("NoResolutionIDWithoutBuild", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy))
		_, err := c.Register("greeting", Value("hi"))
		require.NoError(t, err)
		_, err = c.Register("counter", Factory(func(*Container) (interface{}, error) { return 1, nil }))
		require.NoError(t, err)
		spy.Reset()

		_, err = c.Make("greeting", nil)
		require.NoError(t, err)
		_, err = c.Make("counter", nil)
		require.NoError(t, err)

		events := spy.Events()
		require.Len(t, events, 2)
		for _, e := range events {
			made := e.(*unityevent.Made)
			assert.Empty(t, made.ResolutionID, "%s entries build no type", made.Kind)
		}
	})

	t.Run("BuildFailure", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy), Autowiring(false))
		_, err := c.Register("svc", Type[NeedsDep]())
		require.NoError(t, err)
		spy.Reset()

		_, err = c.Make("svc", nil)
		require.Error(t, err)

		assert.Equal(t, []string{"Built", "Made"}, spy.EventTypes())
		events := spy.Events()
		assert.True(t, IsMissingArgument(events[0].(*unityevent.Built).Err))
		assert.True(t, IsConstructionError(events[1].(*unityevent.Made).Err))
	})

	t.Run("Providers", func(t *testing.T) {
		t.Parallel()

		spy := new(eventlog.Spy)
		c := New(WithLogger(spy))
		sadness := errors.New("great sadness")

		err := c.RegisterProviders(ProviderFunc(func(*Container) error { return sadness }))
		require.Error(t, err)

		events := spy.Events()
		require.Len(t, events, 1)
		e := events[0].(*unityevent.ProvidersRegistered)
		require.Len(t, e.Providers, 1)
		assert.Contains(t, e.Providers[0], "TestEvents")
		assert.True(t, errors.Is(e.Err, sadness))
	})
}

func TestWithNilLogger(t *testing.T) {
	t.Parallel()

	c := New(WithLogger(nil))
	_, err := c.Register("svc", Value(1))
	assert.NoError(t, err, "a nil logger drops events")
}
