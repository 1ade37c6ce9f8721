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

// Package unitytest provides helpers for tests that use a unity.Container.
package unitytest

import (
	"strings"

	"go.uber.org/unity"
	"go.uber.org/unity/unityevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// Container is a unity.Container that fails the test instead of returning
// errors from its Must methods.
type Container struct {
	*unity.Container

	t TB
}

// New builds a container whose events are written to the test log. opts
// are applied after the test logger, so WithLogger in opts replaces it.
func New(t TB, opts ...unity.Option) *Container {
	logger := unity.WithLogger(&unityevent.ConsoleLogger{W: testLogWriter{t}})
	return &Container{
		Container: unity.New(append([]unity.Option{logger}, opts...)...),
		t:         t,
	}
}

// MustRegister calls Register, failing the test if an error is encountered.
func (c *Container) MustRegister(id string, entry unity.Entry) *unity.Resolver {
	r, err := c.Register(id, entry)
	if err != nil {
		c.t.Errorf("could not register %q: %v", id, err)
		c.t.FailNow()
	}
	return r
}

// MustGet calls Get, failing the test if an error is encountered.
func (c *Container) MustGet(id string) interface{} {
	v, err := c.Get(id)
	if err != nil {
		c.t.Errorf("could not get %q: %v", id, err)
		c.t.FailNow()
	}
	return v
}

// MustMake calls Make, failing the test if an error is encountered.
func (c *Container) MustMake(id string, args unity.Args) interface{} {
	v, err := c.Make(id, args)
	if err != nil {
		c.t.Errorf("could not make %q: %v", id, err)
		c.t.FailNow()
	}
	return v
}

// MustValidate calls Validate, failing the test if the container has
// broken entries.
func (c *Container) MustValidate() {
	if err := c.Validate(); err != nil {
		c.t.Errorf("container is not valid: %v", err)
		c.t.FailNow()
	}
}

type testLogWriter struct{ t TB }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
