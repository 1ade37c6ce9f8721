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

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/unity/reflector"
	"go.uber.org/unity/unityevent"
)

// ServiceProvider registers a group of related entries.
type ServiceProvider interface {
	Register(c *Container) error
}

// ProviderFunc adapts a function to ServiceProvider.
type ProviderFunc func(c *Container) error

// Register calls f(c).
func (f ProviderFunc) Register(c *Container) error { return f(c) }

// RegisterProviders runs every provider in order. A failing provider does
// not stop the ones after it; all failures are returned together.
func (c *Container) RegisterProviders(providers ...ServiceProvider) error {
	names := make([]string, len(providers))
	var errs error
	for i, p := range providers {
		names[i] = providerName(p)
		if err := p.Register(c); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "service provider %s", names[i]))
		}
	}

	c.log.LogEvent(&unityevent.ProvidersRegistered{Providers: names, Err: errs})
	return errs
}

func providerName(p ServiceProvider) string {
	if f, ok := p.(ProviderFunc); ok {
		return reflector.FuncName(f)
	}
	return fmt.Sprintf("%T", p)
}
