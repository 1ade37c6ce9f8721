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
	"go.uber.org/multierr"
)

// Validate walks the constructor graph of every Type entry without
// calling any constructor or bind function, and reports all problems at
// once: missing arguments, non-instantiable types, badly typed given
// arguments and circular dependencies. Protected entries are skipped.
func (c *Container) Validate() error {
	var errs error
	for _, id := range c.IDs() {
		r, err := c.Resolver(id)
		if err != nil {
			// Unregistered concurrently.
			continue
		}
		e, ok := r.Entry().(typeEntry)
		if !ok || r.Protected() {
			continue
		}

		b := c.newBuilder("", r.Binds())
		b.dryRun = true
		if _, err := b.build(e, r.Given()); err != nil {
			errs = multierr.Append(errs, &ConstructionError{ID: id, Err: err})
		}
	}
	return errs
}
