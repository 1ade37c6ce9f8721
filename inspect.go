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
	"sort"

	"go.uber.org/unity/reflector"
)

// Info is a snapshot of one registered entry.
type Info struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Entry     string   `json:"entry"`
	Resolved  bool     `json:"resolved"`
	Protected bool     `json:"protected"`
	Given     []string `json:"given,omitempty"`
	Binds     []string `json:"binds,omitempty"`
}

// Inspect returns a snapshot of every registered entry, sorted by id.
func (c *Container) Inspect() []Info {
	ids := c.IDs()
	infos := make([]Info, 0, len(ids))
	for _, id := range ids {
		r, err := c.Resolver(id)
		if err != nil {
			continue
		}
		infos = append(infos, r.Info())
	}
	return infos
}

// Info returns a snapshot of the resolver.
func (r *Resolver) Info() Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := Info{
		ID:        r.id,
		Kind:      r.entry.Kind().String(),
		Entry:     r.entry.String(),
		Resolved:  r.resolved,
		Protected: r.protected,
	}
	for name := range r.given {
		info.Given = append(info.Given, name)
	}
	sort.Strings(info.Given)
	for t := range r.binds {
		info.Binds = append(info.Binds, reflector.TypeName(t))
	}
	sort.Strings(info.Binds)
	return info
}

// BoundTypes returns the names of all types bound on the container,
// sorted.
func (c *Container) BoundTypes() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.binds))
	for t := range c.binds {
		names = append(names, reflector.TypeName(t))
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}
