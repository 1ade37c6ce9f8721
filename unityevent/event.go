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

package unityevent

import (
	"time"
)

// Event defines an event emitted by a container.
type Event interface {
	event() // Only unityevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()          {}
func (*Unregistered) event()        {}
func (*Replaced) event()            {}
func (*Bound) event()               {}
func (*Resolved) event()            {}
func (*Made) event()                {}
func (*Built) event()               {}
func (*ProvidersRegistered) event() {}

// Registered is emitted whenever an entry is registered under an id.
type Registered struct {
	// ID is the identifier the entry was registered under.
	ID string
	// Kind is the kind of entry: value, factory or type.
	Kind string
	// Entry describes the entry without exposing its contents.
	Entry string
	// Err is non-nil if the id was already taken.
	Err error
}

// Unregistered is emitted whenever an id is removed from a container.
type Unregistered struct {
	ID  string
	Err error
}

// Replaced is emitted whenever an entry is registered with Replace.
type Replaced struct {
	ID    string
	Kind  string
	Entry string
}

// Bound is emitted whenever a callback is bound to a type.
type Bound struct {
	TypeName string
}

// Resolved is emitted after a resolver attempted to create its singleton.
type Resolved struct {
	ID      string
	Runtime time.Duration
	Err     error
}

// Made is emitted after a resolver produced a fresh instance.
type Made struct {
	ID string
	// Kind is the kind of entry that was made.
	Kind string
	// ResolutionID correlates this event with the Built events of the same
	// resolution. It is empty for entries that do not build a type.
	ResolutionID string
	Runtime      time.Duration
	Err          error
}

// Built is emitted after the builder instantiated a type, either because
// it was requested or because it was autowired into another type.
type Built struct {
	TypeName     string
	ResolutionID string
	// Depth is zero for the requested type and grows by one with each
	// autowired level.
	Depth   int
	Runtime time.Duration
	Err     error
}

// ProvidersRegistered is emitted after a batch of service providers ran.
type ProvidersRegistered struct {
	Providers []string
	Err       error
}
