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
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is an event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Unity] "+msg+"\n", args...)
}

// LogEvent writes the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to register %q: %v", e.ID, e.Err)
		} else {
			l.logf("REGISTER\t%s <= %s %s", e.ID, e.Kind, e.Entry)
		}
	case *Unregistered:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to unregister %q: %v", e.ID, e.Err)
		} else {
			l.logf("UNREGISTER\t%s", e.ID)
		}
	case *Replaced:
		l.logf("REPLACE\t%s <= %s %s", e.ID, e.Kind, e.Entry)
	case *Bound:
		l.logf("BIND\t\t%s", e.TypeName)
	case *Resolved:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to resolve %q: %v", e.ID, e.Err)
		} else {
			l.logf("RESOLVE\t%s in %s", e.ID, e.Runtime)
		}
	case *Made:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to make %q: %v", e.ID, e.Err)
		} else {
			l.logf("MAKE\t\t%s (%s) in %s", e.ID, e.Kind, e.Runtime)
		}
	case *Built:
		indent := strings.Repeat("  ", e.Depth)
		if e.Err != nil {
			l.logf("ERROR\t\t%sFailed to build %s: %v", indent, e.TypeName, e.Err)
		} else {
			l.logf("BUILD\t\t%s%s in %s", indent, e.TypeName, e.Runtime)
		}
	case *ProvidersRegistered:
		if e.Err != nil {
			l.logf("ERROR\t\tService providers failed: %v", e.Err)
		} else {
			l.logf("PROVIDERS\t%s", strings.Join(e.Providers, ", "))
		}
	}
}
