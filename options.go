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
	"strings"

	"go.uber.org/unity/internal/clock"
	"go.uber.org/unity/reflector"
	"go.uber.org/unity/unityevent"
)

// Option configures a Container built by New.
type Option interface {
	fmt.Stringer

	apply(*Container)
}

type autowiringOption bool

var _ Option = autowiringOption(true)

func (o autowiringOption) apply(c *Container) {
	c.autowiring = bool(o)
}

func (o autowiringOption) String() string {
	return fmt.Sprintf("unity.Autowiring(%v)", bool(o))
}

// Autowiring is an Option that sets whether class-typed constructor
// parameters are built automatically. Autowiring is enabled by default.
func Autowiring(enabled bool) Option {
	return autowiringOption(enabled)
}

type useAnnotationsOption bool

var _ Option = useAnnotationsOption(false)

func (o useAnnotationsOption) apply(c *Container) {
	c.useAnnotations = bool(o)
}

func (o useAnnotationsOption) String() string {
	return fmt.Sprintf("unity.UseAnnotations(%v)", bool(o))
}

// UseAnnotations is an Option that sets whether fields tagged
// `inject:"..."` are filled after construction. It is disabled by default.
func UseAnnotations(enabled bool) Option {
	return useAnnotationsOption(enabled)
}

type loggerOption struct{ l unityevent.Logger }

func (o loggerOption) apply(c *Container) {
	c.log = o.l
}

func (o loggerOption) String() string {
	return fmt.Sprintf("unity.WithLogger(%T)", o.l)
}

// WithLogger is an Option that sends container events to l. Events are
// dropped by default.
func WithLogger(l unityevent.Logger) Option {
	if l == nil {
		l = unityevent.NopLogger
	}
	return loggerOption{l: l}
}

type reflectorOption struct{ r reflector.Reflector }

func (o reflectorOption) apply(c *Container) {
	c.reflector = o.r
}

func (o reflectorOption) String() string {
	return fmt.Sprintf("unity.WithReflector(%T)", o.r)
}

// WithReflector is an Option that replaces the reflector used to inspect
// and instantiate types. Define only works with reflectors implementing
// reflector.Definer.
func WithReflector(r reflector.Reflector) Option {
	return reflectorOption{r: r}
}

type clockOption struct{ clk clock.Clock }

func (o clockOption) apply(c *Container) {
	c.clock = o.clk
}

func (o clockOption) String() string {
	return "unity.withClock()"
}

func withClock(clk clock.Clock) Option {
	return clockOption{clk: clk}
}

type optionGroup []Option

func (og optionGroup) apply(c *Container) {
	for _, opt := range og {
		opt.apply(c)
	}
}

func (og optionGroup) String() string {
	items := make([]string, len(og))
	for i, opt := range og {
		items[i] = opt.String()
	}
	return fmt.Sprintf("unity.Options(%s)", strings.Join(items, ", "))
}

// Options composes a collection of Options into a single Option.
func Options(opts ...Option) Option {
	return optionGroup(opts)
}
