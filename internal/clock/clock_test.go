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

package clock

import (
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

var _ Clock = bclock.Clock(nil)

func TestSystemClock(t *testing.T) {
	t.Parallel()

	start := System.Now()
	assert.GreaterOrEqual(t, System.Since(start), time.Duration(0))
}

func TestMockClock(t *testing.T) {
	t.Parallel()

	t.Run("step", func(t *testing.T) {
		t.Parallel()

		c := NewMock(time.Millisecond)
		start := c.Now()
		assert.Equal(t, time.Millisecond, c.Since(start))
		assert.Equal(t, time.Millisecond, c.Since(start), "Since does not move time")
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		c := NewMock(0)
		start := c.Now()
		assert.Zero(t, c.Since(start))

		c.Add(time.Second)
		assert.Equal(t, time.Second, c.Since(start))
	})
}

func TestThirdPartyClock(t *testing.T) {
	t.Parallel()

	m := bclock.NewMock()
	var c Clock = m

	start := c.Now()
	m.Add(time.Minute)
	assert.Equal(t, time.Minute, c.Since(start))
}
