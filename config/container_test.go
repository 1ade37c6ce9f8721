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

package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/unity"
	"go.uber.org/unity/unityevent"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("Nop", func(t *testing.T) {
		t.Parallel()

		l, err := Default().Logger(nil)
		require.NoError(t, err)
		assert.Equal(t, unityevent.NopLogger, l)
	})

	t.Run("Console", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := Default()
		cfg.Logging.Driver = "console"
		l, err := cfg.Logger(&buf)
		require.NoError(t, err)

		l.LogEvent(&unityevent.Bound{TypeName: "io.Writer"})
		assert.Equal(t, "[Unity] BIND\t\tio.Writer\n", buf.String())
	})

	t.Run("ZapJSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := Default()
		cfg.Logging.Driver = "zap"
		l, err := cfg.Logger(&buf)
		require.NoError(t, err)

		l.LogEvent(&unityevent.Registered{ID: "db", Kind: "value", Entry: "string"})
		l.LogEvent(&unityevent.Resolved{ID: "db"})

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1, "debug events are dropped at info level")

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
		assert.Equal(t, "registered", got["msg"])
		assert.Equal(t, "unity", got["logger"])
		assert.Equal(t, "db", got["id"])
	})

	t.Run("ZapConsoleDebug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := Default()
		cfg.Logging = Logging{Driver: "zap", Level: "debug", Encoding: "console"}
		l, err := cfg.Logger(&buf)
		require.NoError(t, err)

		l.LogEvent(&unityevent.Resolved{ID: "db"})
		assert.Contains(t, buf.String(), "resolved")
		assert.Contains(t, buf.String(), "debug")
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.Logging.Driver = "syslog"
		_, err := cfg.Logger(nil)
		assert.Error(t, err)

		cfg.Logging = Logging{Driver: "zap", Encoding: "xml"}
		_, err = cfg.Logger(nil)
		assert.Error(t, err)

		cfg.Logging = Logging{Driver: "zap", Level: "loud"}
		_, err = cfg.Logger(nil)
		assert.Error(t, err)
	})
}

func TestNewContainer(t *testing.T) {
	t.Parallel()

	cfg, err := load(strings.NewReader(`
autowiring: false
use_annotations: true
logging:
  driver: console
values:
  greeting: hello
  port: 80
`), func(string) string { return "" })
	require.NoError(t, err)

	var buf bytes.Buffer
	c, err := cfg.NewContainer(&buf)
	require.NoError(t, err)

	assert.False(t, c.CanAutowire())
	assert.True(t, c.CanUseAnnotations())
	assert.Equal(t, []string{"greeting", "port"}, c.IDs())

	v, err := unity.GetAs[string](c, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	assert.True(t, strings.HasPrefix(buf.String(),
		"[Unity] REGISTER\tgreeting <= value string\n"+
			"[Unity] REGISTER\tport <= value int\n"), buf.String())
	assert.Contains(t, buf.String(), "[Unity] RESOLVE\tgreeting in ")

	cfg.Logging.Driver = "syslog"
	_, err = cfg.NewContainer(&buf)
	assert.Error(t, err)
}
