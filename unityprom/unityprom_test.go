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

package unityprom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/unity"
)

type dep struct{ n int }

type needsDep struct {
	Dep *dep `unity:"dep"`
}

type needsPort struct {
	Port int `unity:"port"`
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := New(reg, "test")
	require.NoError(t, err)

	c := unity.New(unity.WithLogger(m))

	_, err = c.Register("svc", unity.Type[needsDep]())
	require.NoError(t, err)
	_, err = c.Register("svc", unity.Value(1))
	require.Error(t, err)
	_, err = c.Register("broken", unity.Type[needsPort]())
	require.NoError(t, err)
	c.Replace("greeting", unity.Value("hi"))
	require.NoError(t, c.Unregister("greeting"))
	c.Bind(unity.TypeKey[int](), func(*unity.Container) (interface{}, error) { return nil, nil })

	_, err = c.Get("svc")
	require.NoError(t, err)
	_, err = c.Get("svc")
	require.NoError(t, err)
	_, err = c.Make("broken", nil)
	require.Error(t, err)
	require.NoError(t, c.RegisterProviders())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.registry.WithLabelValues("register", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registry.WithLabelValues("register", statusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registry.WithLabelValues("replace", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registry.WithLabelValues("unregister", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.binds))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues(statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.makes.WithLabelValues("type", statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.makes.WithLabelValues("type", statusError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.builds.WithLabelValues(statusOK)), "autowired dependencies count as builds")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.builds.WithLabelValues(statusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providers.WithLabelValues(statusOK)))

	assert.Equal(t, 1, testutil.CollectAndCount(m.makeDuration), "only successful makes are timed")
}

func TestNewDuplicate(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)

	_, err = New(reg, "dup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registering unity metrics")

	_, err = New(reg, "other")
	assert.NoError(t, err, "namespaces keep metrics apart")
}
