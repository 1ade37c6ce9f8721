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

// Package unityprom records container events as Prometheus metrics.
//
//	m, err := unityprom.New(prometheus.DefaultRegisterer, "myservice")
//	if err != nil {
//		return err
//	}
//	c := unity.New(unity.WithLogger(m))
package unityprom

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/unity/unityevent"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics is a unityevent.Logger that counts registry changes and times
// resolutions.
type Metrics struct {
	registry     *prometheus.CounterVec
	binds        prometheus.Counter
	resolutions  *prometheus.CounterVec
	makes        *prometheus.CounterVec
	makeDuration *prometheus.HistogramVec
	builds       *prometheus.CounterVec
	providers    *prometheus.CounterVec
}

var _ unityevent.Logger = (*Metrics)(nil)

// New creates the metrics under namespace and registers them with reg.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "registry_operations_total",
				Help:      "Total number of register, replace and unregister calls",
			},
			[]string{"operation", "status"},
		),
		binds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "binds_total",
				Help:      "Total number of types bound",
			},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "resolutions_total",
				Help:      "Total number of singleton resolutions",
			},
			[]string{"status"},
		),
		makes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "makes_total",
				Help:      "Total number of instances made, by entry kind",
			},
			[]string{"kind", "status"},
		),
		makeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "make_duration_seconds",
				Help:      "Time spent making instances, by entry kind",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "builds_total",
				Help:      "Total number of types built, including autowired dependencies",
			},
			[]string{"status"},
		),
		providers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "unity",
				Name:      "provider_runs_total",
				Help:      "Total number of RegisterProviders calls",
			},
			[]string{"status"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.registry,
		m.binds,
		m.resolutions,
		m.makes,
		m.makeDuration,
		m.builds,
		m.providers,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering unity metrics")
		}
	}
	return m, nil
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}

// LogEvent records the event.
func (m *Metrics) LogEvent(event unityevent.Event) {
	switch e := event.(type) {
	case *unityevent.Registered:
		m.registry.WithLabelValues("register", status(e.Err)).Inc()
	case *unityevent.Replaced:
		m.registry.WithLabelValues("replace", statusOK).Inc()
	case *unityevent.Unregistered:
		m.registry.WithLabelValues("unregister", status(e.Err)).Inc()
	case *unityevent.Bound:
		m.binds.Inc()
	case *unityevent.Resolved:
		m.resolutions.WithLabelValues(status(e.Err)).Inc()
	case *unityevent.Made:
		m.makes.WithLabelValues(e.Kind, status(e.Err)).Inc()
		if e.Err == nil {
			m.makeDuration.WithLabelValues(e.Kind).Observe(e.Runtime.Seconds())
		}
	case *unityevent.Built:
		m.builds.WithLabelValues(status(e.Err)).Inc()
	case *unityevent.ProvidersRegistered:
		m.providers.WithLabelValues(status(e.Err)).Inc()
	}
}
