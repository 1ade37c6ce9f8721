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
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/unity"
	"go.uber.org/unity/unityevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger builds the event logger selected by c.Logging, writing to w.
func (c Config) Logger(w io.Writer) (unityevent.Logger, error) {
	switch c.Logging.Driver {
	case "", "nop":
		return unityevent.NopLogger, nil
	case "console":
		return &unityevent.ConsoleLogger{W: w}, nil
	case "zap":
		return c.zapLogger(w)
	default:
		return nil, fmt.Errorf("unknown logging driver %q", c.Logging.Driver)
	}
}

func (c Config) zapLogger(w io.Writer) (unityevent.Logger, error) {
	level := c.Logging.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch c.Logging.Encoding {
	case "", "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log encoding %q", c.Logging.Encoding)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return &unityevent.ZapLogger{Logger: zap.New(core).Named("unity")}, nil
}

// Options returns the container options described by c. Events are written
// to w.
func (c Config) Options(w io.Writer) ([]unity.Option, error) {
	logger, err := c.Logger(w)
	if err != nil {
		return nil, err
	}
	return []unity.Option{
		unity.Autowiring(c.AutowiringEnabled()),
		unity.UseAnnotations(c.UseAnnotations),
		unity.WithLogger(logger),
	}, nil
}

// NewContainer builds a container configured by c, with every entry of
// c.Values registered as a Value.
func (c Config) NewContainer(w io.Writer) (*unity.Container, error) {
	opts, err := c.Options(w)
	if err != nil {
		return nil, err
	}
	container := unity.New(opts...)

	ids := make([]string, 0, len(c.Values))
	for id := range c.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := container.Register(id, unity.Value(c.Values[id])); err != nil {
			return nil, err
		}
	}
	return container, nil
}
