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
	"strings"

	"go.uber.org/zap"
)

// ZapLogger is an event logger that logs events to Zap.
//
// Registry changes are logged at Info. Successful resolutions are logged at
// Debug since they happen on every Make; failures are logged at Error.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.Logger.Error("register failed",
				zap.String("id", e.ID),
				zap.String("kind", e.Kind),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("registered",
				zap.String("id", e.ID),
				zap.String("kind", e.Kind),
				zap.String("entry", e.Entry),
			)
		}
	case *Unregistered:
		if e.Err != nil {
			l.Logger.Error("unregister failed", zap.String("id", e.ID), zap.Error(e.Err))
		} else {
			l.Logger.Info("unregistered", zap.String("id", e.ID))
		}
	case *Replaced:
		l.Logger.Info("replaced",
			zap.String("id", e.ID),
			zap.String("kind", e.Kind),
			zap.String("entry", e.Entry),
		)
	case *Bound:
		l.Logger.Info("bound", zap.String("type", e.TypeName))
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed", zap.String("id", e.ID), zap.Error(e.Err))
		} else {
			l.Logger.Debug("resolved",
				zap.String("id", e.ID),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Made:
		if e.Err != nil {
			l.Logger.Error("make failed",
				zap.String("id", e.ID),
				zap.String("kind", e.Kind),
				zap.String("resolution", e.ResolutionID),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("made",
				zap.String("id", e.ID),
				zap.String("kind", e.Kind),
				zap.String("resolution", e.ResolutionID),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Built:
		if e.Err != nil {
			l.Logger.Error("build failed",
				zap.String("type", e.TypeName),
				zap.String("resolution", e.ResolutionID),
				zap.Int("depth", e.Depth),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("built",
				zap.String("type", e.TypeName),
				zap.String("resolution", e.ResolutionID),
				zap.Int("depth", e.Depth),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *ProvidersRegistered:
		if e.Err != nil {
			l.Logger.Error("service providers failed",
				zap.String("providers", strings.Join(e.Providers, ", ")),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("service providers registered",
				zap.String("providers", strings.Join(e.Providers, ", ")),
			)
		}
	}
}
