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

// Package unityevent defines a means of observing what a unity container
// does.
//
// # Changing the Logger
//
// By default containers use [NopLogger]. The unity.WithLogger option
// installs any other implementation of the [Logger] interface.
//
// If you're using Zap inside your application, you can use the
// [ZapLogger] implementation of the interface.
//
//	log, _ := zap.NewProduction()
//	c := unity.New(
//		unity.WithLogger(&unityevent.ZapLogger{Logger: log}),
//	)
//
// During development, [ConsoleLogger] writes readable lines to any
// io.Writer.
//
// # Implementing a Custom Logger
//
// To implement a custom logger, implement the [Logger] interface. The
// Logger.LogEvent method accepts an [Event], which is a union of all the
// events a container emits. Use a type switch to handle each event type.
// See 'event.go' for the list of events.
package unityevent
