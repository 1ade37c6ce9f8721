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

// Package unity is a dependency injection container keyed by strings.
//
// A Container maps identifiers to entries and resolves them on demand. An
// entry is one of three kinds, decided when it is registered:
//
// • Value entries resolve to the value itself
//
// • Factory entries call a function with the container
//
// • Type entries are built by the container, autowiring their constructor
// parameters
//
//	c := unity.New()
//	c.Register("greeting", unity.Value("Hello"))
//	c.Register("server", unity.Type[Server]())
//
//	srv, err := c.Get("server")
//
// Constructor parameters
//
// A struct type declares its parameters with the unity tag. Fields without
// the tag are left alone.
//
//	type Server struct {
//		Log  Logger `unity:"log"`
//		Port int    `unity:"port,optional"`
//	}
//
// Types built by a function instead are registered with Constructor, or
// with Container.Define so that autowiring uses the function too.
//
// Each parameter is resolved by trying, in order: an explicit argument with
// the parameter's name, a bind for its declared type, and autowiring when
// the type is a struct or has a constructor. Required parameters left over
// fail the build with a MissingArgumentError; optional ones keep their zero
// value.
//
// Singletons
//
// Get returns the same instance on every call, building it the first time.
// Make builds a new one on every call. A failed build is never cached.
//
// Events
//
// The container reports what it does to a unityevent.Logger. See the
// unityevent package and the WithLogger option.
package unity
