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

// Package config builds unity containers from YAML files, .env files and
// environment variables.
//
// A typical service loads a file, lets the environment override it and
// builds its container:
//
//	cfg, err := config.LoadFile("unity.yaml")
//	if err != nil {
//		return err
//	}
//	if err := cfg.ApplyEnv(); err != nil {
//		return err
//	}
//	c, err := cfg.NewContainer(os.Stderr)
//
// The environment variables read by ApplyEnv are UNITY_AUTOWIRING,
// UNITY_USE_ANNOTATIONS, UNITY_LOG_DRIVER, UNITY_LOG_LEVEL and
// UNITY_LOG_ENCODING.
package config
