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

import "errors"

// Service has a field so that separate instances never share an address.
type Service struct {
	n int
}

type Greeter struct {
	Greeting string `unity:"greeting"`
}

type Foo interface {
	Foo() string
}

type fooImpl struct {
	name string
}

func (f *fooImpl) Foo() string { return f.name }

type UsesFoo struct {
	Foo Foo `unity:"foo"`
}

type Outer struct {
	Inner *UsesFoo `unity:"inner"`
	Foo   Foo      `unity:"foo"`
}

type Dep struct {
	n int
}

type NeedsDep struct {
	Dep *Dep `unity:"dep"`
}

type NeedsDepValue struct {
	Dep Dep `unity:"dep"`
}

type OptionalDep struct {
	Dep  *Dep   `unity:"dep,optional"`
	Name string `unity:"name,optional"`
}

type CycleA struct {
	B *CycleB `unity:"b"`
}

type CycleB struct {
	A *CycleA `unity:"a"`
}

// RefA and RefB form a cycle only through a Foo bind that refers back to
// the id RefA is registered under.
type RefA struct {
	B *RefB `unity:"b"`
}

func (*RefA) Foo() string { return "a" }

type RefB struct {
	Foo Foo `unity:"foo"`
}

type widget struct {
	size int
}

func newWidget(size int) *widget { return &widget{size: size} }

var errNegativeSize = errors.New("negative size")

func newCheckedWidget(size int) (*widget, error) {
	if size < 0 {
		return nil, errNegativeSize
	}
	return &widget{size: size}, nil
}

type NeedsWidget struct {
	W *widget `unity:"w"`
}
