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

import (
	"fmt"
	"reflect"

	"go.uber.org/unity/reflector"
)

// EntryKind identifies which variant of Entry a resolver holds.
type EntryKind int

const (
	// KindValue entries are returned as is.
	KindValue EntryKind = iota + 1

	// KindFactory entries are functions called with the container.
	KindFactory

	// KindType entries describe a type that is built by the container,
	// autowiring its constructor parameters.
	KindType
)

func (k EntryKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindFactory:
		return "factory"
	case KindType:
		return "type"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// Entry is what a container resolves an identifier into. Entries are built
// with Value, Factory, Type, TypeOf or Constructor; the kind is fixed at
// that point and never inferred from the payload.
type Entry interface {
	fmt.Stringer

	Kind() EntryKind

	// raw returns the payload handed out by protected resolvers.
	raw() interface{}
}

// FactoryFunc builds an instance using the container it is registered in.
// A factory runs on every Make.
type FactoryFunc func(c *Container) (interface{}, error)

// Value returns an Entry that always resolves to v. Strings are values
// too; use Type to have the container build something.
func Value(v interface{}) Entry {
	return valueEntry{v: v}
}

type valueEntry struct{ v interface{} }

func (e valueEntry) Kind() EntryKind  { return KindValue }
func (e valueEntry) raw() interface{} { return e.v }

func (e valueEntry) String() string {
	return fmt.Sprintf("%T", e.v)
}

// Factory returns an Entry that resolves by calling fn.
func Factory(fn FactoryFunc) Entry {
	if fn == nil {
		panic("unity.Factory: nil function")
	}
	return factoryEntry{fn: fn}
}

type factoryEntry struct{ fn FactoryFunc }

func (e factoryEntry) Kind() EntryKind  { return KindFactory }
func (e factoryEntry) raw() interface{} { return e.fn }

func (e factoryEntry) String() string {
	return reflector.FuncName(e.fn)
}

// Type returns an Entry that builds a T. Struct types are built as *T with
// their tagged fields injected.
//
//	c.Register("server", unity.Type[Server]())
func Type[T any]() Entry {
	return TypeOf(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeOf is the reflect.Type form of Type.
func TypeOf(t reflect.Type) Entry {
	if t == nil {
		panic("unity.TypeOf: nil type")
	}
	return typeEntry{typ: t}
}

// Constructor returns an Entry built by calling fn. params names each
// argument of fn in order using the "name[,optional]" syntax; arguments
// resolve exactly like struct fields tagged `unity:"name"`.
//
//	c.Register("db", unity.Constructor(sql.Open, "driver", "dsn"))
//
// An invalid constructor is reported when the entry is resolved.
func Constructor(fn interface{}, params ...string) Entry {
	info, err := reflector.Func(fn, params...)
	e := typeEntry{fn: fn, info: info, err: err}
	if info != nil {
		e.typ = info.Type
	}
	return e
}

type typeEntry struct {
	typ reflect.Type

	// Set by Constructor.
	fn   interface{}
	info *reflector.TypeInfo
	err  error
}

func (e typeEntry) Kind() EntryKind { return KindType }

func (e typeEntry) raw() interface{} {
	if e.fn != nil {
		return e.fn
	}
	return e.typ
}

func (e typeEntry) String() string {
	if e.fn != nil {
		return reflector.FuncName(e.fn)
	}
	return reflector.TypeName(e.typ)
}

// name is used in error messages for the built type.
func (e typeEntry) name() string {
	if e.typ == nil {
		return reflector.FuncName(e.fn)
	}
	return reflector.TypeName(e.typ)
}
