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

package reflector

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Tag is the struct tag that marks a field as a constructor parameter.
//
//   type Server struct {
//     Log  *zap.Logger `unity:"log"`
//     Port int         `unity:"port,optional"`
//   }
const Tag = "unity"

// Param is a single constructor parameter.
type Param struct {
	// Name is the key used to look up explicit arguments.
	Name string

	// Type is the declared type of the parameter.
	Type reflect.Type

	// HasType is false for parameters declared as the empty interface.
	// Untyped parameters are never satisfied by binds or autowiring.
	HasType bool

	// Optional parameters keep their zero value when nothing resolves them.
	Optional bool

	index int
}

// TypeInfo describes how to instantiate a type.
type TypeInfo struct {
	// Type is the type of the instances produced. Struct types are always
	// produced as pointers.
	Type reflect.Type

	// Name is a printable name for Type.
	Name string

	// Instantiable is false for interfaces and non-struct kinds without a
	// constructor.
	Instantiable bool

	// HasConstructor is true if the type has at least one parameter or is
	// built by a constructor function.
	HasConstructor bool

	Params []Param

	elem    reflect.Type  // struct backing pointer instances
	ctor    reflect.Value // constructor function, if any
	ctorErr bool          // ctor returns (T, error)
}

// RequiredParams returns the number of non-optional parameters.
func (ti *TypeInfo) RequiredParams() int {
	n := 0
	for _, p := range ti.Params {
		if !p.Optional {
			n++
		}
	}
	return n
}

// Reflector inspects types so that a container can construct them.
type Reflector interface {
	// Reflect returns the TypeInfo for t.
	Reflect(t reflect.Type) (*TypeInfo, error)

	// NewInstance builds an instance from positional arguments aligned with
	// TypeInfo.Params. An invalid reflect.Value leaves the parameter at its
	// zero value.
	NewInstance(ti *TypeInfo, args []reflect.Value) (interface{}, error)

	// NewInstanceWithoutConstructor builds an instance without resolving
	// any parameter.
	NewInstanceWithoutConstructor(ti *TypeInfo) (interface{}, error)

	// IsClass reports whether t can be autowired.
	IsClass(t reflect.Type) bool
}

// Definer is implemented by reflectors that accept constructor functions.
type Definer interface {
	Define(fn interface{}, params ...string) error
}

// Default is the Reflector used by containers unless told otherwise.
//
// Struct types are built by allocating the struct and assigning every field
// tagged with Tag. Types returned by a constructor registered with Define
// are built by calling that constructor.
type Default struct {
	mu    sync.RWMutex
	ctors map[reflect.Type]*TypeInfo

	structs sync.Map // reflect.Type -> *TypeInfo
}

var (
	_ Reflector = (*Default)(nil)
	_ Definer   = (*Default)(nil)
)

// New returns an empty Default reflector.
func New() *Default {
	return &Default{
		ctors: make(map[reflect.Type]*TypeInfo),
	}
}

// Define registers fn as the constructor for the type it returns. params
// names each argument of fn in order, using the "name[,optional]" syntax.
// Defining a constructor for an already defined type replaces it.
func (r *Default) Define(fn interface{}, params ...string) error {
	ti, err := Func(fn, params...)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctors[ti.Type] = ti
	return nil
}

// Reflect returns the TypeInfo for t.
func (r *Default) Reflect(t reflect.Type) (*TypeInfo, error) {
	if t == nil {
		return nil, errors.New("can not reflect a nil type")
	}

	if ti, ok := r.constructor(t); ok {
		return ti, nil
	}

	switch {
	case t.Kind() == reflect.Struct:
		if ti, ok := r.constructor(reflect.PtrTo(t)); ok {
			return ti, nil
		}
		return r.structInfo(reflect.PtrTo(t))
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		return r.structInfo(t)
	default:
		return &TypeInfo{Type: t, Name: TypeName(t)}, nil
	}
}

// IsClass reports whether t is a struct, a pointer to a struct, or a type
// with a defined constructor.
func (r *Default) IsClass(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if _, ok := r.constructor(t); ok {
		return true
	}

	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

// NewInstance builds an instance of ti using args.
func (r *Default) NewInstance(ti *TypeInfo, args []reflect.Value) (interface{}, error) {
	if !ti.Instantiable {
		return nil, fmt.Errorf("type %s is not instantiable", ti.Name)
	}
	if len(args) != len(ti.Params) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", ti.Name, len(ti.Params), len(args))
	}

	if ti.ctor.IsValid() {
		return ti.call(args)
	}

	v := reflect.New(ti.elem)
	for i, p := range ti.Params {
		if args[i].IsValid() {
			v.Elem().Field(p.index).Set(args[i])
		}
	}
	return v.Interface(), nil
}

// NewInstanceWithoutConstructor allocates a zero instance of ti. Types built
// by a constructor function have it called with zero arguments, since Go
// has no way to bypass it.
func (r *Default) NewInstanceWithoutConstructor(ti *TypeInfo) (interface{}, error) {
	if !ti.Instantiable {
		return nil, fmt.Errorf("type %s is not instantiable", ti.Name)
	}

	if ti.ctor.IsValid() {
		return ti.call(make([]reflect.Value, len(ti.Params)))
	}
	return reflect.New(ti.elem).Interface(), nil
}

func (r *Default) constructor(t reflect.Type) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ti, ok := r.ctors[t]
	return ti, ok
}

func (r *Default) structInfo(ptr reflect.Type) (*TypeInfo, error) {
	if cached, ok := r.structs.Load(ptr); ok {
		return cached.(*TypeInfo), nil
	}

	elem := ptr.Elem()
	ti := &TypeInfo{
		Type:         ptr,
		Name:         TypeName(ptr),
		Instantiable: true,
		elem:         elem,
	}

	for i := 0; i < elem.NumField(); i++ {
		f := elem.Field(i)
		tag, ok := f.Tag.Lookup(Tag)
		if !ok || tag == "-" {
			continue
		}
		if f.PkgPath != "" {
			return nil, fmt.Errorf("field %s of %s is tagged %q but unexported", f.Name, ti.Name, Tag)
		}

		name, optional, err := parseTag(tag)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s of %s", f.Name, ti.Name)
		}
		if name == "" {
			name = f.Name
		}

		ti.Params = append(ti.Params, Param{
			Name:     name,
			Type:     f.Type,
			HasType:  !isUntyped(f.Type),
			Optional: optional,
			index:    i,
		})
	}
	ti.HasConstructor = len(ti.Params) > 0

	r.structs.Store(ptr, ti)
	return ti, nil
}

// Func reflects a constructor function whose arguments are named by params.
//
// fn must return either a single value or a value and an error.
func Func(fn interface{}, params ...string) (*TypeInfo, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("constructor must be a function, got %T", fn)
	}

	ft := fv.Type()
	name := FuncName(fn)
	switch {
	case ft.IsVariadic():
		return nil, fmt.Errorf("constructor %s must not be variadic", name)
	case ft.NumOut() == 0 || ft.NumOut() > 2:
		return nil, fmt.Errorf("constructor %s must return a value and an optional error", name)
	case ft.NumOut() == 2 && !isErr(ft.Out(1)):
		return nil, fmt.Errorf("second result of constructor %s must be an error", name)
	case isErr(ft.Out(0)):
		return nil, fmt.Errorf("first result of constructor %s must not be an error", name)
	case ft.NumIn() != len(params):
		return nil, fmt.Errorf("constructor %s takes %d arguments but %d names were given", name, ft.NumIn(), len(params))
	}

	ti := &TypeInfo{
		Type:           ft.Out(0),
		Name:           TypeName(ft.Out(0)),
		Instantiable:   true,
		HasConstructor: true,
		ctor:           fv,
		ctorErr:        ft.NumOut() == 2,
	}

	seen := make(map[string]struct{}, len(params))
	for i, decl := range params {
		pname, optional, err := parseTag(decl)
		if err != nil {
			return nil, errors.Wrapf(err, "constructor %s", name)
		}
		if pname == "" {
			return nil, fmt.Errorf("argument %d of constructor %s has no name", i, name)
		}
		if _, dup := seen[pname]; dup {
			return nil, fmt.Errorf("constructor %s names argument %q twice", name, pname)
		}
		seen[pname] = struct{}{}

		in := ft.In(i)
		ti.Params = append(ti.Params, Param{
			Name:     pname,
			Type:     in,
			HasType:  !isUntyped(in),
			Optional: optional,
			index:    i,
		})
	}
	return ti, nil
}

func (ti *TypeInfo) call(args []reflect.Value) (interface{}, error) {
	ft := ti.ctor.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a.IsValid() {
			in[i] = a
		} else {
			in[i] = reflect.Zero(ft.In(i))
		}
	}

	out := ti.ctor.Call(in)
	if ti.ctorErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// Assignable converts v into a value that can be stored in a parameter of
// type t. Nil is accepted for nillable types; a non-nil pointer is
// dereferenced when its element type fits t.
func Assignable(v interface{}, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Type().Elem().AssignableTo(t) {
		return rv.Elem(), true
	}
	return reflect.Value{}, false
}
