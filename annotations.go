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

	"github.com/pkg/errors"
	"go.uber.org/unity/reflector"
)

// InjectTag marks fields filled after construction when annotations are
// enabled. `inject:"id"` sets the field to the singleton registered under
// id; `inject:""` resolves it by its declared type, through a bind or by
// autowiring.
//
//	type Handler struct {
//		Log   *zap.Logger `inject:"logger"`
//		Cache *Cache      `inject:""`
//	}
const InjectTag = "inject"

type injectField struct {
	index int
	name  string
	typ   reflect.Type
	id    string
}

func injectFieldsOf(info *reflector.TypeInfo) ([]injectField, error) {
	t := info.Type
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil, nil
	}

	st := t.Elem()
	var fields []injectField
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		id, ok := f.Tag.Lookup(InjectTag)
		if !ok {
			continue
		}
		if f.PkgPath != "" {
			return nil, fmt.Errorf("field %s of %s is tagged %q but unexported", f.Name, info.Name, InjectTag)
		}
		fields = append(fields, injectField{index: i, name: f.Name, typ: f.Type, id: id})
	}
	return fields, nil
}

// injectFields fills the annotated fields of v.
func (b *builder) injectFields(info *reflector.TypeInfo, v interface{}) error {
	if !b.annotate {
		return nil
	}
	fields, err := injectFieldsOf(info)
	if err != nil || len(fields) == 0 {
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil
	}
	s := rv.Elem()

	for _, f := range fields {
		fv, err := b.resolveField(info, f)
		if err != nil {
			return errors.Wrapf(err, "injecting field %s of %s", f.name, info.Name)
		}
		av, ok := reflector.Assignable(fv, f.typ)
		if !ok {
			return &ArgumentTypeError{Param: f.name, Type: info.Type, Want: f.typ, Got: reflect.TypeOf(fv)}
		}
		s.Field(f.index).Set(av)
	}
	return nil
}

func (b *builder) resolveField(info *reflector.TypeInfo, f injectField) (interface{}, error) {
	if f.id != "" {
		return b.c.Get(f.id)
	}
	if fn := b.bindFor(f.typ, nil); fn != nil {
		return fn(b.c)
	}
	if b.autowire && b.reflector.IsClass(f.typ) {
		return b.autowireType(f.typ)
	}
	return nil, &MissingArgumentError{Param: f.name, Type: info.Type}
}

// checkFields is the dry-run counterpart of injectFields.
func (b *builder) checkFields(info *reflector.TypeInfo) error {
	if !b.annotate {
		return nil
	}
	fields, err := injectFieldsOf(info)
	if err != nil {
		return err
	}

	for _, f := range fields {
		switch {
		case f.id != "":
			if !b.c.Has(f.id) {
				err = &NotFoundError{ID: f.id}
			}
		case b.bindFor(f.typ, nil) != nil:
		case b.autowire && b.reflector.IsClass(f.typ):
			_, err = b.autowireType(f.typ)
		default:
			err = &MissingArgumentError{Param: f.name, Type: info.Type}
		}
		if err != nil {
			return errors.Wrapf(err, "injecting field %s of %s", f.name, info.Name)
		}
	}
	return nil
}
