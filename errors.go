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
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/unity/reflector"
)

// DuplicateIDError is returned by Register when the id is already taken.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("identifier %q is already registered", e.ID)
}

// NotFoundError is returned when an identifier or a bound type is absent.
// Exactly one of ID and Type is set.
type NotFoundError struct {
	ID   string
	Type reflect.Type
}

func (e *NotFoundError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("no bind for type %s", reflector.TypeName(e.Type))
	}
	return fmt.Sprintf("identifier %q is not registered", e.ID)
}

// NonInstantiableError is returned when the container is asked to build an
// interface or any other type it has no way to construct.
type NonInstantiableError struct {
	Type reflect.Type
}

func (e *NonInstantiableError) Error() string {
	return fmt.Sprintf("type %s is not instantiable", reflector.TypeName(e.Type))
}

// MissingArgumentError is returned when a required constructor parameter
// was not given, has no bind and could not be autowired.
type MissingArgumentError struct {
	Param string
	Type  reflect.Type
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument %q for %s", e.Param, reflector.TypeName(e.Type))
}

// ArgumentTypeError is returned when an explicit argument or a bind value
// can not be assigned to the parameter it is meant for.
type ArgumentTypeError struct {
	Param string
	Type  reflect.Type
	Want  reflect.Type
	Got   reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("argument %q for %s must be %s, got %s",
		e.Param, reflector.TypeName(e.Type), reflector.TypeName(e.Want), reflector.TypeName(e.Got))
}

// CircularDependencyError is returned when building something requires
// building it again. Path lists the types from the outermost build to the
// repeated one when the cycle is found by autowiring. IDs lists the
// identifiers instead when the cycle runs through Get or Make, for
// example from a factory, a Ref bind or an `inject:"id"` field.
type CircularDependencyError struct {
	Path []reflect.Type
	IDs  []string
}

func (e *CircularDependencyError) Error() string {
	var names []string
	if len(e.IDs) > 0 {
		for _, id := range e.IDs {
			names = append(names, strconv.Quote(id))
		}
	} else {
		for _, t := range e.Path {
			names = append(names, reflector.TypeName(t))
		}
	}
	return "circular dependency detected: " + strings.Join(names, " -> ")
}

// ConstructionError wraps any failure to build the entry registered under
// ID, so callers can tell "not found" apart from "found but failed".
type ConstructionError struct {
	ID  string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("could not build %q: %v", e.ID, e.Err)
}

// Unwrap returns the underlying failure.
func (e *ConstructionError) Unwrap() error { return e.Err }

// Cause returns the underlying failure for github.com/pkg/errors.
func (e *ConstructionError) Cause() error { return e.Err }

// IsNotFound reports whether err is or wraps a *NotFoundError. An entry
// that was found but failed to build is not "not found", even when the
// build failed looking up another id, so the search stops at the first
// *ConstructionError. Use errors.As to look past it.
func IsNotFound(err error) bool {
	for err != nil {
		switch err.(type) {
		case *NotFoundError:
			return true
		case *ConstructionError:
			return false
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsDuplicateID reports whether err is or wraps a *DuplicateIDError.
func IsDuplicateID(err error) bool {
	var target *DuplicateIDError
	return errors.As(err, &target)
}

// IsNonInstantiable reports whether err is or wraps a *NonInstantiableError.
func IsNonInstantiable(err error) bool {
	var target *NonInstantiableError
	return errors.As(err, &target)
}

// IsMissingArgument reports whether err is or wraps a *MissingArgumentError.
func IsMissingArgument(err error) bool {
	var target *MissingArgumentError
	return errors.As(err, &target)
}

// IsCircularDependency reports whether err is or wraps a
// *CircularDependencyError.
func IsCircularDependency(err error) bool {
	var target *CircularDependencyError
	return errors.As(err, &target)
}

// IsConstructionError reports whether err is or wraps a *ConstructionError.
func IsConstructionError(err error) bool {
	var target *ConstructionError
	return errors.As(err, &target)
}
