// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"reflect"
)

// Copyable reports whether T is a plain value type whose element-wise copy is
// a deep copy: booleans, numbers, strings, and arrays/structs built only from
// those. Pointers, slices, maps, channels, funcs, interfaces and unsafe
// pointers (at any nesting depth) make T not copyable.
// Complexity: O(size of T's type tree).
func Copyable[T any]() bool {
	return copyableType(reflect.TypeFor[T]())
}

func copyableType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return false
	case reflect.Array:
		return copyableType(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !copyableType(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Copy returns a deep, element-wise copy of src with its own backing slice and
// the same access policy.
//
// Errors:
//   - ErrNilGrid if src is nil.
//   - ErrTypeNotCopyable if T owns references (see Copyable); no grid is built.
//
// Complexity: O(w*h).
func Copy[T any](src *Grid[T]) (*Grid[T], error) {
	if src == nil {
		return nil, ErrNilGrid
	}
	if !Copyable[T]() {
		return nil, fmt.Errorf("Copy[%v]: %w", reflect.TypeFor[T](), ErrTypeNotCopyable)
	}
	data := make([]T, len(src.data))
	copy(data, src.data)

	return &Grid[T]{width: src.width, height: src.height, data: data, unchecked: src.unchecked}, nil
}

// Clone is the method form of Copy.
func (g *Grid[T]) Clone() (*Grid[T], error) {
	return Copy(g)
}
