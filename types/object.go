// Package types contains the structural classification of values.
package types

import (
	"reflect"

	"github.com/lyraproj/objx/api"
)

var plainMapType = reflect.TypeOf(map[string]interface{}{})

// IsObject returns true if the given value is object-like.
//
// Nil, and typed nils such as a nil pointer or a nil map, are never object-like.
//
// When pure is false, maps, structs, slices, arrays, non-nil pointers, and any api.Record are
// object-like. A pointer to a scalar is a boxed value and counts too. Booleans, numbers, strings,
// functions, and channels are not.
//
// When pure is true, only plain records qualify, i.e. values whose type name is exactly "Object". That
// is an unnamed map[string]interface{}, or an api.Typed that reports that name. Structs, named types,
// slices, arrays, and functions do not qualify.
func IsObject(value interface{}, pure bool) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return false
		}
	}

	if pure {
		return TypeName(value) == api.ObjectTypeName
	}

	if _, ok := value.(api.Record); ok {
		return true
	}
	return isObjectKind(rv.Kind())
}

// TypeName returns the name of the type that constructed the given value. An api.Typed reports its own
// name. An unnamed map[string]interface{} is an "Object". Other values get the name of their Go type,
// pointers dereferenced.
func TypeName(value interface{}) string {
	if value == nil {
		return ``
	}
	if tv, ok := value.(api.Typed); ok {
		return tv.TypeName()
	}
	t := reflect.TypeOf(value)
	if t == plainMapType {
		return api.ObjectTypeName
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if n := t.Name(); n != `` {
		return n
	}
	return t.String()
}

func isObjectKind(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Ptr:
		return true
	default:
		return false
	}
}
