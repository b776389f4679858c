// Package merge contains the shallow merge operations of objx.
//
// All operations mutate the target record in place and return it. Only own entries of a source are
// read and sources are never modified. Nested values are shared by reference.
package merge

import (
	"reflect"

	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
)

// Extend copies the own entries of each source into the target, from left to right, so that when a key is
// present in several sources, the value of the last one wins. Nil sources are skipped. The target is
// returned.
func Extend(target api.Record, sources ...api.Record) api.Record {
	return mergeAll(target, sources, nil, nil)
}

// Augment copies the own entries of source into target for keys where target has no own entry or where
// that entry is nil. A typed nil such as a nil pointer, map, or slice counts as nil. Values such as 0, "", and false are present and are not replaced. The target is
// returned.
func Augment(target, source api.Record) api.Record {
	if !record.IsNil(source) {
		copyOwn(target, source, 0, missing, nil)
	}
	return target
}

// Override copies the own entries of source into target for keys that are members of target, own or
// inherited. Keys that are not members are never added. Values are copied even when they are nil or
// false. The target is returned.
func Override(target, source api.Record) api.Record {
	if !record.IsNil(source) {
		copyOwn(target, source, 0, member, nil)
	}
	return target
}

// Clone returns a new Hash holding the own entries of source. The copy is shallow.
func Clone(source api.Record) *record.Hash {
	h := record.NewWithCapacity(recordLen(source))
	Extend(h, source)
	return h
}

// mergeAll applies copyOwn to each source from left to right, skipping nil sources.
func mergeAll(target api.Record, sources []api.Record, accept func(api.Record, string) bool, explainer api.Explainer) api.Record {
	for i, source := range sources {
		if record.IsNil(source) {
			if explainer != nil {
				explainer.Skipped(i)
			}
			continue
		}
		copyOwn(target, source, i, accept, explainer)
	}
	return target
}

// copyOwn puts each own entry of src into dst unless accept is given and returns false for the key.
func copyOwn(dst, src api.Record, sourceIndex int, accept func(api.Record, string) bool, explainer api.Explainer) api.Record {
	for _, k := range src.OwnKeys() {
		if accept != nil && !accept(dst, k) {
			if explainer != nil {
				explainer.Rejected(k, sourceIndex)
			}
			continue
		}
		v, _ := src.GetOwn(k)
		dst.Put(k, v)
		if explainer != nil {
			explainer.Accepted(k, sourceIndex)
		}
	}
	return dst
}

func missing(target api.Record, key string) bool {
	v, ok := target.GetOwn(key)
	return !ok || isNil(v)
}

func member(target api.Record, key string) bool {
	return target.Has(key)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func recordLen(r api.Record) int {
	if record.IsNil(r) {
		return 0
	}
	return r.Len()
}
