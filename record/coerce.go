package record

import (
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
)

// ToRecord coerces the given interface{} argument to an api.Record and returns it. Nil is returned
// when the argument is nil. A panic is raised if the argument cannot be coerced into a record.
func ToRecord(argName string, vi interface{}) api.Record {
	switch v := vi.(type) {
	case nil:
		return nil
	case api.Record:
		if IsNil(v) {
			return nil
		}
		return v
	case map[string]interface{}:
		return Map(v)
	}

	rv := reflect.ValueOf(vi)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		if rv.IsNil() {
			return nil
		}
		keys := rv.MapKeys()
		m := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			m[k.String()] = rv.MapIndex(k).Interface()
		}
		return FromMap(m)
	}
	panic(api.Error(api.NotARecord, issue.H{`arg`: argName}))
}

// IsNil returns true if the given record is nil or is a typed nil such as a nil *Hash or a nil Map.
func IsNil(r api.Record) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Equal returns true when the two records have the same own keys mapped to deeply equal values. Key
// order and inherited entries are not considered.
func Equal(a, b api.Record) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.OwnKeys() {
		av, _ := a.GetOwn(k)
		bv, ok := b.GetOwn(k)
		if !(ok && reflect.DeepEqual(av, bv)) {
			return false
		}
	}
	return true
}
