package record

import (
	"sort"

	"github.com/lyraproj/objx/api"
)

// Map adapts a plain map to the api.Record interface. All entries of a Map are own entries and
// nothing is inherited.
type Map map[string]interface{}

// OwnKeys returns the keys of the map in sorted order.
func (m Map) OwnKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Map) GetOwn(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Get(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m Map) Put(key string, value interface{}) {
	m[key] = value
}

func (m Map) Len() int {
	return len(m)
}

func (m Map) TypeName() string {
	return api.ObjectTypeName
}
