// Package record contains the api.Record implementations used by objx.
package record

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/lyraproj/objx/api"
)

// Hash is an api.Record that keeps its own entries in insertion order. A Hash may have a parent
// record which acts as its prototype: keys of the parent are members of the Hash but are not
// own entries of it.
type Hash struct {
	keys     []string
	entries  map[string]interface{}
	parent   api.Record
	typeName string
}

// New returns a new empty Hash of type Object without a parent.
func New() *Hash {
	return NewWithCapacity(0)
}

// NewWithCapacity returns a new empty Hash with room for the given number of entries.
func NewWithCapacity(capacity int) *Hash {
	return &Hash{keys: make([]string, 0, capacity), entries: make(map[string]interface{}, capacity)}
}

// Inherit returns a new empty Hash of type Object that inherits the entries of the given parent.
func Inherit(parent api.Record) *Hash {
	h := New()
	h.parent = parent
	return h
}

// NewTyped returns a new empty Hash that reports the given type name and inherits the entries of
// the given parent. The parent may be nil.
func NewTyped(typeName string, parent api.Record) *Hash {
	h := Inherit(parent)
	h.typeName = typeName
	return h
}

// FromMap returns a new Hash with the entries of the given map. Keys are added in sorted order.
func FromMap(m map[string]interface{}) *Hash {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := NewWithCapacity(len(keys))
	for _, k := range keys {
		h.Put(k, m[k])
	}
	return h
}

// FromPairs returns a new Hash built from alternating keys and values. A panic is raised if the
// number of arguments is odd or if a key is not a string.
func FromPairs(kvs ...interface{}) *Hash {
	if len(kvs)%2 != 0 {
		panic(fmt.Errorf(`FromPairs called with an odd number of arguments`))
	}
	h := NewWithCapacity(len(kvs) / 2)
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			panic(fmt.Errorf(`FromPairs key %v is not a string`, kvs[i]))
		}
		h.Put(k, kvs[i+1])
	}
	return h
}

// OwnKeys returns a copy of the own keys of this Hash in insertion order.
func (h *Hash) OwnKeys() []string {
	ks := make([]string, len(h.keys))
	copy(ks, h.keys)
	return ks
}

func (h *Hash) GetOwn(key string) (interface{}, bool) {
	v, ok := h.entries[key]
	return v, ok
}

func (h *Hash) Get(key string) (interface{}, bool) {
	if v, ok := h.entries[key]; ok {
		return v, true
	}
	if h.parent != nil {
		return h.parent.Get(key)
	}
	return nil, false
}

func (h *Hash) Has(key string) bool {
	if _, ok := h.entries[key]; ok {
		return true
	}
	return h.parent != nil && h.parent.Has(key)
}

func (h *Hash) Put(key string, value interface{}) {
	if h.entries == nil {
		h.entries = make(map[string]interface{})
	}
	if _, ok := h.entries[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.entries[key] = value
}

// Delete removes the own entry for the given key. An inherited entry with the same key becomes
// visible again.
func (h *Hash) Delete(key string) {
	if _, ok := h.entries[key]; !ok {
		return
	}
	delete(h.entries, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

func (h *Hash) Len() int {
	return len(h.keys)
}

// Parent returns the record that this Hash inherits from or nil.
func (h *Hash) Parent() api.Record {
	return h.parent
}

// TypeName returns the name given to NewTyped, or "Object".
func (h *Hash) TypeName() string {
	if h.typeName == `` {
		return api.ObjectTypeName
	}
	return h.typeName
}

// ToMap returns a map containing the own entries of this Hash.
func (h *Hash) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(h.keys))
	for _, k := range h.keys {
		m[k] = h.entries[k]
	}
	return m
}

func (h *Hash) String() string {
	b := bytes.NewBufferString(`{`)
	for i, k := range h.keys {
		if i > 0 {
			b.WriteString(`, `)
		}
		_, _ = fmt.Fprintf(b, "%q: %v", k, h.entries[k])
	}
	b.WriteByte('}')
	return b.String()
}
