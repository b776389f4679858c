// Package api contains interfaces that are used throughout the objx code base
package api

// ObjectTypeName is the type name of a plain record, i.e. a record that is not an instance of any other type.
const ObjectTypeName = `Object`

// ObjxStrategy is an option that names the strategy used when merging sources into a target. Valid values
// are "extend", "augment", and "override".
const ObjxStrategy = `Objx::Strategy`

// ObjxConfig is an option that can be used to change absolute path of the objx merge plan.
const ObjxConfig = `Objx::Config`

type (
	// A Record is a mapping from string keys to arbitrary values. Entries held directly by the record
	// are its own entries. A record may also see entries that it inherits from a parent record.
	Record interface {
		// OwnKeys returns the keys of the own entries of this record in a deterministic order.
		OwnKeys() []string

		// GetOwn returns the value of the own entry for the given key and true, or nil and false when
		// the record has no such own entry.
		GetOwn(key string) (interface{}, bool)

		// Get returns the value for the given key, searching own entries first and then inherited ones.
		Get(key string) (interface{}, bool)

		// Has returns true if the given key is a member of this record, own or inherited.
		Has(key string) bool

		// Put creates or replaces the own entry for the given key.
		Put(key string, value interface{})

		// Len returns the number of own entries.
		Len() int
	}

	// Typed is implemented by values that can report the name of the type that constructed them.
	Typed interface {
		TypeName() string
	}
)
