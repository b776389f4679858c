package merge

import (
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/types"
)

// A Mixer is a record that can merge sources into itself.
type Mixer interface {
	api.Record

	// Extend is Extend with this record as the target.
	Extend(sources ...api.Record) Mixer

	// Augment is Augment with this record as the target.
	Augment(source api.Record) Mixer

	// Override is Override with this record as the target.
	Override(source api.Record) Mixer
}

// Mixed embeds a target record and gives it the Mixer operations.
type Mixed struct {
	api.Record
}

// Mixin returns a Mixed wrapping the given target. If the target already is a *Mixed, it is returned as is.
func Mixin(target api.Record) *Mixed {
	if m, ok := target.(*Mixed); ok {
		return m
	}
	return &Mixed{target}
}

// Target returns the embedded record.
func (m *Mixed) Target() api.Record {
	return m.Record
}

// TypeName returns the type name of the embedded record, so a mixed plain record is still an Object.
func (m *Mixed) TypeName() string {
	return types.TypeName(m.Record)
}

func (m *Mixed) Extend(sources ...api.Record) Mixer {
	Extend(m.Record, sources...)
	return m
}

func (m *Mixed) Augment(source api.Record) Mixer {
	Augment(m.Record, source)
	return m
}

func (m *Mixed) Override(source api.Record) Mixer {
	Override(m.Record, source)
	return m
}
