// Package explain contains the objx explainer logic
package explain

import (
	"bytes"
	"fmt"
	"strconv"
)

type event string

const (
	accepted = event(`accepted`)
	rejected = event(`rejected`)
	skipped  = event(`skipped`)
)

type entry struct {
	e      event
	key    string
	source int
}

// Explainer is an api.Explainer that keeps track of where each merged entry came from.
type Explainer struct {
	label   string
	sources []string
	events  []entry
	origin  map[string]int
	keys    []string
}

// NewExplainer creates an Explainer for a merge performed with the strategy that has the given label.
// The source names are used when rendering. A source without a name is rendered as "source <index>".
func NewExplainer(label string, sourceNames ...string) *Explainer {
	return &Explainer{label: label, sources: sourceNames, origin: make(map[string]int)}
}

func (ex *Explainer) Accepted(key string, sourceIndex int) {
	if _, ok := ex.origin[key]; !ok {
		ex.keys = append(ex.keys, key)
	}
	ex.origin[key] = sourceIndex
	ex.events = append(ex.events, entry{accepted, key, sourceIndex})
}

func (ex *Explainer) Rejected(key string, sourceIndex int) {
	ex.events = append(ex.events, entry{rejected, key, sourceIndex})
}

func (ex *Explainer) Skipped(sourceIndex int) {
	ex.events = append(ex.events, entry{skipped, ``, sourceIndex})
}

// Origin returns the index of the source that supplied the final value for the given key and true, or
// -1 and false if no source supplied a value.
func (ex *Explainer) Origin(key string) (int, bool) {
	if ix, ok := ex.origin[key]; ok {
		return ix, true
	}
	return -1, false
}

// RejectedBy returns the keys of the given source that the strategy left out, in the order they were
// encountered.
func (ex *Explainer) RejectedBy(sourceIndex int) []string {
	var keys []string
	for _, en := range ex.events {
		if en.e == rejected && en.source == sourceIndex {
			keys = append(keys, en.key)
		}
	}
	return keys
}

// SourceName returns the name of the source at the given index.
func (ex *Explainer) SourceName(sourceIndex int) string {
	if sourceIndex >= 0 && sourceIndex < len(ex.sources) && ex.sources[sourceIndex] != `` {
		return ex.sources[sourceIndex]
	}
	return `source ` + strconv.Itoa(sourceIndex)
}

func (ex *Explainer) String() string {
	b := bytes.Buffer{}
	_, _ = fmt.Fprintf(&b, "Merge using %s\n", ex.label)
	for _, k := range ex.keys {
		_, _ = fmt.Fprintf(&b, "  %q supplied by %s\n", k, ex.SourceName(ex.origin[k]))
	}
	for _, en := range ex.events {
		switch en.e {
		case rejected:
			_, _ = fmt.Fprintf(&b, "  %q from %s was %s\n", en.key, ex.SourceName(en.source), en.e)
		case skipped:
			_, _ = fmt.Fprintf(&b, "  %s was %s\n", ex.SourceName(en.source), en.e)
		}
	}
	return b.String()
}
