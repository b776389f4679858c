package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the own entries of the Hash as a JSON object, keys in insertion order.
func (h *Hash) MarshalJSON() ([]byte, error) {
	b := bytes.NewBufferString(`{`)
	for i, k := range h.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(h.entries[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON replaces the own entries of the Hash with the entries of the given JSON object. Nested
// objects become nested *Hash values so that key order is retained throughout. The parent and type name
// of the Hash are not affected.
func (h *Hash) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := readJSON(dec)
	if err != nil {
		return err
	}
	nh, ok := v.(*Hash)
	if !ok {
		return api.Error(api.NotARecord, issue.H{`arg`: `JSON value`})
	}
	h.keys = nh.keys
	h.entries = nh.entries
	return nil
}

func readJSON(dec *json.Decoder) (interface{}, error) {
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t {
	case json.Delim('{'):
		h := New()
		for dec.More() {
			if t, err = dec.Token(); err != nil {
				return nil, err
			}
			k, ok := t.(string)
			if !ok {
				return nil, fmt.Errorf(`unexpected JSON object key %v`, t)
			}
			var v interface{}
			if v, err = readJSON(dec); err != nil {
				return nil, err
			}
			h.Put(k, v)
		}
		_, err = dec.Token()
		return h, err
	case json.Delim('['):
		a := make([]interface{}, 0)
		for dec.More() {
			var v interface{}
			if v, err = readJSON(dec); err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		_, err = dec.Token()
		return a, err
	default:
		return t, nil
	}
}

// MarshalYAML produces a mapping node with the own entries of the Hash, keys in insertion order.
func (h *Hash) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: `!!map`}
	for _, k := range h.keys {
		vn := &yaml.Node{}
		if err := vn.Encode(h.entries[k]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: `!!str`, Value: k}, vn)
	}
	return n, nil
}

// UnmarshalYAML replaces the own entries of the Hash with the entries of the given mapping node.
// Nested mappings become nested *Hash values.
func (h *Hash) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return api.Error(api.NotARecord, issue.H{`arg`: `YAML value`})
	}
	nh := NewWithCapacity(len(n.Content) / 2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var k string
		if err := n.Content[i].Decode(&k); err != nil {
			return err
		}
		v, err := readYAML(n.Content[i+1])
		if err != nil {
			return err
		}
		nh.Put(k, v)
	}
	h.keys = nh.keys
	h.entries = nh.entries
	return nil
}

func readYAML(n *yaml.Node) (interface{}, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		nh := New()
		if err := nh.UnmarshalYAML(n); err != nil {
			return nil, err
		}
		return nh, nil
	case yaml.SequenceNode:
		a := make([]interface{}, len(n.Content))
		for i, e := range n.Content {
			v, err := readYAML(e)
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return a, nil
	}
	var v interface{}
	err := n.Decode(&v)
	return v, err
}
