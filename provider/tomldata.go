package provider

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lyraproj/objx/record"
)

const keySep = "\x00"

// TOMLData reads a TOML document from a file and returns it as a Hash. Tables become nested Hash values.
// Keys are kept in the order in which they appear in the file. A file that does not exist yields an
// empty Hash.
func TOMLData(path string) (*record.Hash, error) {
	var data map[string]interface{}
	md, err := toml.DecodeFile(path, &data)
	if err != nil {
		if os.IsNotExist(err) {
			return record.New(), nil
		}
		return nil, err
	}

	// order maps the joined path of a table to its keys in document order
	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, k := range md.Keys() {
		for i := range k {
			p := strings.Join(k[:i+1], keySep)
			if !seen[p] {
				seen[p] = true
				parent := strings.Join(k[:i], keySep)
				order[parent] = append(order[parent], k[i])
			}
		}
	}
	return tomlHash(data, ``, order), nil
}

func tomlHash(m map[string]interface{}, path string, order map[string][]string) *record.Hash {
	h := record.NewWithCapacity(len(m))
	for _, k := range order[path] {
		if v, ok := m[k]; ok {
			h.Put(k, tomlValue(v, joinKey(path, k), order))
		}
	}
	if h.Len() < len(m) {
		rest := make([]string, 0, len(m)-h.Len())
		for k := range m {
			if _, ok := h.GetOwn(k); !ok {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			h.Put(k, tomlValue(m[k], joinKey(path, k), order))
		}
	}
	return h
}

func tomlValue(v interface{}, path string, order map[string][]string) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		return tomlHash(v, path, order)
	case []map[string]interface{}:
		a := make([]interface{}, len(v))
		for i, e := range v {
			a[i] = record.FromMap(e)
		}
		return a
	}
	return v
}

func joinKey(path, key string) string {
	if path == `` {
		return key
	}
	return path + keySep + key
}
