// Package provider contains the functions that read records from files and other data sources.
package provider

import (
	"path/filepath"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
)

// A DataFunc reads a record from the file at the given path.
type DataFunc func(path string) (*record.Hash, error)

var dataFuncs = map[string]DataFunc{
	`.json`: JSONData,
	`.toml`: TOMLData,
	`.yaml`: YAMLData,
	`.yml`:  YAMLData,
}

// Load reads the file at the given path using the DataFunc registered for its extension.
func Load(path string) (*record.Hash, error) {
	ext := strings.ToLower(filepath.Ext(path))
	df, ok := dataFuncs[ext]
	if !ok {
		return nil, api.Error(api.UnsupportedFormat, issue.H{`path`: path, `ext`: ext})
	}
	return df(path)
}

// LoadAll reads each of the given paths using Load.
func LoadAll(paths []string) ([]api.Record, error) {
	rs := make([]api.Record, len(paths))
	for i, path := range paths {
		h, err := Load(path)
		if err != nil {
			return nil, err
		}
		rs[i] = h
	}
	return rs, nil
}
