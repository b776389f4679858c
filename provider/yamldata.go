package provider

import (
	"io/ioutil"
	"os"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
	"gopkg.in/yaml.v3"
)

// YAMLData reads a YAML hash from a file and returns it as a Hash. The key order of the file is
// retained. A file that does not exist, or that is empty, yields an empty Hash.
func YAMLData(path string) (*record.Hash, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.New(), nil
		}
		return nil, err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(bs, &doc); err != nil {
		return nil, err
	}
	h := record.New()
	if doc.Kind == 0 || doc.Kind == yaml.DocumentNode && len(doc.Content) == 0 {
		return h, nil
	}
	n := &doc
	if n.Kind == yaml.DocumentNode {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, api.Error(api.YamlNotHash, issue.H{`path`: path})
	}
	if err = h.UnmarshalYAML(n); err != nil {
		return nil, err
	}
	return h, nil
}
