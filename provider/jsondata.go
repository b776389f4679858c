package provider

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
)

// JSONData reads a JSON object from a file and returns it as a Hash. The key order of the file is
// retained. A file that does not exist yields an empty Hash.
func JSONData(path string) (*record.Hash, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.New(), nil
		}
		return nil, err
	}
	bs = bytes.TrimSpace(bs)
	if len(bs) == 0 || bs[0] != '{' {
		return nil, api.Error(api.JSONNotHash, issue.H{`path`: path})
	}
	h := record.New()
	if err = json.Unmarshal(bs, h); err != nil {
		return nil, err
	}
	return h, nil
}
