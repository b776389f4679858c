// Utility program to convert a YAML record on stdin to formatted JSON on stdout. The order of
// the keys is retained.
package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/lyraproj/objx/record"
	"gopkg.in/yaml.v3"
)

func convert(in io.Reader, out io.Writer) error {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}
	body := record.New()
	if err = yaml.Unmarshal(data, body); err != nil {
		return err
	}
	var bytes []byte
	if bytes, err = json.MarshalIndent(body, ``, ` `); err == nil {
		_, err = out.Write(bytes)
	}
	return err
}

func main() {
	if err := convert(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}
