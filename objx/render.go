package objx

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Text render output as plain text
	Text = RenderName(`s`)
)

// Render renders a value on a writer using a specified RenderName. A panic is raised if the
// RenderName is unknown or if the value cannot be rendered.
func Render(renderAs RenderName, value interface{}, out io.Writer) {
	var err error
	switch renderAs {
	case JSON:
		var bs []byte
		if bs, err = json.Marshal(value); err == nil {
			if _, err = out.Write(bs); err == nil {
				_, err = io.WriteString(out, "\n")
			}
		}
	case YAML:
		if value == nil {
			_, err = io.WriteString(out, "\n")
			break
		}
		var bs []byte
		if bs, err = yaml.Marshal(value); err == nil {
			_, err = out.Write(bs)
		}
	case Text:
		_, err = fmt.Fprintln(out, value)
	default:
		panic(api.Error(api.UnknownRendering, issue.H{`name`: renderAs}))
	}
	if err != nil {
		panic(err)
	}
}
