package api

import (
	"fmt"
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	BadVariable        = `OBJX_BAD_VARIABLE`
	CtyNotObject       = `OBJX_CTY_NOT_OBJECT`
	JSONNotHash        = `OBJX_JSON_NOT_HASH`
	NoSources          = `OBJX_NO_SOURCES`
	NotARecord         = `OBJX_NOT_A_RECORD`
	UnknownRendering   = `OBJX_UNKNOWN_RENDERING`
	UnknownStrategy    = `OBJX_UNKNOWN_STRATEGY`
	UnsupportedFormat  = `OBJX_UNSUPPORTED_FORMAT`
	UnsupportedVersion = `OBJX_UNSUPPORTED_VERSION`
	YamlNotHash        = `OBJX_YAML_NOT_HASH`
)

// Error creates a reported issue of severity error for the given code and arguments.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, 1)
}

func joinNames(v interface{}) string {
	if names, ok := v.([]string); ok {
		return strings.Join(names, `, `)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issue.Hard(BadVariable, `unable to parse variable '%{var}', expected key=value or key:value`)

	issue.Hard(CtyNotObject, `a value of type %{type} cannot be used as a record`)

	issue.Hard(JSONNotHash, `file '%{path}' does not contain a JSON object`)

	issue.Hard(NoSources, `no target or sources to merge`)

	issue.Hard(NotARecord, `%{arg} does not represent a record`)

	issue.Hard(UnknownRendering, `unknown rendering '%{name}'`)

	issue.Hard2(UnknownStrategy, `unknown merge strategy '%{name}', expected one of [%{names}]`,
		issue.HF{`names`: joinNames})

	issue.Hard(UnsupportedFormat, `file '%{path}' has an unsupported format '%{ext}'`)

	issue.Hard(UnsupportedVersion, `%{path}: unsupported version %{version}, expected 1`)

	issue.Hard(YamlNotHash, `file '%{path}' does not contain a YAML hash`)
}
