package cli

import (
	"bytes"

	"github.com/lyraproj/objx/objx"
)

// ExecuteMerge performs a merge using the CLI. It's primarily intended for testing purposes
func ExecuteMerge(args ...string) (output []byte, err error) {
	cmdOpts = objx.CommandOptions{}
	logLevel = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
