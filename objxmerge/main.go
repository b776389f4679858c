// Command objx merges records read from YAML, JSON, and TOML files
package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/objx/cli"
)

func main() {
	cmd := cli.NewCommand()
	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
