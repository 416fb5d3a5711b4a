// Package main provides wowframeadj, a viewer/editor for the WoW
// client's layout-local.txt frame position file.
package main

import (
	"os"
	"strings"

	"github.com/EricaPomme/wowframeadj/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
