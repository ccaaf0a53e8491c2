// Package main is the entry point for prism.
package main

import (
	"github.com/prism-cli/prism/cmd"
	"github.com/prism-cli/prism/config"
	"github.com/prism-cli/prism/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
