// Package main is the entry point for the anilink application.
package main

import (
	"github.com/anilink-cli/anilink/cmd"
	"github.com/anilink-cli/anilink/config"
	"github.com/anilink-cli/anilink/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
