// Package cmd implements the command-line interface for anilink.
package cmd

import (
	"fmt"

	"github.com/anilink-cli/anilink/color"
	"github.com/anilink-cli/anilink/style"
	"github.com/anilink-cli/anilink/util"
	"github.com/anilink-cli/anilink/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"output artifacts", "output", mo.Some("o"), where.Output},
	{"metadata cache", "metadata", mo.Some("m"), where.MetadataCache},
	{"log files", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				handleErr(util.Delete(target.location()))
				fmt.Printf("%s %s cleared\n", style.Fg(color.Green)("✓"), target.name)
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
