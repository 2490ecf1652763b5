// Package cmd implements the command-line interface for anilink.
package cmd

import (
	"github.com/anilink-cli/anilink/extractor"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "TCP port to listen on (overrides the configured value)")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))
}

// serveCmd runs the extraction web service until interrupted.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the extraction web service",
	Long:    "Run the HTTP service that resolves stream URLs on demand.\nOne extraction at a time; concurrent requests queue behind the active run.",
	Example: "  anilink serve --port 5000",
	Run: func(cmd *cobra.Command, args []string) {
		coordinator := extractor.NewCoordinator(extractor.Deps{
			Config: extractor.ConfigFromViper(),
		})

		handleErr(server.Run(coordinator))
	},
}
