// Package cmd implements the command-line interface for anilink.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anilink-cli/anilink/color"
	"github.com/anilink-cli/anilink/constant"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/style"
	"github.com/anilink-cli/anilink/util"
	"github.com/anilink-cli/anilink/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	// Initialize cleanup of localized temporary files on application startup.
	// Stale browser profiles accumulate here after abnormal exits.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the anilink application.
var rootCmd = &cobra.Command{
	Use:   constant.Anilink,
	Short: "An anime stream URL extraction service and command-line client",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Anilink) + "\n" +
		style.Italic("    - An anime stream URL extraction service and command-line client"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
