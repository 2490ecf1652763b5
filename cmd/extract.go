// Package cmd implements the command-line interface for anilink.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anilink-cli/anilink/color"
	"github.com/anilink-cli/anilink/extractor"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/report"
	"github.com/anilink-cli/anilink/server"
	"github.com/anilink-cli/anilink/source"
	"github.com/anilink-cli/anilink/style"
	"github.com/anilink-cli/anilink/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	extractCmd.Flags().BoolP("listing", "l", true, "Write the episode listing file after the run")
	extractCmd.Flags().BoolP("html", "H", false, "Render an HTML report after the run")
	lo.Must0(viper.BindPFlag(key.OutputListing, extractCmd.Flags().Lookup("listing")))
	lo.Must0(viper.BindPFlag(key.OutputHTML, extractCmd.Flags().Lookup("html")))

	extractCmd.SetOut(os.Stdout)
}

// extractCmd performs a one-shot extraction run from the terminal.
var extractCmd = &cobra.Command{
	Use:   "extract [identifier]",
	Short: "Extract stream URLs for every episode of a title",
	Long: `Resolve a title by its Anilist identifier or watch page URL, then walk its
episodes and extract a direct stream URL for each one.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  anilink extract 21\n  anilink extract https://www.miruro.to/watch/21/episode-1",
	Run: func(cmd *cobra.Command, args []string) {
		var raw string
		if len(args) > 0 {
			raw = args[0]
		} else {
			prompt := survey.Input{Message: "Anilist ID or watch URL:"}
			handleErr(survey.AskOne(&prompt, &raw, survey.WithValidator(survey.Required)))
		}

		id, err := server.ParseIdentifier(raw)
		handleErr(err)

		coordinator := extractor.NewCoordinator(extractor.Deps{
			Config: extractor.ConfigFromViper(),
		})

		result, err := coordinator.Run(cmd.Context(), id)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(result))
		} else {
			printReport(cmd, result)
		}

		if viper.GetBool(key.OutputListing) {
			path, err := report.WriteListing(result)
			handleErr(err)
			cmd.Printf("%s listing written to %s\n", style.Fg(color.Green)("✓"), path)
		}

		if viper.GetBool(key.OutputHTML) {
			path, err := report.RenderHTML(result)
			handleErr(err)
			cmd.Printf("%s report written to %s\n", style.Fg(color.Green)("✓"), path)
		}
	},
}

// printReport renders a run summary for human consumption.
func printReport(cmd *cobra.Command, r *source.Report) {
	cmd.Println(style.New().Bold(true).Foreground(color.HiPurple).Render(r.Title.Name))

	for _, result := range r.Results {
		if result.Found() {
			cmd.Printf("  %s episode %d: %s\n", style.Fg(color.Green)("✓"), result.Episode, result.URL)
		} else {
			cmd.Printf("  %s episode %d: no stream after %s\n",
				style.Fg(color.Red)("✗"), result.Episode, util.Quantify(result.Attempts, "attempt", "attempts"))
		}
	}

	found := len(r.Found())
	cmd.Printf("%s resolved out of %s attempted\n",
		util.Quantify(found, "episode", "episodes"),
		util.Quantify(len(r.Results), "episode", "episodes"))

	if r.Truncated {
		cmd.Println(style.Fg(color.Yellow)("run budget expired before every episode was attempted"))
	}
}

func init() {
	extractCmd.AddCommand(extractSchemaCmd)
}

// extractSchemaCmd generates the JSON schema for the structured run report.
var extractSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured extraction report",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		schema := reflector.Reflect(&source.Report{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
