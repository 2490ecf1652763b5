// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anilink-cli/anilink/color"
	"github.com/anilink-cli/anilink/constant"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Anilink + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        reflect.TypeOf(f.Value).String(),
	})
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ServerPort, 5000, "TCP port the extraction web service listens on")
	register(key.ServerRatePerMinute, 5, "Per-client request ceiling for the web service, in requests per minute")
	register(key.ServerRateBurst, 5, "Per-client burst capacity for the web service rate ceiling")
	register(key.ServerWelcomeMessage, "Welcome! Provide ?anime_id=<id> to get video URLs.", "Informational message returned when no identifier is supplied")

	register(key.ExtractorMaxAttempts, 25, "Maximum play-gesture/scan attempts per episode before the episode is marked not found")
	register(key.ExtractorSettleInterval, "1200ms", "Fixed wait between a play gesture and the content scan.\nNo backoff or jitter is applied")
	register(key.ExtractorLoadTimeout, "5s", "Upper bound on a single episode page load.\nOn expiry the episode is marked not found and the run continues")
	register(key.ExtractorDetectTimeout, "5s", "Upper bound on the site episode-count probe.\nFailure falls back to the authoritative count")
	register(key.ExtractorRunTimeout, "600s", "Global wall-clock budget for one extraction run.\nChecked between episodes only")
	register(key.ExtractorEpisodeCap, 25, "Hard cap on the number of episodes attempted in one run, regardless of source counts")
	register(key.ExtractorFallbackCount, 12, "Episode count assumed when both the authoritative and site-probed counts are absent")
	register(key.ExtractorEpisodeCooldown, "1500ms", "Pause between consecutive episodes, as politeness toward the catalog site")

	register(key.BrowserHeadless, true, "Run the automation browser headless")
	register(key.BrowserBin, "", "Path to the browser binary.\nLeave empty to use the system default")
	register(key.BrowserWidth, 1920, "Browser viewport width")
	register(key.BrowserHeight, 1080, "Browser viewport height")

	register(key.MetadataCacheEnable, true, "Cache Anilist metadata lookups to disk to not spam the API")

	register(key.OutputListing, true, "Write the flat episode → url listing file after a run")
	register(key.OutputHTML, false, "Render an HTML report after a run")

	register(key.TelegramKeys, "", "Telegram credentials in BOT_TOKEN_CHAT_ID format.\nNotifications are disabled when empty")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
}
