// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Web Service - these keys govern the HTTP front door.
const (
	ServerPort           = "server.port"
	ServerRatePerMinute  = "server.rate_per_minute"
	ServerRateBurst      = "server.rate_burst"
	ServerWelcomeMessage = "server.welcome_message"
)

// Extraction Engine - these keys bound the polling/retry state machine and the run as a whole.
const (
	ExtractorMaxAttempts     = "extractor.max_attempts"
	ExtractorSettleInterval  = "extractor.settle_interval"
	ExtractorLoadTimeout     = "extractor.load_timeout"
	ExtractorDetectTimeout   = "extractor.detect_timeout"
	ExtractorRunTimeout      = "extractor.run_timeout"
	ExtractorEpisodeCap      = "extractor.episode_cap"
	ExtractorFallbackCount   = "extractor.fallback_count"
	ExtractorEpisodeCooldown = "extractor.episode_cooldown"
)

// Browser Automation - these keys configure the headless browser session.
const (
	BrowserHeadless = "browser.headless"
	BrowserBin      = "browser.bin"
	BrowserWidth    = "browser.width"
	BrowserHeight   = "browser.height"
)

// Metadata Configuration - these keys govern the retrieval and caching of title metadata.
const (
	MetadataCacheEnable = "metadata.cache"
)

// Output Artifacts - these keys configure the downstream listing and report files.
const (
	OutputListing = "output.listing"
	OutputHTML    = "output.html"
)

// Telegram Notifications - these keys manage the outbound chat notifier.
const (
	TelegramKeys = "telegram.keys"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern non-service application behavior.
const (
	CliColored = "cli.colored"
)
