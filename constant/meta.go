// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anilink is the canonical application identifier used for filesystem paths and CLI branding.
	Anilink = "anilink"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to external services.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

const (
	// AnilistURL is the GraphQL endpoint used for title metadata lookups.
	AnilistURL = "https://graphql.anilist.co"

	// WatchBase is the catalog site's episode page URL prefix.
	// Episode pages live at <WatchBase>/<id>/episode-<n>.
	WatchBase = "https://www.miruro.to/watch"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
