// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Network - these keys govern the fetch capability used against resolver endpoints.
const (
	NetworkConnectTimeout = "network.connect_timeout"
	NetworkReadTimeout    = "network.read_timeout"
	NetworkFingerprint    = "network.fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// Parsing - these keys configure how subject URLs are analysed.
const (
	ParseConcurrency     = "parse.concurrency"
	ParseSave            = "parse.save"
	ParseDefaultResolver = "parse.default_resolver"
)

// Subscriptions - these keys configure bulk resolver imports.
const (
	SubscriptionTimeout = "subscription.timeout"
)

// Subject history - these keys configure the recently analysed subject URLs.
const (
	QueryLimit       = "query.limit"
	QuerySuggestions = "query.suggestions"
)

// Downloads - these keys configure the media-download sink.
const (
	DownloadsPath       = "downloads.path"
	DownloadsAudioCover = "downloads.audio_cover"
)

// Updates - these keys configure the update manifest check.
const (
	UpdateURL = "update.url"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
