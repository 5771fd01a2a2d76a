// Package constant holds application identifiers and embedded assets.
package constant

import _ "embed"

const (
	// Alpha names the binary, the config file and the environment prefix.
	Alpha = "alpha"

	Version = "0.3.0"

	// UserAgent is sent to resolvers unless network.user_agent or a resolver header overrides it.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, set with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

//go:embed ascii.txt
var AsciiArtLogo string

// runtime.GOOS values with a dedicated code path.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
