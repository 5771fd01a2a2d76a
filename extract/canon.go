package extract

import (
	"strings"

	"github.com/samber/lo"
)

// Canonicalize trims a raw URL, unescapes "\/" and upgrades protocol-relative URLs to https.
// It is idempotent.
func Canonicalize(raw string) string {
	u := strings.TrimSpace(raw)
	for strings.Contains(u, `\/`) {
		u = strings.ReplaceAll(u, `\/`, "/")
	}

	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}

	return u
}

// Usable reports whether a canonical URL is absolute http or https.
func Usable(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// UsableURLs canonicalizes raws and keeps the usable ones, first occurrence wins.
func UsableURLs(raws []string) []string {
	canonical := lo.Map(raws, func(raw string, _ int) string {
		return Canonicalize(raw)
	})
	return lo.Uniq(lo.Filter(canonical, func(u string, _ int) bool {
		return Usable(u)
	}))
}

// FirstNonBlank returns the first value that is not blank after trimming, trimmed.
func FirstNonBlank(values ...[]string) (string, bool) {
	for _, group := range values {
		for _, v := range group {
			if t := strings.TrimSpace(v); t != "" {
				return t, true
			}
		}
	}
	return "", false
}
