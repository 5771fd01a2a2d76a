package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/style"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Field is a registered configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options lists the accepted values. Empty means any value of the default's type.
	Options []string
}

// Pretty renders the field for "alpha config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable bound to the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Alpha + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Check reports whether v is acceptable for the field.
func (f *Field) Check(v any) error {
	if len(f.Options) == 0 {
		return nil
	}

	s := fmt.Sprint(v)
	if lo.Contains(f.Options, s) {
		return nil
	}
	return fmt.Errorf("invalid value %q for %s, expected one of: %s", s, f.Key, strings.Join(f.Options, ", "))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Env         string   `json:"env"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string, options ...string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	levels := lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string { return l.String() })

	register(key.NetworkConnectTimeout, 10, "Timeout in seconds for dialing a resolver endpoint, including the TLS handshake")
	register(key.NetworkReadTimeout, 10, "Timeout in seconds for reading a resolver response")
	register(key.NetworkFingerprint, false, "Use a browser TLS fingerprint for resolver requests.\nHelps with endpoints behind anti-bot challenges")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent sent to resolvers unless a resolver header overrides it")

	register(key.ParseConcurrency, 4, "Number of resolvers analysed in parallel when using --all")
	register(key.ParseSave, true, "Save successful results to history")
	register(key.ParseDefaultResolver, "", "Resolver (name or id) to use when none is given.\nType \"alpha resolvers list\" to show available resolvers")

	register(key.SubscriptionTimeout, 15, "Timeout in seconds for fetching a subscription document")

	register(key.QueryLimit, 20, "Number of recently analysed subject URLs to remember")
	register(key.QuerySuggestions, true, "Suggest recently analysed subject URLs on completion")

	register(key.DownloadsPath, "", "Directory for downloaded media.\nEmpty means the platform default")
	register(key.DownloadsAudioCover, true, "Save the cover image next to downloaded audio")

	register(key.UpdateURL, "", "URL of the update manifest.\nEmpty disables update checks")

	register(key.IconsVariant, "plain", "Icons variant. The nerd variant needs a nerd font", icon.AvailableVariants()...)

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log level, from least to most verbose", levels...)
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer version when showing help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"join":   strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			if value == "" {
				return style.Faint(`""`)
			}
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .TypeName }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))

// TypeName is the type of the field's default, as shown by Pretty.
func (f *Field) TypeName() string {
	return f.typeName()
}
