package subscription

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/samber/lo"
)

var scaffold = lo.Must(template.New("subscription").Parse(constant.SubscriptionTemplate))

// Scaffold renders a one-resolver subscription document to start a new resolver from.
func Scaffold(name, endpoint string, kind media.Type) (string, error) {
	var b strings.Builder
	err := scaffold.Execute(&b, struct {
		Key, Name, Icon, URL, Type, Timeout, UserAgent string
	}{
		Key:       strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_")),
		Name:      name,
		URL:       endpoint,
		Type:      string(kind),
		Timeout:   strconv.Itoa(resolver.DefaultTimeout),
		UserAgent: constant.UserAgent,
	})

	return b.String(), err
}
