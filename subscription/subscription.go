// Package subscription imports resolvers in bulk from subscription documents.
//
// A subscription is a JSON object keyed by resolver name. Each entry may carry a
// "response" template whose "${...}" strings are turned into the resolver mapping.
package subscription

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/appecho/alpha/jsontree"
	"github.com/appecho/alpha/resolver"
	"github.com/google/uuid"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	DefaultName = "Unknown"
	DefaultType = "General"
)

// Parse reads every resolver of a subscription document in document order.
// Entries that are not objects are skipped.
func Parse(doc []byte) ([]*resolver.Config, error) {
	root, err := jsontree.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("subscription: %w", err)
	}
	if root.Kind() != jsontree.Object {
		return nil, fmt.Errorf("subscription: expected an object, got %s", root.Kind())
	}

	configs := make([]*resolver.Config, 0, root.Len())
	root.EachField(func(_ string, entry *jsontree.Node) {
		if entry.Kind() != jsontree.Object {
			return
		}
		configs = append(configs, compileEntry(entry))
	})

	return configs, nil
}

// Compile is Parse that yields an empty list for a malformed document.
func Compile(doc []byte) []*resolver.Config {
	return mo.TupleToResult(Parse(doc)).OrElse([]*resolver.Config{})
}

func compileEntry(entry *jsontree.Node) *resolver.Config {
	config := &resolver.Config{
		ID:       uuid.NewString(),
		Name:     stringField(entry, "name", DefaultName),
		Icon:     stringField(entry, "icon", ""),
		Endpoint: stringField(entry, "url", ""),
		Type:     stringField(entry, "type", DefaultType),
		Timeout:  timeout(stringField(entry, "time", strconv.Itoa(resolver.DefaultTimeout))),
		Params:   []resolver.Param{},
	}

	if query, ok := entry.Field("Query"); ok {
		query.EachField(func(key string, value *jsontree.Node) {
			config.Params = append(config.Params, resolver.Param{Key: key, Value: paramValue(value)})
		})
	}

	template, _ := entry.Field("response")
	config.Mapping = DeriveMapping(template)

	return config
}

// stringField reads a scalar in its string form. Absent, null and structured values fall back to def.
func stringField(entry *jsontree.Node, key, def string) string {
	value, ok := entry.Field(key)
	if !ok {
		return def
	}
	if text, ok := value.Text(); ok {
		return text
	}
	return def
}

// paramValue sends scalars as their text and arrays or objects as compact JSON.
func paramValue(value *jsontree.Node) string {
	switch value.Kind() {
	case jsontree.Array, jsontree.Object:
		out, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(out)
	case jsontree.Null, jsontree.Bool, jsontree.Number, jsontree.String:
	}
	text, _ := value.Text()
	return text
}

func timeout(raw string) int {
	ms, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return resolver.DefaultTimeout
	}
	return ms
}

// DeriveMapping turns a response template into a mapping document. Every string of
// the form "${token}" becomes an entry keyed by its dot path from the template root.
// Arrays are searched with the path of the array itself.
func DeriveMapping(template *jsontree.Node) string {
	mapping := orderedmap.New[string, string]()
	collectPlaceholders(template, "", mapping)

	// marshalling string pairs cannot fail
	out, _ := json.Marshal(mapping)
	return string(out)
}

func collectPlaceholders(node *jsontree.Node, path string, mapping *orderedmap.OrderedMap[string, string]) {
	switch node.Kind() {
	case jsontree.Object:
		node.EachField(func(key string, value *jsontree.Node) {
			collectPlaceholders(value, join(path, key), mapping)
		})
	case jsontree.Array:
		for _, item := range node.Items() {
			collectPlaceholders(item, path, mapping)
		}
	case jsontree.String:
		text, _ := node.Text()
		if path != "" && isPlaceholder(text) {
			mapping.Set(path, text)
		}
	case jsontree.Null, jsontree.Bool, jsontree.Number:
	}
}

func isPlaceholder(s string) bool {
	return strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}")
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Entry documents the shape of one subscription entry for schema generation.
// Parse walks the raw tree instead, since template key order matters.
type Entry struct {
	Name     string            `json:"name,omitempty" jsonschema:"default=Unknown"`
	Icon     string            `json:"icon,omitempty"`
	URL      string            `json:"url,omitempty" jsonschema:"description=Endpoint with {url} standing for the subject url"`
	Type     string            `json:"type,omitempty" jsonschema:"default=General"`
	Time     string            `json:"time,omitempty" jsonschema:"description=Timeout in milliseconds,default=5000"`
	Query    map[string]string `json:"Query,omitempty" jsonschema:"description=Request headers"`
	Response map[string]any    `json:"response,omitempty" jsonschema:"description=Response template with ${placeholder} strings"`
}
