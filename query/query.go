// Package query remembers recently analysed subject URLs and suggests them back.
package query

import (
	"strings"
	"sync"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var (
	mu    sync.Mutex
	store = filesystem.Store[[]string](where.Subjects, 0)
)

func load() []string {
	cached, expired, err := store().Get()
	if err != nil || expired || cached == nil {
		return []string{}
	}
	return cached
}

// Remember puts subject at the front of the recent list. Subjects differing only
// in case count as the same, the list is capped at query.limit.
func Remember(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	recent := lo.UniqBy(append([]string{subject}, load()...), strings.ToLower)
	if limit := viper.GetInt(key.QueryLimit); limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return store().Set(recent)
}

// Recent returns the remembered subjects, newest first.
func Recent() []string {
	mu.Lock()
	defer mu.Unlock()

	return load()
}

// Forget clears the remembered subjects.
func Forget() error {
	mu.Lock()
	defer mu.Unlock()

	return store().Set([]string{})
}

// Suggest returns the most recent subject that fuzzily matches q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns every remembered subject that fuzzily matches q, newest first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.QuerySuggestions) {
		return []string{}
	}

	q = strings.TrimSpace(q)
	return lo.Filter(Recent(), func(subject string, _ int) bool {
		return fuzzy.MatchFold(q, subject)
	})
}
