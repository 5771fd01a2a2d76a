package extract

import (
	"fmt"
	"strings"

	"github.com/appecho/alpha/jsontree"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Index groups mapping paths by their placeholder token. Paths of one token keep document order.
type Index map[string][]string

// Paths returns the paths of every token, token by token.
func (i Index) Paths(tokens ...string) []string {
	return lo.FlatMap(tokens, func(token string, _ int) []string {
		return i[token]
	})
}

// ParseMapping reads a mapping document of the form {"dot.path": "${token}"}.
// Entries whose value is blank or not a scalar are skipped.
func ParseMapping(doc string) (Index, error) {
	if strings.TrimSpace(doc) == "" {
		return Index{}, nil
	}

	root, err := jsontree.Parse([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	if root.Kind() != jsontree.Object {
		return nil, fmt.Errorf("mapping: expected an object, got %s", root.Kind())
	}

	index := make(Index)
	root.EachField(func(path string, value *jsontree.Node) {
		text, _ := value.Text()
		token := strings.TrimSpace(text)
		if token == "" {
			return
		}
		index[token] = append(index[token], path)
	})

	return index, nil
}

// CompileMapping is ParseMapping that degrades to an empty index on bad input.
func CompileMapping(doc string) Index {
	return mo.TupleToResult(ParseMapping(doc)).OrElse(Index{})
}
