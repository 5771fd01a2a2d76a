// Package extract pulls media fields out of a resolver response.
//
// Fields are looked up through the resolver's mapping first and fall back to a
// deep search over well-known key names. Extraction never fails: missing data
// simply yields nothing.
package extract

import (
	"strings"

	"github.com/appecho/alpha/jsontree"
	"github.com/samber/lo"
)

var tokenStripper = strings.NewReplacer("${", "", "}", "")

// Resolve follows a dot-separated path from root and returns every string it reaches.
// Arrays met along the way fan out over all their elements.
func Resolve(root *jsontree.Node, path string) []string {
	path = strings.TrimSpace(tokenStripper.Replace(path))
	if path == "" || root == nil {
		return nil
	}

	nodes := []*jsontree.Node{root}
	for _, segment := range strings.Split(path, ".") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		nodes = lo.FlatMap(nodes, func(node *jsontree.Node, _ int) []*jsontree.Node {
			return step(node, segment)
		})
		if len(nodes) == 0 {
			return nil
		}
	}

	return lo.FlatMap(nodes, func(node *jsontree.Node, _ int) []string {
		return node.Strings()
	})
}

func step(node *jsontree.Node, key string) []*jsontree.Node {
	switch node.Kind() {
	case jsontree.Object:
		child, ok := node.Field(key)
		if !ok || child.Kind() == jsontree.Null {
			return nil
		}
		return []*jsontree.Node{child}
	case jsontree.Array:
		return lo.FlatMap(node.Items(), func(item *jsontree.Node, _ int) []*jsontree.Node {
			return step(item, key)
		})
	case jsontree.Null, jsontree.Bool, jsontree.Number, jsontree.String:
		return nil
	}
	return nil
}
