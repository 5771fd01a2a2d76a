package extract

import (
	"github.com/appecho/alpha/jsontree"
	"github.com/samber/lo"
)

// FindKeys walks the whole tree in pre-order and collects the flattened value
// of every field whose name is one of keys. Matched values are searched too.
func FindKeys(root *jsontree.Node, keys ...string) []string {
	var out []string
	collect(root, lo.Keyify(keys), &out)
	return out
}

func collect(node *jsontree.Node, keys map[string]struct{}, out *[]string) {
	switch node.Kind() {
	case jsontree.Object:
		node.EachField(func(key string, value *jsontree.Node) {
			if _, ok := keys[key]; ok {
				*out = append(*out, value.Strings()...)
			}
			collect(value, keys, out)
		})
	case jsontree.Array:
		for _, item := range node.Items() {
			collect(item, keys, out)
		}
	case jsontree.Null, jsontree.Bool, jsontree.Number, jsontree.String:
	}
}
