package jsontree

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a JSON document", t, func() {
		doc := `{"z":1,"a":{"title":"A \/ B","n":null},"list":[true,"x",1.50],"empty":[]}`

		Convey("When it is parsed", func() {
			root, err := Parse([]byte(doc))
			So(err, ShouldBeNil)

			Convey("Then object keys keep document order", func() {
				var keys []string
				root.EachField(func(key string, _ *Node) { keys = append(keys, key) })
				So(keys, ShouldResemble, []string{"z", "a", "list", "empty"})
			})

			Convey("Then strings are unescaped", func() {
				a, _ := root.Field("a")
				title, ok := a.Field("title")
				So(ok, ShouldBeTrue)
				So(title.Strings(), ShouldResemble, []string{"A / B"})
			})

			Convey("Then numbers keep their literal text", func() {
				list, _ := root.Field("list")
				So(list.Strings(), ShouldResemble, []string{"true", "x", "1.50"})
			})

			Convey("Then null is a node of its own kind", func() {
				a, _ := root.Field("a")
				n, ok := a.Field("n")
				So(ok, ShouldBeTrue)
				So(n.Kind(), ShouldEqual, Null)
				So(n.Strings(), ShouldBeEmpty)
			})

			Convey("Then empty arrays have no items", func() {
				empty, _ := root.Field("empty")
				So(empty.Kind(), ShouldEqual, Array)
				So(empty.Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given scalar roots", t, func() {
		for doc, kind := range map[string]Kind{`"s"`: String, `12`: Number, `false`: Bool, `null`: Null, `[1]`: Array} {
			root, err := Parse([]byte(doc))
			So(err, ShouldBeNil)
			So(root.Kind(), ShouldEqual, kind)
		}
	})

	Convey("Given malformed input", t, func() {
		for _, doc := range []string{``, `{`, `{"a":}`, `not json`, `{"a":1} trailing`} {
			_, err := Parse([]byte(doc))
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)
		}
	})
}

func TestStrings(t *testing.T) {
	Convey("Strings flattens arrays recursively", t, func() {
		node := NewArray(NewString("a"), NewNull(), NewArray(NewNumber("2"), NewObject()), NewBool(true))
		So(node.Strings(), ShouldResemble, []string{"a", "2", "true"})
	})

	Convey("Objects and nil nodes flatten to nothing", t, func() {
		So(NewObject().Set("k", NewString("v")).Strings(), ShouldBeEmpty)
		var nilNode *Node
		So(nilNode.Strings(), ShouldBeEmpty)
		So(nilNode.Kind(), ShouldEqual, Null)
	})

	Convey("Set keeps the first position of a replaced key", t, func() {
		obj := NewObject().Set("a", NewString("1")).Set("b", NewString("2")).Set("a", NewString("3"))
		var keys []string
		obj.EachField(func(key string, _ *Node) { keys = append(keys, key) })
		So(keys, ShouldResemble, []string{"a", "b"})
		a, _ := obj.Field("a")
		So(a.Strings(), ShouldResemble, []string{"3"})
	})
}

func TestMarshalJSON(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		root, err := Parse([]byte(`{ "z": [1.50, "a\"b", null], "a": {"t": false} }`))
		So(err, ShouldBeNil)

		Convey("It should encode back compactly in document order", func() {
			out, err := root.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"z":[1.50,"a\"b",null],"a":{"t":false}}`)
		})

		Convey("A nil node should encode as null", func() {
			var n *Node
			out, err := n.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "null")
		})
	})
}
