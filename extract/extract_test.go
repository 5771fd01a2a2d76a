package extract

import (
	"testing"
	"time"

	"github.com/appecho/alpha/jsontree"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func tree(doc string) *jsontree.Node {
	return lo.Must(jsontree.Parse([]byte(doc)))
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Should fan out over arrays in element order", func() {
			So(Resolve(tree(`{"a":[{"b":"x"},{"b":"y"}]}`), "a.b"), ShouldResemble, []string{"x", "y"})
		})

		Convey("Should yield nothing for a missing key", func() {
			So(Resolve(tree(`{"a":{"c":"x"}}`), "a.b"), ShouldBeEmpty)
		})

		Convey("Should yield nothing through null or scalars", func() {
			So(Resolve(tree(`{"a":null}`), "a.b"), ShouldBeEmpty)
			So(Resolve(tree(`{"a":"x"}`), "a.b"), ShouldBeEmpty)
			So(Resolve(tree(`{"a":null}`), "a"), ShouldBeEmpty)
		})

		Convey("Should accept placeholder-wrapped paths and skip blank segments", func() {
			So(Resolve(tree(`{"a":{"b":"x"}}`), " ${a..b} "), ShouldResemble, []string{"x"})
		})

		Convey("Should yield nothing for a blank path", func() {
			So(Resolve(tree(`{"a":"x"}`), "${}"), ShouldBeEmpty)
			So(Resolve(tree(`{"a":"x"}`), "  "), ShouldBeEmpty)
		})

		Convey("Should flatten array leaves and stringify scalars", func() {
			doc := tree(`{"a":{"b":[["u1","u2"],3,true,{"x":1},null]}}`)
			So(Resolve(doc, "a.b"), ShouldResemble, []string{"u1", "u2", "3", "true"})
		})

		Convey("Should skip elements lacking the key", func() {
			So(Resolve(tree(`[{"b":"x"},{"c":"y"},{"b":"z"}]`), "b"), ShouldResemble, []string{"x", "z"})
		})
	})
}

func TestParseMapping(t *testing.T) {
	Convey("ParseMapping", t, func() {
		Convey("Should group paths by token in document order", func() {
			index, err := ParseMapping(`{"b.title":"${title}","a.url":" ${videoUrl} ","a.title":"${title}","blank":"  ","n":1}`)
			So(err, ShouldBeNil)
			So(index["${title}"], ShouldResemble, []string{"b.title", "a.title"})
			So(index["${videoUrl}"], ShouldResemble, []string{"a.url"})
			So(index["1"], ShouldResemble, []string{"n"})
			So(index, ShouldNotContainKey, "")
		})

		Convey("Should fail on malformed or non-object documents", func() {
			_, err := ParseMapping(`{"a":`)
			So(err, ShouldNotBeNil)
			_, err = ParseMapping(`["a"]`)
			So(err, ShouldNotBeNil)
		})

		Convey("CompileMapping should degrade to an empty index", func() {
			So(CompileMapping(`{"a":`), ShouldBeEmpty)
			So(CompileMapping(``), ShouldBeEmpty)
			So(CompileMapping(`"x"`), ShouldBeEmpty)
		})

		Convey("Paths should follow token order then document order", func() {
			index := CompileMapping(`{"p1":"${tag}","p2":"${title}","p3":"${tag}"}`)
			So(index.Paths(Title.Placeholders...), ShouldResemble, []string{"p2", "p1", "p3"})
		})
	})
}

func TestFindKeys(t *testing.T) {
	Convey("FindKeys", t, func() {
		doc := tree(`{"title":"top","data":{"items":[{"title":"one"},{"name":["two","three"]}],"title":{"title":"nested"}}}`)

		Convey("Should collect in pre-order across any depth", func() {
			So(FindKeys(doc, "title", "name"), ShouldResemble, []string{"top", "one", "two", "three", "nested"})
		})

		Convey("Should match keys case-sensitively", func() {
			So(FindKeys(doc, "Title"), ShouldBeEmpty)
		})

		Convey("Should find nothing in scalars", func() {
			So(FindKeys(tree(`"title"`), "title"), ShouldBeEmpty)
		})
	})
}

func TestCanonicalize(t *testing.T) {
	Convey("Canonicalize", t, func() {
		Convey("Should rewrite protocol-relative URLs", func() {
			So(Canonicalize("//img.example/x.jpg"), ShouldEqual, "https://img.example/x.jpg")
		})

		Convey("Should unescape slashes and trim", func() {
			So(Canonicalize(` https:\/\/a.example\/v.mp4 `), ShouldEqual, "https://a.example/v.mp4")
			So(Canonicalize(`\/\/a.example`), ShouldEqual, "https://a.example")
		})

		Convey("Should be idempotent", func() {
			for _, s := range []string{"", "  ", "//x", `\\/x`, `\/\/\/y`, "ftp://z", " https://a ", `/\/b`, "relative/path"} {
				once := Canonicalize(s)
				So(Canonicalize(once), ShouldEqual, once)
			}
		})

		Convey("UsableURLs should drop unusable and dedupe in order", func() {
			So(UsableURLs([]string{"https://a", "https://b", "https://a"}), ShouldResemble, []string{"https://a", "https://b"})
			So(UsableURLs([]string{"//img1.jpg", "https://img1.jpg", "ftp://bad", "", "/rel"}), ShouldResemble, []string{"https://img1.jpg"})
		})

		Convey("FirstNonBlank should trim and scan groups in order", func() {
			v, ok := FirstNonBlank([]string{" ", ""}, []string{" b ", "c"})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "b")
			_, ok = FirstNonBlank(nil, []string{"  "})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestAssemble(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	assembler := Assembler{Now: func() time.Time { return fixed }, NewID: func() string { return "fixed-id" }}
	response := `{"data":{"title":"T","author":"A","url":"http://x/video.mp4"}}`

	Convey("Given a video resolver with a mapping", t, func() {
		config := &resolver.Config{
			Name:    "r",
			Type:    "video",
			Mapping: `{"data.title":"${title}","data.author":"${author}","data.url":"${videoUrl}"}`,
		}

		Convey("Mapped fields should produce the descriptor", func() {
			d, ok := assembler.Assemble(config, "https://subject", tree(response)).Get()
			So(ok, ShouldBeTrue)
			So(d.Title, ShouldEqual, "T")
			So(d.Author, ShouldEqual, "A")
			So(d.URL, ShouldEqual, "http://x/video.mp4")
			So(d.Type, ShouldEqual, media.Video)
			So(d.ID, ShouldEqual, "fixed-id")
			So(d.Timestamp, ShouldEqual, fixed.UnixMilli())
			So(d.Subject, ShouldEqual, "https://subject")
			So(d.Resolver, ShouldEqual, "r")
			So(d.Images, ShouldBeEmpty)
		})

		Convey("An empty mapping should fall back to the deep search", func() {
			config.Mapping = ""
			d, ok := assembler.Assemble(config, "", tree(response)).Get()
			So(ok, ShouldBeTrue)
			So(d.Title, ShouldEqual, "T")
			So(d.Author, ShouldEqual, "A")
			So(d.URL, ShouldEqual, "http://x/video.mp4")
		})

		Convey("A malformed mapping should behave like an empty one", func() {
			config.Mapping = `{"data.title":`
			So(assembler.Assemble(config, "", tree(response)).IsPresent(), ShouldBeTrue)
		})

		Convey("Mapped values should win over fallback values", func() {
			doc := tree(`{"title":"fallback","meta":{"headline":"mapped"},"author":"A","url":"https://x/v"}`)
			config.Mapping = `{"meta.headline":"${title}"}`
			d := assembler.Assemble(config, "", doc).MustGet()
			So(d.Title, ShouldEqual, "mapped")
		})

		Convey("Unusable mapped URLs should fall back", func() {
			doc := tree(`{"title":"T","author":"A","data":{"link":"/relative"},"play":"//cdn/v.mp4"}`)
			config.Mapping = `{"data.link":"${videoUrl}"}`
			d := assembler.Assemble(config, "", doc).MustGet()
			So(d.URL, ShouldEqual, "https://cdn/v.mp4")
		})

		Convey("Missing author should yield nothing", func() {
			config.Mapping = ""
			So(assembler.Assemble(config, "", tree(`{"title":"T","url":"https://x"}`)).IsAbsent(), ShouldBeTrue)
		})

		Convey("Missing usable URL should yield nothing", func() {
			config.Mapping = ""
			So(assembler.Assemble(config, "", tree(`{"title":"T","author":"A","url":"ftp://x"}`)).IsAbsent(), ShouldBeTrue)
		})

		Convey("Unknown types should take the media URL branch", func() {
			config.Type = "General"
			d := assembler.Assemble(config, "", tree(response)).MustGet()
			So(d.Type, ShouldEqual, media.Type("General"))
			So(d.URL, ShouldEqual, "http://x/video.mp4")
		})

		Convey("Optional fields should be picked up", func() {
			config.Mapping = ""
			doc := tree(`{"title":"T","author":"A","url":"https://x/v","desc":" d ","duration":12,"thumbnail":"\/\/img\/c.jpg"}`)
			d := assembler.Assemble(config, "", doc).MustGet()
			So(d.Description, ShouldEqual, "d")
			So(d.Duration, ShouldEqual, "12")
			So(d.Cover, ShouldEqual, "https://img/c.jpg")
		})
	})

	Convey("Given a gallery resolver", t, func() {
		config := &resolver.Config{
			Name:    "g",
			Type:    "图集",
			Mapping: `{"data.title":"${title}","data.author":"${author}","data.pics":"${imageUrls}"}`,
		}

		Convey("Images should be normalized and deduplicated", func() {
			doc := tree(`{"data":{"title":"T","author":"A","pics":["//img1.jpg","https://img1.jpg","ftp://bad"]}}`)
			d, ok := assembler.Assemble(config, "", doc).Get()
			So(ok, ShouldBeTrue)
			So(d.Type, ShouldEqual, media.Gallery)
			So(d.Images, ShouldResemble, []string{"https://img1.jpg"})
			So(d.URL, ShouldEqual, "https://img1.jpg")
			So(d.Cover, ShouldEqual, "https://img1.jpg")
		})

		Convey("Fallback images should follow mapped ones", func() {
			doc := tree(`{"data":{"title":"T","author":"A","pics":["https://m.jpg"],"images":["https://f.jpg","https://m.jpg"]},"cover":"https://c.jpg"}`)
			d := assembler.Assemble(config, "", doc).MustGet()
			So(d.Images, ShouldResemble, []string{"https://m.jpg", "https://f.jpg"})
			So(d.Cover, ShouldEqual, "https://c.jpg")
		})

		Convey("No usable image should yield nothing", func() {
			doc := tree(`{"data":{"title":"T","author":"A","pics":["ftp://bad","relative.jpg"]}}`)
			So(assembler.Assemble(config, "", doc).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("The package-level Assemble should stamp an id", t, func() {
		d := Assemble(&resolver.Config{Type: "video"}, "", tree(response)).MustGet()
		So(d.ID, ShouldNotBeEmpty)
		So(d.Timestamp, ShouldBeGreaterThan, 0)
	})
}
