package util

import (
	"testing"

	"github.com/appecho/alpha/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.mp4"), ShouldEqual, "file_name_.mp4")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("a  b"), ShouldEqual, "a_b")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-clip-name-"), ShouldEqual, "clip-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "resolver", "resolvers"), ShouldEqual, "1 resolver")
		So(Quantify(3, "resolver", "resolvers"), ShouldEqual, "3 resolvers")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/tmp/x/y", 0o755))
		lo.Must0(filesystem.API().WriteFile("/tmp/x/y/z.json", []byte("{}"), 0o644))

		So(Delete("/tmp/x"), ShouldBeNil)
		So(lo.Must(filesystem.API().Exists("/tmp/x/y/z.json")), ShouldBeFalse)
		So(Delete("/tmp/missing"), ShouldNotBeNil)
	})
}
