package history

import (
	"testing"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func descriptor(id string) *media.Descriptor {
	return &media.Descriptor{ID: id, Title: "t-" + id, Author: "a", URL: "https://x/" + id, Type: media.Video}
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(Clear(), ShouldBeNil)

		Convey("When saving descriptors", func() {
			So(Save(descriptor("aaa1")), ShouldBeNil)
			So(Save(descriptor("bbb2"), descriptor("bbb3")), ShouldBeNil)

			Convey("Then the newest should come first", func() {
				all, err := Get()
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 3)
				So(all[0].ID, ShouldEqual, "bbb3")
				So(all[1].ID, ShouldEqual, "bbb2")
				So(all[2].ID, ShouldEqual, "aaa1")
			})

			Convey("Then saving again should move it to the front", func() {
				So(Save(descriptor("aaa1")), ShouldBeNil)
				all, _ := Get()
				So(len(all), ShouldEqual, 3)
				So(all[0].ID, ShouldEqual, "aaa1")
			})

			Convey("Then Find should accept unique prefixes", func() {
				d, err := Find("aa")
				So(err, ShouldBeNil)
				So(d.ID, ShouldEqual, "aaa1")

				_, err = Find("bbb")
				So(err, ShouldNotBeNil)
				_, err = Find("zzz")
				So(err, ShouldNotBeNil)
			})

			Convey("Then Remove should delete by id", func() {
				So(Remove("bbb2"), ShouldBeNil)
				So(Remove("bbb2"), ShouldNotBeNil)
				all, _ := Get()
				So(len(all), ShouldEqual, 2)
			})

			Convey("Then Clear should empty it", func() {
				So(Clear(), ShouldBeNil)
				all, _ := Get()
				So(all, ShouldBeEmpty)
			})
		})
	})
}
