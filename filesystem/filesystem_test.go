package filesystem

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("Content lands at the target path and no temp file remains", func() {
			n, err := WriteAtomic("/out/dir/file.txt", strings.NewReader("hello"))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 5)
			So(string(lo.Must(API().ReadFile("/out/dir/file.txt"))), ShouldEqual, "hello")
			So(lo.Must(API().Exists("/out/dir/file.txt.part")), ShouldBeFalse)
		})

		Convey("A failing reader leaves nothing behind", func() {
			_, err := WriteAtomic("/out/broken.bin", iotest.ErrReader(errors.New("boom")))
			So(err, ShouldNotBeNil)
			So(lo.Must(API().Exists("/out/broken.bin")), ShouldBeFalse)
			So(lo.Must(API().Exists("/out/broken.bin.part")), ShouldBeFalse)
		})
	})
}

func TestStore(t *testing.T) {
	Convey("Given a lazily created store", t, func() {
		SetMemMapFs()
		resolved := 0
		store := Store[[]string](func() string {
			resolved++
			return "/data/subjects.json"
		}, 0)

		Convey("It should persist through the active backend", func() {
			So(store().Set([]string{"a", "b"}), ShouldBeNil)
			So(lo.Must(API().Exists("/data/subjects.json")), ShouldBeTrue)

			got, expired, err := store().Get()
			So(err, ShouldBeNil)
			So(expired, ShouldBeFalse)
			So(got, ShouldResemble, []string{"a", "b"})
			So(resolved, ShouldEqual, 1)
		})
	})
}
