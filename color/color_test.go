package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestForStatus(t *testing.T) {
	Convey("Status codes should map to traffic light colors", t, func() {
		So(ForStatus(200), ShouldEqual, Green)
		So(ForStatus(204), ShouldEqual, Green)
		So(ForStatus(304), ShouldEqual, Yellow)
		So(ForStatus(404), ShouldEqual, Red)
		So(ForStatus(502), ShouldEqual, Red)
	})
}
