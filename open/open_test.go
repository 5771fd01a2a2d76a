package open

import (
	"testing"

	"github.com/appecho/alpha/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a media url", t, func() {
		target := "https://cdn.example/v.mp4?a=1&b=2"

		Convey("The default handler should be used without an app", func() {
			cmd, err := Command(constant.Linux, target, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", target})

			cmd, err = Command(constant.Darwin, target, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", target})
		})

		Convey("A named app should receive the url", func() {
			cmd, err := Command(constant.Linux, target, "mpv")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"mpv", target})

			cmd, err = Command(constant.Windows, target, "vlc")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example/v.mp4?a=1^&b=2")
		})

		Convey("Unknown platforms should fail", func() {
			_, err := Command("plan9", target, "")
			So(err, ShouldNotBeNil)
		})
	})
}
