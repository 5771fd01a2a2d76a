package where

import (
	"path/filepath"
	"testing"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Persisted lists are json files", func() {
			So(filepath.Ext(Resolvers()), ShouldEqual, ".json")
			So(filepath.Ext(Results()), ShouldEqual, ".json")
			So(filepath.Ext(Subjects()), ShouldEqual, ".json")
		})

		Convey("Downloads() honours downloads.path", func() {
			viper.Set(key.DownloadsPath, "/media/alpha")
			defer viper.Set(key.DownloadsPath, "")

			So(Downloads(), ShouldEqual, "/media/alpha")
			So(lo.Must(filesystem.API().IsDir("/media/alpha")), ShouldBeTrue)
		})
	})
}
