package config

import (
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

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.QueryLimit), ShouldEqual, 20)
			So(viper.GetInt(key.SubscriptionTimeout), ShouldEqual, 15)
		})

		Convey("Save should create the file and Setup should read it back", func() {
			So(Setup(), ShouldBeNil)
			viper.Set(key.QueryLimit, 7)
			So(Save(), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(Path())), ShouldBeTrue)

			viper.Reset()
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.QueryLimit), ShouldEqual, 7)

			So(filesystem.API().Remove(Path()), ShouldBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.read_timeout"), ShouldEqual, "network_read_timeout")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ParseConcurrency]

		Convey("Env should carry the app prefix", func() {
			So(field.Env(), ShouldEqual, "ALPHA_PARSE_CONCURRENCY")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ParseConcurrency)
		})

		Convey("Check should only restrict fields with options", func() {
			So(field.Check(12), ShouldBeNil)

			level := Default[key.LogsLevel]
			So(level.Check("debug"), ShouldBeNil)
			So(level.Check("loud"), ShouldNotBeNil)

			variant := Default[key.IconsVariant]
			So(variant.Check("nerd"), ShouldBeNil)
		})

		Convey("TypeName should report the default's type", func() {
			So(field.TypeName(), ShouldEqual, "int")
		})
	})
}
