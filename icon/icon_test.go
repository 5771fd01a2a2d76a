package icon

import (
	"testing"

	"github.com/appecho/alpha/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	defer viper.Set(key.IconsVariant, "plain")

	Convey("Every icon should have a symbol in every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for i := Success; i <= Download; i++ {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Media type icons should be told apart in the plain variant", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Video), ShouldEqual, "V")
		So(Get(Audio), ShouldEqual, "A")
		So(Get(Gallery), ShouldEqual, "G")
	})

	Convey("An unknown variant should render nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Resolver), ShouldBeEmpty)
	})
}
