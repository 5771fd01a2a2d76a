package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestSecrets(t *testing.T) {
	Convey("Given a mocked keyring", t, func() {
		Convey("Secrets should round trip per resolver and header", func() {
			So(SetSecret("r1", "Authorization", "Bearer x"), ShouldBeNil)

			v, err := Secret("r1", "authorization")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Bearer x")

			_, err = Secret("r2", "Authorization")
			So(errors.Is(err, keyring.ErrNotFound), ShouldBeTrue)
		})

		Convey("Deleted secrets should be gone", func() {
			So(SetSecret("r1", "Cookie", "c"), ShouldBeNil)
			So(DeleteSecret("r1", "Cookie"), ShouldBeNil)
			_, err := Secret("r1", "Cookie")
			So(err, ShouldNotBeNil)
		})

		Convey("IsRef should match the marker only", func() {
			So(IsRef(" keyring: "), ShouldBeTrue)
			So(IsRef("keyring:abc"), ShouldBeFalse)
			So(IsRef(""), ShouldBeFalse)
		})
	})
}
