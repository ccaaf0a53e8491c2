package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestBackend(t *testing.T) {
	Convey("Given the backend switches", t, func() {
		Convey("SetOsFs should use the operating system", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("SetMemMapFs should start empty", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			exists, err := API().Exists("/placeholders/motd.lua")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Use should route reads to the given filesystem", func() {
			fs := afero.NewMemMapFs()
			So(afero.WriteFile(fs, "/motd.lua", []byte("return 1"), 0o644), ShouldBeNil)

			Use(fs)
			contents, err := API().ReadFile("/motd.lua")
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, "return 1")
		})
	})
}
