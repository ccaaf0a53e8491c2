package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order full versions", func() {
			So(must(Compare("1.16.5", "1.16.4")), ShouldEqual, 1)
			So(must(Compare("v1.2.3", "1.2.3")), ShouldEqual, 0)
			So(must(Compare("1.9.9", "1.16.0")), ShouldEqual, -1)
		})

		Convey("Should treat missing components as zero", func() {
			So(must(Compare("1.16", "1.16.0")), ShouldEqual, 0)
			So(must(Compare("2", "1.99.99")), ShouldEqual, 1)
		})

		Convey("Should reject malformed versions", func() {
			for _, s := range []string{"", "a.b", "1..2", "1.2.3.4", "1.-2"} {
				_, err := Compare(s, "1.0.0")
				So(err, ShouldNotBeNil)
			}
		})
	})

	Convey("AtLeast", t, func() {
		ok, err := AtLeast("1.20.1", "1.16")
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)

		ok, err = AtLeast("1.15.2", "1.16")
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)
	})
}

func must(n int, err error) int {
	if err != nil {
		panic(err)
	}
	return n
}
