package stringify

import (
	"errors"
	"testing"

	"github.com/prism-cli/prism/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type point struct{ X, Y int }

func TestOf(t *testing.T) {
	Convey("Of", t, func() {
		Convey("Should classify scalars", func() {
			So(Of(42), ShouldEqual, Int(42))
			So(Of(uint8(7)), ShouldEqual, Int(7))
			So(Of("hi"), ShouldEqual, Text("hi"))
			So(Of(1.5), ShouldEqual, Float(1.5))
			So(Of(float32(0.25)), ShouldEqual, Float(0.25))
		})

		Convey("Should classify collections recursively", func() {
			So(Of([]any{1, "a", []int{2, 3}}), ShouldResemble, List{Int(1), Text("a"), List{Int(2), Int(3)}})
			So(Of([2]string{"x", "y"}), ShouldResemble, List{Text("x"), Text("y")})
		})

		Convey("Should keep values that are already classified", func() {
			So(Of(Text("t")), ShouldEqual, Text("t"))
		})

		Convey("Should fall back to a generic representation", func() {
			So(Of(nil), ShouldEqual, Null)
			So(Of(true), ShouldEqual, Other("true"))
			So(Of(point{1, 2}), ShouldEqual, Other("{1 2}"))
			So(Of(errors.New("boom")), ShouldEqual, Other("boom"))
		})
	})
}

func TestFormatter(t *testing.T) {
	Convey("Given an English formatter", t, func() {
		f := NewFormatter("en")

		Convey("Integers should be plain decimal", func() {
			So(f.String(Int(1234567)), ShouldEqual, "1234567")
			So(f.String(Int(-3)), ShouldEqual, "-3")
		})

		Convey("Floats should use two decimals", func() {
			So(f.String(Float(3.14159)), ShouldEqual, "3.14")
			So(f.String(Float(0.5)), ShouldEqual, "0.50")
		})

		Convey("Integral floats should drop the fraction", func() {
			So(f.String(Float(3)), ShouldEqual, "3")
			So(f.String(Float(2.001)), ShouldEqual, "2")
		})

		Convey("Floats should be grouped by locale", func() {
			So(f.String(Float(1234.5)), ShouldEqual, "1,234.50")
		})

		Convey("Lists should be joined recursively", func() {
			So(f.String(Of([]any{1, 2.5, "x", []int{3, 4}})), ShouldEqual, "1, 2.50, x, 3, 4")
			So(f.String(List{}), ShouldEqual, "")
		})

		Convey("Text and other values should pass through", func() {
			So(f.String(Text("plain")), ShouldEqual, "plain")
			So(f.String(Null), ShouldEqual, "null")
			So(f.String(nil), ShouldEqual, "null")
		})
	})

	Convey("Given a German formatter", t, func() {
		f := NewFormatter("de")
		So(f.String(Float(1234.5)), ShouldEqual, "1.234,50")
	})

	Convey("Given an invalid locale", t, func() {
		f := NewFormatter("not a locale!")
		So(f.String(Float(1.25)), ShouldEqual, "1.25")
	})

	Convey("Stringify should use the configured locale", t, func() {
		viper.Set(key.FormatLocale, "en")
		So(Stringify([]float64{1, 2.25}), ShouldEqual, "1, 2.25")
	})
}
