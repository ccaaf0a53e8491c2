package markup

import (
	"strings"
	"testing"

	"github.com/prism-cli/prism/code"
	"github.com/prism-cli/prism/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGradients(t *testing.T) {
	red := code.Color(color.MustHex("FF0000"))
	blue := code.Color(color.MustHex("0000FF"))

	Convey("Given a two character gradient", t, func() {
		out := Gradients("<GRADIENT:FF0000>AB</GRADIENT:0000FF>")

		Convey("Each character should get its own endpoint color", func() {
			So(out, ShouldEqual, red+"A"+blue+"B")
		})
	})

	Convey("Given a single character gradient", t, func() {
		out := Gradients("<GRADIENT:FF0000>A</GRADIENT:0000FF>")

		Convey("It should use the start color", func() {
			So(out, ShouldEqual, red+"A")
		})
	})

	Convey("Given style markers inside the gradient", t, func() {
		out := Gradients("<GRADIENT:FF0000>&lHi</GRADIENT:0000FF>")

		Convey("The markers should be removed and bold re-applied per character", func() {
			So(out, ShouldEqual, red+"§lH"+blue+"§li")
			So(code.Strip(out), ShouldEqual, "Hi")
		})
	})

	Convey("Given content with an invalid UTF-8 byte", t, func() {
		out := Gradients("<GRADIENT:FF0000>\xe9A</GRADIENT:0000FF> caf\xe9")

		Convey("The byte should be colored as one character and kept intact", func() {
			So(out, ShouldEqual, red+"\xe9"+blue+"A caf\xe9")
		})
	})

	Convey("Given several markers", t, func() {
		out := Gradients("<GRADIENT:000000>&o&lX</GRADIENT:000000>")

		Convey("They should be applied in detection order", func() {
			So(out, ShouldEqual, code.Color(color.RGB{})+"§l§oX")
		})
	})

	Convey("Given content made only of markers", t, func() {
		So(Gradients("a<GRADIENT:FF0000>&l&o</GRADIENT:0000FF>b"), ShouldEqual, "ab")
	})

	Convey("Given an empty gradient", t, func() {
		So(Gradients("<GRADIENT:FF0000></GRADIENT:0000FF>"), ShouldEqual, "")
	})

	Convey("Given surrounding text", t, func() {
		out := Gradients("before <GRADIENT:ff0000>AB</GRADIENT:0000ff> after")

		Convey("It should be copied unchanged", func() {
			So(out, ShouldStartWith, "before ")
			So(out, ShouldEndWith, " after")
			So(code.Strip(out), ShouldEqual, "before AB after")
		})
	})

	Convey("Given two identical directives", t, func() {
		directive := "<GRADIENT:FF0000>AB</GRADIENT:0000FF>"
		out := Gradients(directive + "-" + directive)

		Convey("Both should expand independently", func() {
			So(out, ShouldEqual, red+"A"+blue+"B-"+red+"A"+blue+"B")
		})
	})

	Convey("Given mismatched open and close colors", t, func() {
		out := Gradients("<GRADIENT:00FF00>ok</GRADIENT:ABCDEF>")

		Convey("It should still expand", func() {
			So(out, ShouldStartWith, code.Color(color.MustHex("00FF00")))
			So(code.Strip(out), ShouldEqual, "ok")
		})
	})

	Convey("Given malformed directives", t, func() {
		for _, s := range []string{
			"<GRADIENT:FF0000>no close",
			"<GRADIENT:FF00>short</GRADIENT:0000FF>",
			"<GRADIENT:GG0000>bad</GRADIENT:0000FF>",
			"",
			"plain text",
		} {
			So(Gradients(s), ShouldEqual, s)
		}
	})

	Convey("Given multibyte content", t, func() {
		out := Gradients("<GRADIENT:FF0000>äö</GRADIENT:0000FF>")

		Convey("Colors should be assigned per rune", func() {
			So(out, ShouldEqual, red+"ä"+blue+"ö")
		})
	})

	Convey("Given a long gradient", t, func() {
		content := strings.Repeat("x", 50)
		out := Gradients("<GRADIENT:FF0000>" + content + "</GRADIENT:0000FF>")

		Convey("It should start with the start color and end with the end color", func() {
			So(out, ShouldStartWith, red+"x")
			So(out, ShouldEndWith, blue+"x")
			So(strings.Count(out, "§x"), ShouldEqual, 50)
		})
	})
}
