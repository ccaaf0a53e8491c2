package markup

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/prism-cli/prism/code"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHex(t *testing.T) {
	Convey("Given a hex directive", t, func() {
		out := Hex("&#1A2B3C")

		Convey("It should encode the digits in order", func() {
			So(out, ShouldEqual, "§x§1§A§2§B§3§C")
		})

		Convey("The digit escapes should span twelve characters after the announcement", func() {
			digits := strings.TrimPrefix(out, code.Escape(code.Hex))
			So(utf8.RuneCountInString(digits), ShouldEqual, 12)
		})
	})

	Convey("Given text around directives", t, func() {
		So(Hex("a&#ffffffb"), ShouldEqual, "a§x§f§f§f§f§f§fb")
	})

	Convey("Given adjacent directives", t, func() {
		So(Hex("&#000000&#111111"), ShouldEqual, "§x§0§0§0§0§0§0§x§1§1§1§1§1§1")
	})

	Convey("Given more than six digits", t, func() {
		So(Hex("&#1234567"), ShouldEqual, "§x§1§2§3§4§5§67")
	})

	Convey("Given malformed directives", t, func() {
		for _, s := range []string{"&#12345", "&#GGGGGG", "#123456", "&123456", "", "plain"} {
			So(Hex(s), ShouldEqual, s)
		}
	})
}
