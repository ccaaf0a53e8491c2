package cmd

import (
	"strings"
	"testing"

	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/internal/script"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestScaffold(t *testing.T) {
	Convey("Given a description with quotes, backslashes and newlines", t, func() {
		description := "Says \"hi\" \\o/\nthen\tbye"

		var b strings.Builder
		So(scaffold{Name: "greeting", Author: "alex", Description: description, RequiresContext: true}.render(&b), ShouldBeNil)

		Convey("The generated script should run and keep the description", func() {
			L := script.NewState()
			defer L.Close()

			So(L.DoString(b.String()), ShouldBeNil)
			So(L.GetGlobal(constant.DescriptionGlobal), ShouldEqual, lua.LString(description))
			So(L.GetGlobal(constant.RequiresContextGlobal), ShouldEqual, lua.LTrue)
			So(L.GetGlobal(constant.ResolveFn).Type(), ShouldEqual, lua.LTFunction)
		})
	})

	Convey("luaQuote", t, func() {
		So(luaQuote(`plain`), ShouldEqual, `"plain"`)
		So(luaQuote(`a"b\c`), ShouldEqual, `"a\"b\\c"`)
		So(luaQuote("\x01"), ShouldEqual, `"\001"`)
	})
}
