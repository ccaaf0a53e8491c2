package script

import (
	"testing"

	"github.com/prism-cli/prism/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLoad(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		path := "/scripts/answer.lua"
		So(filesystem.API().WriteFile(path, []byte(`Answer = 40 + 2`), 0o644), ShouldBeNil)
		Reset(func() { Forget(path) })

		Convey("Loading it should define its globals", func() {
			L := NewState()
			defer L.Close()

			So(Load(L, path), ShouldBeNil)
			So(L.GetGlobal("Answer"), ShouldEqual, lua.LNumber(42))
		})

		Convey("A second state should reuse the compiled prototype", func() {
			first := NewState()
			defer first.Close()
			So(Load(first, path), ShouldBeNil)

			So(filesystem.API().Remove(path), ShouldBeNil)

			second := NewState()
			defer second.Close()
			So(Load(second, path), ShouldBeNil)
			So(second.GetGlobal("Answer"), ShouldEqual, lua.LNumber(42))
		})
	})

	Convey("Given a missing script", t, func() {
		L := NewState()
		defer L.Close()
		So(Load(L, "/scripts/missing.lua"), ShouldNotBeNil)
	})

	Convey("Given a script with a syntax error", t, func() {
		_, err := Compile([]byte(`function (`), "broken.lua")
		So(err, ShouldNotBeNil)
	})
}
