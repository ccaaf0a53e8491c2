package config

import (
	"testing"

	"github.com/prism-cli/prism/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given values typed on the command line", t, func() {
		Convey("Strings, booleans and lists should be converted", func() {
			v, err := Parse(key.HostVersion, []string{"1.20.4"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.20.4")

			v, err = Parse(key.GradientsEnabled, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Maps should take key=value pairs", func() {
			v, err := Parse(key.PlaceholdersStatic, []string{"server=Hub", "motd=a=b"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, map[string]any{"server": "Hub", "motd": "a=b"})

			_, err = Parse(key.PlaceholdersStatic, []string{"server"})
			So(err, ShouldNotBeNil)
		})

		Convey("Wrong types should be rejected", func() {
			_, err := Parse(key.GradientsEnabled, []string{"sometimes"})
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown keys and missing values should be rejected", func() {
			_, err := Parse("gradients.enable", []string{"true"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.HostVersion, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("The legacy prefix should be exactly one character", t, func() {
		So(Validate(key.LegacyPrefix, "&"), ShouldBeNil)
		So(Validate(key.LegacyPrefix, "§"), ShouldBeNil)
		So(Validate(key.LegacyPrefix, ""), ShouldNotBeNil)
		So(Validate(key.LegacyPrefix, "&&"), ShouldNotBeNil)
		So(Validate(key.LegacyPrefix, "\xff"), ShouldNotBeNil)
	})

	Convey("The render mode should be a known mode", t, func() {
		for _, mode := range RenderModes {
			So(Validate(key.RenderMode, mode), ShouldBeNil)
		}
		So(Validate(key.RenderMode, "bogus"), ShouldNotBeNil)
	})

	Convey("Versions should parse", t, func() {
		So(Validate(key.HostVersion, "1.16"), ShouldBeNil)
		So(Validate(key.GradientsMinimumVersion, "v1.20.1"), ShouldBeNil)
		So(Validate(key.HostVersion, "latest"), ShouldNotBeNil)
		So(Validate(key.GradientsMinimumVersion, "1.2.3.4"), ShouldNotBeNil)
	})

	Convey("Locales should parse", t, func() {
		So(Validate(key.FormatLocale, "de-DE"), ShouldBeNil)
		So(Validate(key.FormatLocale, "not a locale!"), ShouldNotBeNil)
	})

	Convey("Icon variants and log levels should be known", t, func() {
		So(Validate(key.IconsVariant, "nerd"), ShouldBeNil)
		So(Validate(key.IconsVariant, "fancy"), ShouldNotBeNil)
		So(Validate(key.LogsLevel, "debug"), ShouldBeNil)
		So(Validate(key.LogsLevel, "chatty"), ShouldNotBeNil)
	})

	Convey("Every default should be valid", t, func() {
		for k, field := range Default {
			So(Validate(k, field.Value), ShouldBeNil)
		}
	})
}
