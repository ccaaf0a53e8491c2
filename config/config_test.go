package config

import (
	"testing"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetBool(key.GradientsEnabled), ShouldBeTrue)
			So(viper.GetString(key.LegacyPrefix), ShouldEqual, "&")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("gradients.minimum.version")
			So(result, ShouldEqual, "gradients_minimum_version")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.HostVersion]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "PRISM_HOST_VERSION")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.HostVersion)
		})
	})

	Convey("Static placeholders should not be bound to the environment", t, func() {
		So(EnvExposed, ShouldNotContain, key.PlaceholdersStatic)
		So(EnvExposed, ShouldContain, key.HostVersion)
	})
}
