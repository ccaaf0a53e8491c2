package placeholder

import (
	"sync"
	"testing"

	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/stringify"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func fixed(id string, v stringify.Value) *Placeholder {
	return &Placeholder{
		Identifier: id,
		Value: func(mo.Option[Entity], string) stringify.Value {
			return v
		},
	}
}

func TestRegistry(t *testing.T) {
	viper.Set(key.FormatLocale, "en")

	steve := mo.Some(Entity{Name: "Steve", Attributes: map[string]any{"Rank": "Admin", "kills": 12, "ratio": 1.5}})
	none := mo.None[Entity]()

	Convey("Given a registry with builtins and static values", t, func() {
		r := NewRegistry()
		So(r.Register(Builtins()...), ShouldBeNil)
		So(r.Register(fixed("server", stringify.Text("Lobby")), fixed("tps", stringify.Float(19.987))), ShouldBeNil)

		Convey("Text without tokens should pass through", func() {
			So(r.Resolve("plain text", none), ShouldEqual, "plain text")
			So(r.Resolve("", none), ShouldEqual, "")
			So(r.Resolve("100% sure", none), ShouldEqual, "100% sure")
		})

		Convey("Static placeholders should resolve without context", func() {
			So(r.Resolve("Welcome to %server%!", none), ShouldEqual, "Welcome to Lobby!")
			So(r.Resolve("%SERVER%", none), ShouldEqual, "Lobby")
		})

		Convey("Values should be stringified", func() {
			So(r.Resolve("tps: %tps%", none), ShouldEqual, "tps: 19.99")
		})

		Convey("Unknown tokens should be left literal", func() {
			So(r.Resolve("%missing% and %server%", none), ShouldEqual, "%missing% and Lobby")
		})

		Convey("Context placeholders should use the entity", func() {
			So(r.Resolve("Hi %entity%", steve), ShouldEqual, "Hi Steve")
		})

		Convey("Context placeholders without an entity should be empty", func() {
			So(r.Resolve("Hi %entity%!", none), ShouldEqual, "Hi !")
			So(r.Resolve("[%attr_rank%]", none), ShouldEqual, "[]")
		})

		Convey("Attribute placeholders should match names case-insensitively", func() {
			So(r.Resolve("%attr_rank% %attr_kills% %attr_ratio%", steve), ShouldEqual, "Admin 12 1.50")
		})

		Convey("Missing attributes should be empty", func() {
			So(r.Resolve("<%attr_level%>", steve), ShouldEqual, "<>")
		})

		Convey("Resolving twice should be stable", func() {
			once := r.Resolve("%server% %entity%", steve)
			So(r.Resolve(once, steve), ShouldEqual, once)
		})

		Convey("All should be sorted", func() {
			ids := []string{}
			for _, p := range r.All() {
				ids = append(ids, p.Identifier)
			}
			So(ids, ShouldResemble, []string{"attr_", "entity", "server", "tps"})
		})
	})

	Convey("Given invalid placeholders", t, func() {
		r := NewRegistry()
		So(r.Register(&Placeholder{Identifier: ""}), ShouldNotBeNil)
		So(r.Register(&Placeholder{Identifier: "x"}), ShouldNotBeNil)
	})

	Convey("Given overlapping prefix placeholders", t, func() {
		r := NewRegistry()
		short := &Placeholder{Identifier: "a_", Prefix: true, Value: func(_ mo.Option[Entity], arg string) stringify.Value { return stringify.Text("short:" + arg) }}
		long := &Placeholder{Identifier: "a_b_", Prefix: true, Value: func(_ mo.Option[Entity], arg string) stringify.Value { return stringify.Text("long:" + arg) }}
		So(r.Register(short, long), ShouldBeNil)

		Convey("The longest prefix should win", func() {
			So(r.Resolve("%a_b_c%", none), ShouldEqual, "long:c")
			So(r.Resolve("%a_c%", none), ShouldEqual, "short:c")
		})

		Convey("A bare prefix should not match", func() {
			So(r.Resolve("%a_%", none), ShouldEqual, "%a_%")
		})
	})

	Convey("Given a panicking placeholder", t, func() {
		r := NewRegistry()
		So(r.Register(&Placeholder{Identifier: "boom", Value: func(mo.Option[Entity], string) stringify.Value { panic("boom") }}), ShouldBeNil)
		So(r.Resolve("[%boom%]", none), ShouldEqual, "[]")
	})

	Convey("Given concurrent resolution", t, func() {
		r := NewRegistry()
		So(r.Register(fixed("server", stringify.Text("Lobby"))), ShouldBeNil)

		var wg sync.WaitGroup
		results := make([]string, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = r.Resolve("%server%", none)
			}(i)
		}
		wg.Wait()

		for _, res := range results {
			So(res, ShouldEqual, "Lobby")
		}
	})
}

func TestStatic(t *testing.T) {
	Convey("Static", t, func() {
		r := NewRegistry()
		So(r.Register(Static(map[string]any{"motd": "hello", "slots": 20, "tags": []any{"pvp", "eco"}})...), ShouldBeNil)
		So(r.Resolve("%motd% %slots% %tags%", mo.None[Entity]()), ShouldEqual, "hello 20 pvp, eco")
	})
}

func TestNop(t *testing.T) {
	Convey("Nop", t, func() {
		So(Nop.Resolve("%entity%", mo.None[Entity]()), ShouldEqual, "%entity%")
	})
}
