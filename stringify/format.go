package stringify

import (
	"math"
	"strconv"
	"strings"

	"github.com/prism-cli/prism/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Separator joins list elements.
const Separator = ", "

// Formatter renders values using a locale for floating point numbers.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale. Unknown tags fall back to English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

// Default returns a Formatter for the configured locale.
func Default() Formatter {
	return NewFormatter(viper.GetString(key.FormatLocale))
}

// String renders v.
func (f Formatter) String(v Value) string {
	switch v := v.(type) {
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Text:
		return string(v)
	case Float:
		return f.float(float64(v))
	case List:
		return strings.Join(lo.Map(v, func(e Value, _ int) string {
			return f.String(e)
		}), Separator)
	case Other:
		return string(v)
	default:
		return string(Null)
	}
}

// float uses two decimals, dropping them when the rounded value is integral.
func (f Formatter) float(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	if rounded := math.Round(x*100) / 100; rounded == math.Trunc(rounded) {
		return f.printer.Sprintf("%.0f", rounded)
	}
	return f.printer.Sprintf("%.2f", x)
}

// String renders v with the configured locale.
func String(v Value) string {
	return Default().String(v)
}

// Stringify classifies and renders x with the configured locale.
func Stringify(x any) string {
	return String(Of(x))
}
