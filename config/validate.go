package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/version"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// RenderModes are the accepted values of render.mode.
var RenderModes = []string{"auto", "always", "never"}

// validators check values beyond their type. Keys without one accept any value of the right type.
var validators = map[string]func(v any) error{
	key.LegacyPrefix: func(v any) error {
		s := v.(string)
		if utf8.RuneCountInString(s) != 1 || !utf8.ValidString(s) {
			return fmt.Errorf("prefix must be a single character, got %q", s)
		}
		return nil
	},
	key.RenderMode:              oneOf(RenderModes),
	key.IconsVariant:            oneOf(icon.AvailableVariants()),
	key.HostVersion:             validVersion,
	key.GradientsMinimumVersion: validVersion,
	key.FormatLocale: func(v any) error {
		if _, err := language.Parse(v.(string)); err != nil {
			return fmt.Errorf("invalid locale %q: %w", v, err)
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

func oneOf(options []string) func(v any) error {
	return func(v any) error {
		if !lo.Contains(options, v.(string)) {
			return fmt.Errorf("invalid value %q, expected one of %s", v, strings.Join(options, ", "))
		}
		return nil
	}
}

func validVersion(v any) error {
	_, err := version.Compare(v.(string), "0")
	return err
}

// Validate checks v against the rules of the field registered under k.
func Validate(k string, v any) error {
	if _, ok := Default[k]; !ok {
		return fmt.Errorf("unknown key %s", k)
	}

	if validate, ok := validators[k]; ok {
		return validate(v)
	}
	return nil
}

// Parse converts command line values into the type of the field registered under k and validates the result.
// Lists take every value, maps take key=value pairs.
func Parse(k string, values []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", k)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no value given for %s", k)
	}

	var (
		v   any
		err error
	)

	switch field.Value.(type) {
	case string:
		v = values[0]
	case int:
		v, err = strconv.Atoi(values[0])
	case bool:
		v, err = strconv.ParseBool(values[0])
	case []string:
		v = values
	case map[string]any:
		v, err = parseMap(values)
	default:
		return nil, fmt.Errorf("%s cannot be set from the command line", k)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid %s value for %s: %w", field.typeName(), k, err)
	}

	if err := Validate(k, v); err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}

	return v, nil
}

func parseMap(pairs []string) (map[string]any, error) {
	m := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		m[strings.TrimSpace(k)] = v
	}
	return m, nil
}
