package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prism-cli/prism/util"
	"github.com/samber/lo"
)

var attributePattern = regexp.MustCompile(`^(?P<key>[^=]+)=(?P<value>.*)$`)

// parseLiteral reads an argument as an integer, float, boolean or comma separated list,
// falling back to the raw string.
func parseLiteral(s string) any {
	if strings.Contains(s, ",") {
		return lo.Map(strings.Split(s, ","), func(part string, _ int) any {
			return parseLiteral(strings.TrimSpace(part))
		})
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	return s
}

// parseAttributes turns key=value pairs into entity attributes.
func parseAttributes(pairs []string) (map[string]any, error) {
	attributes := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		groups := util.ReGroups(attributePattern, pair)
		k, ok := groups["key"]
		if !ok {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", pair)
		}

		attributes[strings.TrimSpace(k)] = parseLiteral(groups["value"])
	}

	return attributes, nil
}
