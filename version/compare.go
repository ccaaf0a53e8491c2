// Package version compares dotted version strings such as host feature levels.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type version struct {
	major, minor, patch int
}

// parse accepts "1", "1.16" and "1.16.5", with an optional "v" prefix.
func parse(s string) (version, error) {
	var v version

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid version %q", s)
	}

	fields := []*int{&v.major, &v.minor, &v.patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
		*fields[i] = n
	}

	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal. Missing components count as zero.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// AtLeast reports whether have is the same as or newer than want.
func AtLeast(have, want string) (bool, error) {
	c, err := Compare(have, want)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}
