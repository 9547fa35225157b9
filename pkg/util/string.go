package util

import (
	"regexp"
	"strings"
)

var colorMarker = regexp.MustCompile("\x1b\\[([0-9\\;\\?]*[A-Za-z])")

// RemoveColors strips CSI sequences (colors, line erases, cursor toggles).
func RemoveColors(input string) string {
	return colorMarker.ReplaceAllString(input, "")
}

var returnsMatch = regexp.MustCompile("(^|\n)?.*?\r(.*?)(\n|$)")

// CollapseReturns replays carriage returns the way a terminal would, keeping
// only what was written after the last \r on each line.
func CollapseReturns(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	for {
		if !returnsMatch.MatchString(input) {
			break
		}

		input = returnsMatch.ReplaceAllString(input, "$1$2$3")
	}

	return input
}

// InspectString makes control characters visible, for logs and test failures.
func InspectString(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\033", "\\033")
	return s
}
