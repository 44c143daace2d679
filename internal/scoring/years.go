package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns for years-of-experience mentions. The range form is tried first so
// "2-4 years" yields the lower bound rather than the upper one.
var (
	yearsRangeRe = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(years?|yrs?)`)
	yearsPlusRe  = regexp.MustCompile(`(\d+)\s*\+\s*(years?|yrs?)`)
	yearsRe      = regexp.MustCompile(`(\d+)\s*(years?|yrs?)`)
)

// ExtractYears pulls the first years-of-experience figure out of free text.
// "5 years" and "5 yrs" yield 5, "3+ years" yields 3, and "2-4 years" yields
// the lower bound 2. Text with no year pattern yields 0.
func ExtractYears(text string) int {
	t := strings.ToLower(text)

	if m := yearsRangeRe.FindStringSubmatch(t); m != nil {
		return atoiOrZero(m[1])
	}
	if m := yearsPlusRe.FindStringSubmatch(t); m != nil {
		return atoiOrZero(m[1])
	}
	if m := yearsRe.FindStringSubmatch(t); m != nil {
		return atoiOrZero(m[1])
	}
	return 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
