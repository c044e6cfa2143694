package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wacaselaw/opinion-indexer/constants"
)

const countyWindow = 10000

// Explicit superior-court references. These are the most reliable county
// signals and are tried before any city-context inference.
var countyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Appeal\s+from\s+(?:the\s+)?([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+County\s+Superior\s+Court`),
	regexp.MustCompile(`(?i)Appeal\s+from\s+(?:the\s+)?Superior\s+Court\s+(?:of|for)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+County`),
	regexp.MustCompile(`(?i)([A-Za-z]+)\s+County\s+Superior\s+Court`),
	regexp.MustCompile(`(?i)Superior\s+Court\s+of\s+([A-Za-z]+)\s+County`),
	regexp.MustCompile(`(?i)Superior\s+Court\s+for\s+([A-Za-z]+)\s+County`),
	regexp.MustCompile(`(?i)filed\s+in\s+([A-Za-z]+)\s+County`),
	regexp.MustCompile(`(?i)tried\s+in\s+([A-Za-z]+)\s+County`),
}

// Words that can precede "County" without naming one.
var countyStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "state": {}, "washington": {},
}

// extractCounty resolves the originating county. Explicit superior-court
// references win; otherwise city mentions ("Spokane Police Department",
// "in Tacoma") map through the city-to-county table. Returns "" when no
// reliable signal appears in the first part of the opinion.
func extractCounty(text string) string {
	window := text
	if len(window) > countyWindow {
		window = window[:countyWindow]
	}
	lower := strings.ToLower(window)

	for _, re := range countyPatterns {
		if m := re.FindStringSubmatch(window); m != nil {
			if county := matchCounty(m[1]); county != "" {
				return county
			}
		}
	}

	for _, cp := range cityPatterns {
		if cp.re.MatchString(lower) {
			return cp.county
		}
	}

	return ""
}

// matchCounty validates a raw capture against the known county list. The
// capture may carry leading filler ("the State of Washington in and for
// Spokane"); the longest county name contained in it wins.
func matchCounty(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	if _, stop := countyStopwords[raw]; stop {
		return ""
	}
	for _, county := range constants.WACounties {
		if strings.Contains(raw, strings.ToLower(county)) {
			return county
		}
	}
	return ""
}

type cityPattern struct {
	re     *regexp.Regexp
	county string
}

// cityPatterns are compiled once, longest city name first so multi-word
// names match before their prefixes.
var cityPatterns = func() []cityPattern {
	cities := make([]string, 0, len(constants.CityToCounty))
	for city := range constants.CityToCounty {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		if len(cities[i]) != len(cities[j]) {
			return len(cities[i]) > len(cities[j])
		}
		return cities[i] < cities[j]
	})

	var patterns []cityPattern
	for _, city := range cities {
		c := strings.ToLower(city)
		for _, pat := range []string{
			c + `\s+police\s+department`,
			c + `\s+police`,
			`in\s+` + c,
			`at\s+` + c,
			c + `\s+(?:city|municipal)`,
		} {
			patterns = append(patterns, cityPattern{
				re:     regexp.MustCompile(`\b` + pat + `\b`),
				county: constants.CityToCounty[city],
			})
		}
	}
	return patterns
}()
