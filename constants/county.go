package constants

import "sort"

// WACounties lists every Washington State county, sorted longest-first so a
// joined alternation matches "Walla Walla" before "Walla" could.
var WACounties = sortByLengthDesc([]string{
	"Adams", "Asotin", "Benton", "Chelan", "Clallam", "Clark", "Columbia",
	"Cowlitz", "Douglas", "Ferry", "Franklin", "Garfield", "Grant", "Grays Harbor",
	"Island", "Jefferson", "King", "Kitsap", "Kittitas", "Klickitat", "Lewis",
	"Lincoln", "Mason", "Okanogan", "Pacific", "Pend Oreille", "Pierce", "San Juan",
	"Skagit", "Skamania", "Snohomish", "Spokane", "Stevens", "Thurston", "Wahkiakum",
	"Walla Walla", "Whatcom", "Whitman", "Yakima",
})

// CityToCounty maps common Washington cities (lowercased) to their county,
// used only when no explicit "X County" reference is present.
var CityToCounty = map[string]string{
	"seattle":        "King",
	"tacoma":         "Pierce",
	"spokane":        "Spokane",
	"vancouver":      "Clark",
	"bellevue":       "King",
	"everett":        "Snohomish",
	"kent":           "King",
	"renton":         "King",
	"spokane valley": "Spokane",
	"federal way":    "King",
	"yakima":         "Yakima",
	"bellingham":     "Whatcom",
	"kennewick":      "Benton",
	"auburn":         "King",
	"pasco":          "Franklin",
	"marysville":     "Snohomish",
	"lakewood":       "Pierce",
	"redmond":        "King",
	"richland":       "Benton",
	"olympia":        "Thurston",
	"bremerton":      "Kitsap",
	"pullman":        "Whitman",
	"moses lake":     "Grant",
	"longview":       "Cowlitz",
	"wenatchee":      "Chelan",
	"walla walla":    "Walla Walla",
	"ellensburg":     "Kittitas",
	"port angeles":   "Clallam",
	"tri-cities":     "Benton",
	"mount vernon":   "Skagit",
	"anacortes":      "Skagit",
}

func sortByLengthDesc(names []string) []string {
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})
	return names
}
