package extract

import (
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// Judge role tags. Qualifiers combine by appending, e.g.
// "concurring_pro_tempore".
const (
	RoleAuthor     = "author"
	RoleConcurring = "concurring"
	RoleDissenting = "dissenting"
	RolePanelist   = "panelist"
	RoleProTempore = "pro_tempore"
)

// extractJudges finds the authoring judge in the header and concurring,
// dissenting, and pro-tempore judges in the full text. Deduplication is by
// name; a name later seen with a pro-tempore marker gets the qualifier
// appended to its existing role instead of a second entry.
func extractJudges(text, header string) []entity.Judge {
	var judges []entity.Judge
	seen := make(map[string]struct{})

	for _, m := range authorRe.FindAllStringSubmatch(header, -1) {
		name := titleCaseName(m[1])
		if !allPartsAtLeast(name, 3) {
			continue
		}
		if _, ok := seen[name]; !ok {
			judges = append(judges, entity.Judge{Name: name, Role: RoleAuthor})
			seen[name] = struct{}{}
			break
		}
	}

	for _, m := range concurringRe.FindAllStringSubmatch(text, -1) {
		name := titleCaseName(m[1])
		if len(name) < 3 {
			continue
		}
		if _, ok := seen[name]; !ok {
			judges = append(judges, entity.Judge{Name: name, Role: RoleConcurring})
			seen[name] = struct{}{}
		}
	}

	for _, m := range dissentingRe.FindAllStringSubmatch(text, -1) {
		name := titleCaseName(m[1])
		if len(name) < 3 {
			continue
		}
		if _, ok := seen[name]; !ok {
			judges = append(judges, entity.Judge{Name: name, Role: RoleDissenting})
			seen[name] = struct{}{}
		}
	}

	for _, m := range proTemRe.FindAllStringSubmatch(text, -1) {
		name := titleCaseName(m[1])
		if len(name) < 3 {
			continue
		}
		if idx := indexOfJudge(judges, name); idx >= 0 {
			if !strings.Contains(judges[idx].Role, RoleProTempore) {
				judges[idx].Role += "_" + RoleProTempore
			}
			continue
		}
		if _, ok := seen[name]; !ok {
			judges = append(judges, entity.Judge{Name: name, Role: RoleProTempore})
			seen[name] = struct{}{}
		}
	}

	return judges
}

func indexOfJudge(judges []entity.Judge, name string) int {
	for i, j := range judges {
		if strings.EqualFold(j.Name, name) {
			return i
		}
	}
	return -1
}

// titleCaseName lowercases a name and capitalizes each hyphen-separated
// part: "MONTOYA-LEWIS" -> "Montoya-Lewis".
func titleCaseName(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		parts[i] = titleWord(p)
	}
	return strings.Join(parts, "-")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func allPartsAtLeast(name string, n int) bool {
	for _, p := range strings.Split(name, "-") {
		if len(p) < n {
			return false
		}
	}
	return true
}
