package extract

import (
	"strings"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// extractParties splits the case caption on the "v." boundary. Role
// assignment depends on which role keywords appear in the header window:
// petitioner captions yield petitioner/respondent, everything else defaults
// to appellant/respondent.
func extractParties(caption, header string) []entity.Party {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil
	}

	parts := partySplitRe.Split(caption, 2)
	if len(parts) != 2 {
		return []entity.Party{{Name: caption, LegalRole: constants.Petitioner}}
	}

	first := strings.TrimSpace(parts[0])
	second := strings.TrimSpace(parts[1])

	firstRole := constants.Appellant
	if strings.Contains(strings.ToLower(header), "petitioner") {
		firstRole = constants.Petitioner
	}

	return []entity.Party{
		{Name: first, LegalRole: firstRole},
		{Name: second, LegalRole: constants.Respondent},
	}
}
