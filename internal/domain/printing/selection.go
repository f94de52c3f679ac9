package printing

import (
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// SelectTemplate applies the deterministic selection rule over an
// already-fetched candidate list: keep active templates (narrowed to
// the requested id when one is given), order default-first, take the
// first. Separating this from the repository query keeps the rule
// testable without a database.
func SelectTemplate(candidates []PrintTemplate, id *uuid.UUID) (*PrintTemplate, error) {
	matches := lo.Filter(candidates, func(t PrintTemplate, _ int) bool {
		if !t.IsActive {
			return false
		}
		if id != nil && t.ID != *id {
			return false
		}
		return true
	})
	if len(matches) == 0 {
		return nil, ErrTemplateNotFound
	}

	// Stable so ties keep the fetched order, mirroring the
	// "ORDER BY is_default DESC" the repository applies.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].IsDefault && !matches[j].IsDefault
	})
	return &matches[0], nil
}
