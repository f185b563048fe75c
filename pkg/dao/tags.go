package dao

import (
	"strings"

	"github.com/memories-timeline/memories-backend/pkg/utils"
)

// NormalizeTags splits free form comma separated input into trimmed, lowercase,
// deduplicated tokens joined by a single comma. Normalizing twice is a no-op.
func NormalizeTags(raw string) string {
	return strings.Join(splitTags(raw), ",")
}

// normalizedTagsOrNil returns nil when the input holds no tags
func normalizedTagsOrNil(raw *string) *string {
	if raw == nil {
		return nil
	}
	return utils.NilIfEmpty(NormalizeTags(*raw))
}

func splitTags(raw string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return utils.Deduplicate(tags)
}
