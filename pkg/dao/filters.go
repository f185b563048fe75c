package dao

import (
	"strings"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/api"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
)

// Predicate is a WHERE clause over the memories table aliased as m, with its bound values.
// An empty Clause matches every row.
type Predicate struct {
	Clause string
	Args   []any
}

const dateOnlyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// BuildMemoryFilter turns list filters into a predicate. User input only ever
// appears in Args, never in the clause text.
func BuildMemoryFilter(f api.MemoryFilters) (Predicate, error) {
	var conditions []string
	var args []any

	if f.Q != "" {
		pattern := containsPattern(f.Q)
		conditions = append(conditions, "("+
			likeCondition("m.content")+" OR "+
			likeCondition("m.caption")+" OR "+
			likeCondition("m.location")+" OR "+
			likeCondition("m.tags")+")")
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if f.Location != "" {
		conditions = append(conditions, likeCondition("m.location"))
		args = append(args, containsPattern(f.Location))
	}

	if f.StartDate != "" {
		start, _, err := parseFilterDate(f.StartDate)
		if err != nil {
			return Predicate{}, ce.NewValidationError("Invalid startDate")
		}
		conditions = append(conditions, "m.memory_date >= ?")
		args = append(args, start)
	}

	if f.EndDate != "" {
		end, dateOnly, err := parseFilterDate(f.EndDate)
		if err != nil {
			return Predicate{}, ce.NewValidationError("Invalid endDate")
		}
		if dateOnly {
			end = endOfDay(end)
		}
		conditions = append(conditions, "m.memory_date <= ?")
		args = append(args, end)
	}

	if f.Tags != "" {
		tags := splitTags(f.Tags)
		if len(tags) > 0 {
			tagConditions := make([]string, len(tags))
			for i, tag := range tags {
				tagConditions[i] = likeCondition("m.tags")
				args = append(args, containsPattern(tag))
			}
			conditions = append(conditions, "("+strings.Join(tagConditions, " AND ")+")")
		}
	}

	if f.CursorDate != "" && f.CursorID != "" {
		cursorDate, err := ParseTimestamp(f.CursorDate)
		if err != nil {
			return Predicate{}, ce.NewValidationError("Invalid cursorDate")
		}
		conditions = append(conditions, "(m.memory_date < ? OR (m.memory_date = ? AND m.id < ?))")
		args = append(args, cursorDate, cursorDate, f.CursorID)
	}

	return Predicate{Clause: strings.Join(conditions, " AND "), Args: args}, nil
}

func likeCondition(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
}

// containsPattern builds a case-insensitive substring pattern with LIKE wildcards in the input escaped
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(value))
	return "%" + escaped + "%"
}

// parseFilterDate accepts a full timestamp or a bare calendar date. dateOnly reports the latter.
func parseFilterDate(value string) (t time.Time, dateOnly bool, err error) {
	if d, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC); err == nil {
		return d, true, nil
	}
	t, err = ParseTimestamp(value)
	return t, false, err
}

// ParseTimestamp parses an ISO-8601 timestamp, or a bare date as UTC midnight. Values without a
// zone are UTC. The result is truncated to the microsecond precision of the database.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
		lastErr = err
	}
	if d, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC); err == nil {
		return d, nil
	}
	return time.Time{}, lastErr
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
