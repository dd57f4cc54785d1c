package filter

import "strings"

// BuildPredicates turns each condition into one predicate and joins them with AND.
// The boolean result reports whether any predicate was produced; callers use it
// instead of inspecting rendered text to decide whether a WHERE clause exists.
func BuildPredicates(d Dialect, conditions []Condition) (Fragment, bool) {
	parts := make([]Fragment, 0, len(conditions))
	for _, c := range conditions {
		if c.Column == "" {
			continue
		}
		parts = append(parts, buildPredicate(d, c))
	}
	if len(parts) == 0 {
		return Fragment{}, false
	}
	return joinFragments(parts, " AND "), true
}

func buildPredicate(d Dialect, c Condition) Fragment {
	var f Fragment
	switch c.Match {
	case MatchContains:
		pattern := "%" + escapeLike(strings.ToLower(stringValue(c.Value))) + "%"
		f.Push(d.Lower(c.Column) + " LIKE ").Bind(pattern).Push(d.LikeEscape())
	case MatchPrefix:
		pattern := escapeLike(stringValue(c.Value)) + "%"
		f.Push(c.Column + " LIKE ").Bind(pattern).Push(d.LikeEscape())
	default:
		f.Push(c.Column + " = ").Bind(c.Value)
	}
	return f
}
