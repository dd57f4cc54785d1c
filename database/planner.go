package database

import (
	"strings"

	"github.com/blnkfinance/purchase-lookup/internal/filter"
)

// conditions collects the present fields of a filter. Nil pointers and blank
// strings are absent.
type conditions []filter.Condition

func (c conditions) text(column string, match filter.Match, v *string) conditions {
	if v == nil || strings.TrimSpace(*v) == "" {
		return c
	}
	return append(c, filter.Condition{Column: column, Match: match, Value: strings.TrimSpace(*v)})
}

func exact[T any](c conditions, column string, v *T) conditions {
	if v == nil {
		return c
	}
	return append(c, filter.Condition{Column: column, Match: filter.MatchExact, Value: *v})
}
