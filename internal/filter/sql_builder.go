package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Compile turns a plan into a single parameterized statement.
//
// Clauses are built strictly in order: joins, predicates, ordering, pagination.
// A fast-path condition short-circuits everything after the base relation.
func Compile(d Dialect, plan Plan) (Statement, error) {
	if plan.Table == "" || len(plan.Columns) == 0 {
		return Statement{}, fmt.Errorf("%w: missing relation", ErrIllFormed)
	}

	query := Text("SELECT " + strings.Join(plan.Columns, ", ") + " FROM " + plan.Table)

	if plan.FastPath != nil {
		where, ok := BuildPredicates(d, []Condition{*plan.FastPath})
		if !ok {
			return Statement{}, fmt.Errorf("%w: empty fast path", ErrIllFormed)
		}
		query.Push(" WHERE ").Append(where)
		query.Push(" LIMIT 1")
		text, args := query.Render(d)
		return Statement{Query: text, Args: args, Window: Window{Limit: 1}, FastPath: true}, nil
	}

	query.Append(SelectJoins(plan.Joins))

	if where, ok := BuildPredicates(d, plan.Conditions); ok {
		query.Push(" WHERE ").Append(where)
	}

	orderBy, err := ComposeOrdering(d, plan.Ordering)
	if err != nil {
		return Statement{}, err
	}
	query.Push(" ORDER BY ").Append(orderBy)

	if plan.Pagination == nil || plan.Page < 0 {
		return Statement{}, fmt.Errorf("%w: invalid pagination", ErrIllFormed)
	}
	if size := plan.Pagination.PageSize(); size > 0 && plan.Page > (math.MaxInt-size)/size {
		return Statement{}, fmt.Errorf("%w: page %d overflows the offset", ErrIllFormed, plan.Page)
	}
	window := plan.Pagination.Window(plan.Page)
	if window.Limit <= 0 {
		return Statement{}, fmt.Errorf("%w: non-positive page size", ErrIllFormed)
	}
	// Limit and offset derive from configuration and a validated integer, never from caller text.
	query.Push(" LIMIT " + strconv.Itoa(window.Limit) + " OFFSET " + strconv.Itoa(window.Offset))

	text, args := query.Render(d)
	return Statement{Query: text, Args: args, Window: window}, nil
}
