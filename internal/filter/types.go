package filter

import "errors"

// ErrIllFormed is returned when a plan cannot be compiled into a well-formed statement.
// It signals a programming defect in a planner, never bad caller input.
var ErrIllFormed = errors.New("filter: ill-formed statement")

// Match represents how a condition compares its column with the bound value.
type Match int

const (
	MatchExact    Match = iota // col = value
	MatchContains              // case-insensitive substring
	MatchPrefix                // col starts with value
)

// Condition is one present filter field, resolved to a trusted column name.
type Condition struct {
	Column string
	Match  Match
	Value  interface{}
}

// Join is an optional join clause, emitted only when When points to true.
type Join struct {
	Name   string
	Clause string
	When   *bool
}

// DistanceKind selects the distance expression used for a proximity key.
type DistanceKind int

const (
	DistanceSeconds DistanceKind = iota // timestamp columns
	DistanceDays                        // date columns
	DistanceAmount                      // numeric columns
)

// Proximity orders rows by absolute distance from Target, nearest first.
// Field is the caller-facing name used to honour the caller's ordering.
type Proximity struct {
	Field  string
	Column string
	Kind   DistanceKind
	Target interface{}
}

// SortOrder represents the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// OrderKey is an ORDER BY key over trusted expression text.
type OrderKey struct {
	Expr  string
	Order SortOrder
}

// Ordering describes the ORDER BY clause of a plan.
type Ordering struct {
	Proximity   []Proximity
	Extra       []OrderKey // keys that count as an explicit ranking, e.g. outlier magnitude
	Fallback    []OrderKey // used only when no proximity or extra key applies
	Tiebreak    []OrderKey // always appended last
	CallerOrder []string   // caller-facing field names in the order they were supplied
}

// Plan is everything the compiler needs to produce one statement.
type Plan struct {
	Table      string
	Columns    []string
	FastPath   *Condition
	Joins      []Join
	Conditions []Condition
	Ordering   Ordering
	Pagination Policy
	Page       int
}

// Statement is a rendered, parameterized query ready to run.
type Statement struct {
	Query    string
	Args     []interface{}
	Window   Window
	FastPath bool
}
