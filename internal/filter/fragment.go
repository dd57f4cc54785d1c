package filter

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

type token struct {
	text  string
	value interface{}
	bound bool
}

// Fragment is an ordered list of text tokens and bound values.
// Caller values only ever enter through Bind, so they can never change the statement text.
type Fragment struct {
	tokens []token
}

// Text returns a fragment holding trusted statement text.
func Text(s string) Fragment {
	var f Fragment
	return *f.Push(s)
}

// Push appends trusted statement text.
func (f *Fragment) Push(s string) *Fragment {
	if s != "" {
		f.tokens = append(f.tokens, token{text: s})
	}
	return f
}

// Bind appends a bound value.
func (f *Fragment) Bind(v interface{}) *Fragment {
	f.tokens = append(f.tokens, token{value: v, bound: true})
	return f
}

// Append appends every token of o.
func (f *Fragment) Append(o Fragment) *Fragment {
	f.tokens = append(f.tokens, o.tokens...)
	return f
}

// Empty reports whether the fragment holds no tokens.
func (f Fragment) Empty() bool {
	return len(f.tokens) == 0
}

// Args returns the bound values in statement order, untransformed.
func (f Fragment) Args() []interface{} {
	args := make([]interface{}, 0)
	for _, t := range f.tokens {
		if t.bound {
			args = append(args, t.value)
		}
	}
	return args
}

// Render produces the statement text and its arguments for a dialect.
// Placeholders are written as '?' and rebound to the dialect's bindvar style.
func (f Fragment) Render(d Dialect) (string, []interface{}) {
	var b strings.Builder
	args := make([]interface{}, 0)
	for _, t := range f.tokens {
		if t.bound {
			b.WriteString("?")
			args = append(args, d.Value(t.value))
			continue
		}
		b.WriteString(t.text)
	}
	return sqlx.Rebind(d.BindType(), b.String()), args
}

// joinFragments joins fragments with a trusted separator.
func joinFragments(parts []Fragment, sep string) Fragment {
	var out Fragment
	for i, p := range parts {
		if i > 0 {
			out.Push(sep)
		}
		out.Append(p)
	}
	return out
}
