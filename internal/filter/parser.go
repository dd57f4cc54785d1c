package filter

import (
	"net/url"
	"strings"
)

// ParseFieldOrder returns the fields of allowed in the order they first appear
// in a raw query string. url.Values loses parameter order, so the raw string is
// walked directly. Unknown keys and malformed pairs are skipped.
func ParseFieldOrder(rawQuery string, allowed map[string]bool) []string {
	order := make([]string, 0)
	seen := make(map[string]bool)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if !allowed[key] || seen[key] {
			continue
		}
		seen[key] = true
		order = append(order, key)
	}
	return order
}
