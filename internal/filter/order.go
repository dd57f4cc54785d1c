package filter

import (
	"fmt"
	"sort"
)

// ComposeOrdering builds the ORDER BY key list (without the "ORDER BY" prefix).
//
// Proximity keys come first, in the caller's order, then the extra keys. When
// neither applies the fallback keys are used, so the order is never left to the
// database. Tiebreak keys close the list.
func ComposeOrdering(d Dialect, o Ordering) (Fragment, error) {
	keys := make([]Fragment, 0, len(o.Proximity)+len(o.Extra)+len(o.Fallback)+len(o.Tiebreak))

	for _, p := range sortProximity(o.Proximity, o.CallerOrder) {
		if p.Target == nil {
			continue
		}
		prefix, suffix := d.Distance(p.Kind, p.Column)
		var f Fragment
		f.Push(prefix).Bind(p.Target).Push(suffix + " " + string(SortAsc))
		keys = append(keys, f)
	}
	for _, k := range o.Extra {
		keys = append(keys, orderKey(k))
	}

	if len(keys) == 0 {
		for _, k := range o.Fallback {
			keys = append(keys, orderKey(k))
		}
	}
	if len(keys) == 0 {
		return Fragment{}, fmt.Errorf("%w: no ordering key", ErrIllFormed)
	}

	for _, k := range o.Tiebreak {
		keys = append(keys, orderKey(k))
	}
	return joinFragments(keys, ", "), nil
}

func orderKey(k OrderKey) Fragment {
	order := k.Order
	if order != SortAsc && order != SortDesc {
		order = SortAsc
	}
	return Text(k.Expr + " " + string(order))
}

// sortProximity orders proximity keys by their position in callerOrder.
// Keys the caller order does not mention keep their declared order after the others.
func sortProximity(keys []Proximity, callerOrder []string) []Proximity {
	rank := make(map[string]int, len(callerOrder))
	for i, name := range callerOrder {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}
	out := make([]Proximity, len(keys))
	copy(out, keys)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].Field]
		rj, jok := rank[out[j].Field]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
	return out
}
