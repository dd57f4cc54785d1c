package filter

// SelectJoins returns the clauses of every join whose flag is explicitly true.
// Joins keep the order they were declared in so the statement text is stable.
func SelectJoins(joins []Join) Fragment {
	var f Fragment
	for _, j := range joins {
		if j.When == nil || !*j.When {
			continue
		}
		f.Push(" " + j.Clause)
	}
	return f
}
