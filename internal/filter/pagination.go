package filter

// Window is the LIMIT/OFFSET pair for one page.
type Window struct {
	Limit  int
	Offset int
}

// Policy converts a page index into a window.
type Policy interface {
	Window(page int) Window
	PageSize() int
}

// Plain fetches exactly Size rows per page. Callers detect the last page by
// receiving fewer than Size rows.
type Plain struct {
	Size int
}

func (p Plain) Window(page int) Window {
	return Window{Limit: p.Size, Offset: page * p.Size}
}

func (p Plain) PageSize() int { return p.Size }

// OverFetch fetches Size+1 rows per page so the extra row reveals whether
// another page exists without a count query.
type OverFetch struct {
	Size int
}

func (p OverFetch) Window(page int) Window {
	return Window{Limit: p.Size + 1, Offset: page * p.Size}
}

func (p OverFetch) PageSize() int { return p.Size }

// Trim drops the look-ahead row. eof is true when no further page exists.
func Trim[T any](p OverFetch, rows []T) (page []T, eof bool) {
	if len(rows) > p.Size {
		return rows[:p.Size], false
	}
	return rows, true
}
