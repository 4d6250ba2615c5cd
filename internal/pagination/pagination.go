// Package pagination computes which slice of search results a page shows and
// which navigation controls the page needs.
package pagination

// Controls describes the previous/next buttons of one page. Prev and Next are
// only meaningful when the matching Has flag is set.
type Controls struct {
	Prev    int
	Next    int
	HasPrev bool
	HasNext bool
}

func (c Controls) Empty() bool {
	return !c.HasPrev && !c.HasNext
}

// PageCount is ceil(count/perPage), or 0 for an empty set.
func PageCount(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count-1)/perPage + 1
}

// Window returns results[(page-1)*perPage : page*perPage] clipped to bounds.
// Out-of-range pages yield an empty slice.
func Window[T any](results []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return results[:0:0]
	}
	// Compare pages before multiplying; (page-1)*perPage can overflow.
	if page > PageCount(len(results), perPage) {
		return results[:0:0]
	}
	start := (page - 1) * perPage
	end := start + min(perPage, len(results)-start)
	return results[start:end:end]
}

// ControlsFor reports the neighbouring pages of page within count results.
func ControlsFor(count, perPage, page int) Controls {
	pages := PageCount(count, perPage)
	var c Controls
	if page > 1 && pages > 1 {
		c.HasPrev = true
		c.Prev = page - 1
	}
	if page < pages {
		c.HasNext = true
		c.Next = page + 1
	}
	return c
}

// Clamp pulls page into [1, PageCount]. An empty set clamps to 1.
func Clamp(page, count, perPage int) int {
	pages := PageCount(count, perPage)
	if page < 1 || pages == 0 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
