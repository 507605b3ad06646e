package pager

// DefaultPageSize is the page size requested before the first load.
const DefaultPageSize = 20

// Ellipsis is the marker VisiblePages emits for a gap in the page window.
const Ellipsis = -1

// State mirrors the pagination block of a fetch response. It is replaced
// wholesale by every response and never mutated locally.
type State struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// New returns the state used before the first fetch.
func New() State {
	return State{CurrentPage: 1, ItemsPerPage: DefaultPageSize}
}

// Next returns the page number to request for forward navigation. ok is
// false when there is no next page; callers must not issue a request then.
func (s State) Next() (page int, ok bool) {
	if !s.HasNextPage {
		return 0, false
	}

	return s.CurrentPage + 1, true
}

// Prev returns the page number to request for backward navigation. ok is
// false when already on the first page.
func (s State) Prev() (page int, ok bool) {
	if !s.HasPrevPage {
		return 0, false
	}

	return s.CurrentPage - 1, true
}

// Interactive reports whether navigation controls should render at all.
// A single page only shows the item-count summary.
func (s State) Interactive() bool {
	return s.TotalPages > 1
}

// windowRadius is the number of literal neighbors shown on each side of the
// current page.
const windowRadius = 2

// VisiblePages produces the ordered page window: literal page numbers mixed
// with Ellipsis markers. Page 1 and the last page are always included, with
// up to windowRadius neighbors around current.
func VisiblePages(current, total int) []int {
	if total <= 0 {
		return nil
	}

	pages := make([]int, 0, 2*windowRadius+5)

	for i := 1; i <= total; i++ {
		switch {
		case i == 1 || i == total:
		case i >= current-windowRadius && i <= current+windowRadius:
		default:
			if pages[len(pages)-1] != Ellipsis {
				pages = append(pages, Ellipsis)
			}

			continue
		}

		pages = append(pages, i)
	}

	return pages
}
