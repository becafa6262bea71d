// Package pagex computes pagination windows for page-by-page listings:
// which page numbers to show around the current one, and where to collapse
// long runs into an ellipsis.
package pagex

// Ellipsis marks a collapsed run of pages inside a window.
const Ellipsis = -1

// DefaultSiblings is the number of page buttons shown on each side of the
// current page when the caller has no preference.
const DefaultSiblings = 1

// Window returns the sequence of page numbers to render for the given
// current page, with Ellipsis standing in for collapsed runs. The window
// always covers first..last when total fits, and otherwise keeps siblings
// pages visible on each side of current.
//
// Out-of-range inputs are clamped: current is forced into [1, total] and
// a negative siblings count is treated as zero.
func Window(current, total, siblings int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if siblings < 0 {
		siblings = 0
	}

	// first + last + current, plus siblings on both sides
	size := siblings*2 + 3
	if total <= size {
		return span(1, total)
	}

	left := max(current-siblings, 1)
	right := min(current+siblings, total)

	collapseLeft := left > 2
	collapseRight := right < total-1

	switch {
	case !collapseLeft && collapseRight:
		// current hugs the left edge; show a solid run then collapse the rest
		return append(span(1, size), Ellipsis)

	case collapseLeft && !collapseRight:
		// mirror case at the right edge
		return append([]int{Ellipsis}, span(total-size+1, total)...)

	default:
		w := append([]int{1, Ellipsis}, span(left, right)...)
		return append(w, Ellipsis, total)
	}
}

// span returns the inclusive range lo..hi.
func span(lo, hi int) []int {
	pages := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	return pages
}
