package pagex

import "fmt"

// FormatRange renders the "6-10 of 12" style summary for a page of items.
// The end of the range is capped at totalItems for a short last page.
func FormatRange(current, pageSize, totalItems int) string {
	start := (current-1)*pageSize + 1
	end := min(current*pageSize, totalItems)
	return fmt.Sprintf("%d-%d of %d", start, end, totalItems)
}
