package pagex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		siblings int
		want     []int
	}{
		{
			name:    "single page",
			current: 1, total: 1, siblings: 1,
			want: []int{1},
		},
		{
			name:    "total fits the window, no ellipsis",
			current: 5, total: 5, siblings: 1,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:    "exactly window size",
			current: 3, total: 5, siblings: 1,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:    "left edge collapses the right side",
			current: 1, total: 20, siblings: 1,
			want: []int{1, 2, 3, 4, 5, Ellipsis},
		},
		{
			name:    "near left edge still a solid run",
			current: 3, total: 20, siblings: 1,
			want: []int{1, 2, 3, 4, 5, Ellipsis},
		},
		{
			name:    "right edge collapses the left side",
			current: 20, total: 20, siblings: 1,
			want: []int{Ellipsis, 16, 17, 18, 19, 20},
		},
		{
			name:    "middle collapses both sides",
			current: 10, total: 20, siblings: 1,
			want: []int{1, Ellipsis, 9, 10, 11, Ellipsis, 20},
		},
		{
			name:    "zero siblings",
			current: 5, total: 10, siblings: 0,
			want: []int{1, Ellipsis, 5, Ellipsis, 10},
		},
		{
			name:    "wider siblings",
			current: 10, total: 30, siblings: 2,
			want: []int{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 30},
		},
		{
			name:    "current clamped to total",
			current: 99, total: 20, siblings: 1,
			want: []int{Ellipsis, 16, 17, 18, 19, 20},
		},
		{
			name:    "current clamped to one",
			current: 0, total: 20, siblings: 1,
			want: []int{1, 2, 3, 4, 5, Ellipsis},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.total, tt.siblings))
		})
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		pageSize   int
		totalItems int
		want       string
	}{
		{"middle page", 2, 5, 12, "6-10 of 12"},
		{"first page", 1, 5, 12, "1-5 of 12"},
		{"short last page", 3, 5, 12, "11-12 of 12"},
		{"single item", 1, 5, 1, "1-1 of 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRange(tt.current, tt.pageSize, tt.totalItems))
		})
	}
}
