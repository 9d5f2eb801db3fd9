package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastPage(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 0},
		{5, 5, 0},
		{6, 5, 1},
		{10, 5, 1},
		{11, 5, 2},
		{12, 5, 2},
		{6, 6, 0},
		{13, 6, 2},
		{100, 0, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LastPage(tt.n, tt.size), "LastPage(%d, %d)", tt.n, tt.size)
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		n, size, page      int
		wantStart, wantEnd int
	}{
		{12, 5, 0, 0, 5},
		{12, 5, 1, 5, 10},
		{12, 5, 2, 10, 12},
		{0, 5, 0, 0, 0},
		{7, 0, 0, 0, 7},
		{4, 5, 3, 4, 4},
	}

	for _, tt := range tests {
		start, end := pageBounds(tt.n, tt.size, tt.page)
		assert.Equal(t, tt.wantStart, start, "start for n=%d size=%d page=%d", tt.n, tt.size, tt.page)
		assert.Equal(t, tt.wantEnd, end, "end for n=%d size=%d page=%d", tt.n, tt.size, tt.page)
	}
}

func TestPageState_Count(t *testing.T) {
	assert.Equal(t, 1, PageState{}.Count())
	assert.Equal(t, 3, PageState{Current: 1, Last: 2}.Count())
}
