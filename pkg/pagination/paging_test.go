package pagination_test

import (
	"testing"

	"github.com/storefront/backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNewPager(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-1, 5, 1, 5},
		{3, 1000, 3, 100},
		{2, 20, 2, 20},
	}

	for _, tt := range tests {
		p := pagination.NewPager(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, p.Page)
		assert.Equal(t, tt.wantLimit, p.Limit)
	}
}

func TestPagerDoAndPageInfo(t *testing.T) {
	p := pagination.NewPager(3, 10)
	p.SetTotal(25)

	offset, limit := p.Do()
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	info := p.PageInfo()
	assert.Equal(t, int64(25), info.TotalItems)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.CurrentPage)
}
