package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	page, size := ClampPagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	page, size = ClampPagination(0, 0)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)

	_, size = ClampPagination(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, size)
}

func TestOffsetLimit(t *testing.T) {
	offset, limit := OffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(10), limit)

	offset, limit = OffsetLimit(4, 25)
	assert.Equal(t, uint64(75), offset)
	assert.Equal(t, uint64(25), limit)
}

func TestPageCursors(t *testing.T) {
	next, prev := PageCursors(1, true)
	assert.NotNil(t, next)
	assert.Equal(t, 2, *next)
	assert.Nil(t, prev)

	next, prev = PageCursors(3, false)
	assert.Nil(t, next)
	assert.NotNil(t, prev)
	assert.Equal(t, 2, *prev)

	next, prev = PageCursors(1, false)
	assert.Nil(t, next)
	assert.Nil(t, prev)
}
