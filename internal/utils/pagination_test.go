package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndNormalizePagination(t *testing.T) {
	page, size := ValidateAndNormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = ValidateAndNormalizePagination(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, size)
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(45, 2, 20)

	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestParsePaginationFromQuery(t *testing.T) {
	page, size := ParsePaginationFromQuery("2", "50")
	assert.Equal(t, 2, page)
	assert.Equal(t, 50, size)

	page, size = ParsePaginationFromQuery("x", "500")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	assert.Equal(t, 40, CalculateOffset(3, 20))
}
