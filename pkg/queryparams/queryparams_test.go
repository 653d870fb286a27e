package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Validate(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 500, OrderBy: "sideways"}
	p.Validate()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
	assert.Equal(t, 0, p.CalculateOffset())

	p = ListParams{Page: 3, PerPage: 10, OrderBy: "asc"}
	p.Validate()
	assert.Equal(t, 20, p.CalculateOffset())
}

func TestNewPaginatedResult(t *testing.T) {
	res := NewPaginatedResult([]int{1, 2}, 41, ListParams{Page: 2, PerPage: 20})
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.True(t, res.Meta.HasPrev())
	assert.True(t, res.Meta.HasNext())
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
}
