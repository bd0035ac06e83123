package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-booking/internal/domain"
)

func TestNewPaginationParams(t *testing.T) {
	ptr := func(i int) *int { return &i }

	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: domain.DefaultPageSize}, p)
	assert.Equal(t, 0, p.Offset())

	p = domain.NewPaginationParams(ptr(3), ptr(10))
	assert.Equal(t, 20, p.Offset())

	p = domain.NewPaginationParams(ptr(0), ptr(500))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, domain.MaxPageSize, p.Limit)
}
