package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-booking/internal/domain"
)

func TestPackage_Covers(t *testing.T) {
	p := domain.Package{
		DepartureDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, p.Covers(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)), "departure day is inclusive")
	assert.True(t, p.Covers(time.Date(2025, 7, 6, 23, 0, 0, 0, time.UTC)), "return day is inclusive")
	assert.False(t, p.Covers(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Covers(time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)))
}

func TestPackageFilter_Validate(t *testing.T) {
	lo, hi := domain.Money(50000), domain.Money(10000)
	one, five := 1, 5
	zero := 0

	assert.NoError(t, domain.PackageFilter{}.Validate())
	assert.NoError(t, domain.PackageFilter{Type: domain.PackageLuxury, MinDuration: &one, MaxDuration: &five}.Validate())

	for name, f := range map[string]domain.PackageFilter{
		"unknown type":        {Type: "budget"},
		"min price above max": {MinPrice: &lo, MaxPrice: &hi},
		"zero duration":       {MinDuration: &zero},
		"min above max days":  {MinDuration: &five, MaxDuration: &one},
	} {
		assert.ErrorIs(t, f.Validate(), domain.ErrValidation, name)
	}
}
