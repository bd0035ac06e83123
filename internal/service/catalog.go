// Package service contains the business logic for the travel booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/repo"
)

const (
	featuredDestinations = 6
	featuredPackages     = 6
	relatedPackages      = 3
)

// CatalogService serves the read-only destination and package catalogue.
type CatalogService struct {
	destinations repo.DestinationRepo
	packages     repo.PackageRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(destinations repo.DestinationRepo, packages repo.PackageRepo) *CatalogService {
	return &CatalogService{destinations: destinations, packages: packages}
}

// Featured returns the home page selection: the first destinations by name
// and the soonest-departing packages that still have seats.
func (s *CatalogService) Featured(ctx context.Context) (domain.Featured, error) {
	dests, err := s.destinations.List(ctx, featuredDestinations)
	if err != nil {
		return domain.Featured{}, fmt.Errorf("service.CatalogService.Featured: %w", err)
	}
	pkgs, err := s.packages.ListUpcoming(ctx, featuredPackages)
	if err != nil {
		return domain.Featured{}, fmt.Errorf("service.CatalogService.Featured: %w", err)
	}
	return domain.Featured{Destinations: dests, Packages: pkgs}, nil
}

// ListDestinations returns every destination ordered by name.
func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.destinations.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListDestinations: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}

// GetDestination returns a destination with its bookable packages.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *CatalogService) GetDestination(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error) {
	dest, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.CatalogService.GetDestination: %w", err)
	}
	pkgs, err := s.packages.ListAvailableByDestination(ctx, id)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.CatalogService.GetDestination: %w", err)
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}
	return domain.DestinationDetail{Destination: dest, Packages: pkgs}, nil
}

// ListPackages returns one page of bookable packages matching f and the total count.
// Returns domain.ErrValidation if the filter ranges are malformed.
func (s *CatalogService) ListPackages(ctx context.Context, f domain.PackageFilter, p domain.PaginationParams) ([]domain.Package, int64, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}
	pkgs, total, err := s.packages.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.ListPackages: %w", err)
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}
	return pkgs, total, nil
}

// GetPackage returns a package with its destination and a few related packages.
// Returns domain.ErrNotFound if the package does not exist.
func (s *CatalogService) GetPackage(ctx context.Context, id uuid.UUID) (domain.PackageDetail, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return domain.PackageDetail{}, fmt.Errorf("service.CatalogService.GetPackage: %w", err)
	}
	dest, err := s.destinations.GetByID(ctx, pkg.DestinationID)
	if err != nil {
		return domain.PackageDetail{}, fmt.Errorf("service.CatalogService.GetPackage: %w", err)
	}
	related, err := s.packages.ListRelated(ctx, pkg, relatedPackages)
	if err != nil {
		return domain.PackageDetail{}, fmt.Errorf("service.CatalogService.GetPackage: %w", err)
	}
	if related == nil {
		related = []domain.Package{}
	}
	return domain.PackageDetail{Package: pkg, Destination: dest, Related: related}, nil
}
