package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/handler/gen"
)

// GetFeatured handles GET /featured.
func (s *Server) GetFeatured(ctx context.Context, _ gen.GetFeaturedRequestObject) (gen.GetFeaturedResponseObject, error) {
	f, err := s.catalog.Featured(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GetFeatured200JSONResponse{
		Destinations: destinationsToResponse(f.Destinations),
		Packages:     packagesToResponse(f.Packages),
	}, nil
}

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(ctx context.Context, _ gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	destinations, err := s.catalog.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListDestinations200JSONResponse(destinationsToResponse(destinations)), nil
}

// GetDestination handles GET /destinations/{destinationId}.
func (s *Server) GetDestination(ctx context.Context, req gen.GetDestinationRequestObject) (gen.GetDestinationResponseObject, error) {
	d, err := s.catalog.GetDestination(ctx, req.DestinationId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetDestination404JSONResponse(notFoundBody("destination not found")), nil
		}
		return nil, err
	}
	return gen.GetDestination200JSONResponse{
		Destination: destinationToResponse(d.Destination),
		Packages:    packagesToResponse(d.Packages),
	}, nil
}

// ListPackages handles GET /packages.
// Every query parameter is optional; set ones are combined with AND.
func (s *Server) ListPackages(ctx context.Context, req gen.ListPackagesRequestObject) (gen.ListPackagesResponseObject, error) {
	f, err := paramsToFilter(req.Params)
	if err != nil {
		return gen.ListPackages422JSONResponse(validationBody(err)), nil
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	packages, total, err := s.catalog.ListPackages(ctx, f, params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListPackages422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.ListPackages200JSONResponse{
		Data: packagesToResponse(packages),
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetPackage handles GET /packages/{packageId}.
func (s *Server) GetPackage(ctx context.Context, req gen.GetPackageRequestObject) (gen.GetPackageResponseObject, error) {
	d, err := s.catalog.GetPackage(ctx, req.PackageId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPackage404JSONResponse(notFoundBody("package not found")), nil
		}
		return nil, err
	}
	return gen.GetPackage200JSONResponse{
		Package:     packageToResponse(d.Package),
		Destination: destinationToResponse(d.Destination),
		Related:     packagesToResponse(d.Related),
	}, nil
}

// --- mapping helpers --------------------------------------------------------

// paramsToFilter converts the query parameters into a domain.PackageFilter.
// Prices arrive as decimal strings and are parsed here; range checks are
// left to the service.
func paramsToFilter(p gen.ListPackagesParams) (domain.PackageFilter, error) {
	var f domain.PackageFilter
	if p.Destination != nil {
		f.Destination = *p.Destination
	}
	if p.PackageType != nil {
		f.Type = domain.PackageType(*p.PackageType)
	}
	if p.MinPrice != nil {
		m, err := domain.ParseMoney(*p.MinPrice)
		if err != nil {
			return f, err
		}
		f.MinPrice = &m
	}
	if p.MaxPrice != nil {
		m, err := domain.ParseMoney(*p.MaxPrice)
		if err != nil {
			return f, err
		}
		f.MaxPrice = &m
	}
	if p.DepartureAfter != nil {
		d := p.DepartureAfter.Time
		f.DepartureAfter = &d
	}
	f.MinDuration = p.DurationMin
	f.MaxDuration = p.DurationMax
	return f, nil
}

func destinationToResponse(d domain.Destination) gen.Destination {
	return gen.Destination{
		Id:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Country:     d.Country,
		City:        d.City,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func destinationsToResponse(ds []domain.Destination) []gen.Destination {
	out := make([]gen.Destination, len(ds))
	for i, d := range ds {
		out[i] = destinationToResponse(d)
	}
	return out
}

func packageToResponse(p domain.Package) gen.Package {
	return gen.Package{
		Id:                p.ID,
		DestinationId:     p.DestinationID,
		DestinationName:   p.DestinationName,
		Name:              p.Name,
		Description:       p.Description,
		PackageType:       gen.PackageType(p.Type),
		DurationDays:      p.DurationDays,
		Price:             p.Price.String(),
		MaxTravelers:      p.MaxTravelers,
		AvailableSeats:    p.AvailableSeats,
		DepartureDate:     openapi_types.Date{Time: p.DepartureDate},
		ReturnDate:        openapi_types.Date{Time: p.ReturnDate},
		IncludesFlight:    p.IncludesFlight,
		IncludesHotel:     p.IncludesHotel,
		IncludesMeals:     p.IncludesMeals,
		IncludesTransport: p.IncludesTransport,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func packagesToResponse(ps []domain.Package) []gen.Package {
	out := make([]gen.Package, len(ps))
	for i, p := range ps {
		out[i] = packageToResponse(p)
	}
	return out
}
