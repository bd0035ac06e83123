package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-booking/internal/auth"
	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/handler/gen"
)

const msgAuthRequired = "authentication required"

// CreateBooking handles POST /packages/{packageId}/bookings.
func (s *Server) CreateBooking(ctx context.Context, req gen.CreateBookingRequestObject) (gen.CreateBookingResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.CreateBooking401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}
	if req.Body == nil {
		return gen.CreateBooking422JSONResponse(requestBody("request body is required")), nil
	}

	r := domain.ReserveRequest{
		PackageID:    req.PackageId,
		UserID:       userID,
		TravelDate:   req.Body.TravelDate.Time,
		Travelers:    req.Body.NumberOfTravelers,
		ContactPhone: req.Body.ContactPhone,
		ContactEmail: string(req.Body.ContactEmail),
	}
	if req.Body.SpecialRequests != nil {
		r.SpecialRequests = *req.Body.SpecialRequests
	}

	b, err := s.bookings.Reserve(ctx, r)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateBooking404JSONResponse(notFoundBody("package not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateBooking422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateBooking201JSONResponse(bookingToResponse(b)), nil
}

// ListMyBookings handles GET /bookings.
// Supports ?page= and ?limit= (defaults: page=1, limit=12, max=100).
func (s *Server) ListMyBookings(ctx context.Context, req gen.ListMyBookingsRequestObject) (gen.ListMyBookingsResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.ListMyBookings401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	bookings, total, err := s.bookings.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Booking, len(bookings))
	for i, b := range bookings {
		data[i] = bookingToResponse(b)
	}
	return gen.ListMyBookings200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetBooking handles GET /bookings/{bookingId}.
func (s *Server) GetBooking(ctx context.Context, req gen.GetBookingRequestObject) (gen.GetBookingResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.GetBooking401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}

	b, err := s.bookings.GetByID(ctx, req.BookingId, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetBooking404JSONResponse(notFoundBody("booking not found")), nil
		}
		return nil, err
	}
	return gen.GetBooking200JSONResponse(bookingToResponse(b)), nil
}

// CancelBooking handles POST /bookings/{bookingId}/cancel.
func (s *Server) CancelBooking(ctx context.Context, req gen.CancelBookingRequestObject) (gen.CancelBookingResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.CancelBooking401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}

	b, err := s.bookings.Cancel(ctx, req.BookingId, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CancelBooking404JSONResponse(notFoundBody("booking not found")), nil
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return gen.CancelBooking409JSONResponse(invalidStateBody(err)), nil
		}
		return nil, err
	}
	return gen.CancelBooking200JSONResponse(bookingToResponse(b)), nil
}

// GetBookingTicket handles GET /bookings/{bookingId}/ticket.
// The PDF is sent as an attachment named after the booking ID.
func (s *Server) GetBookingTicket(ctx context.Context, req gen.GetBookingTicketRequestObject) (gen.GetBookingTicketResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.GetBookingTicket401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}

	b, err := s.bookings.GetByID(ctx, req.BookingId, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetBookingTicket404JSONResponse(notFoundBody("booking not found")), nil
		}
		return nil, err
	}

	pdf, err := s.tickets.Render(b)
	if err != nil {
		return nil, fmt.Errorf("render ticket for booking %s: %w", b.ID, err)
	}

	return gen.GetBookingTicket200ApplicationpdfResponse{
		Body:          bytes.NewReader(pdf),
		ContentLength: int64(len(pdf)),
		Headers: gen.GetBookingTicket200ResponseHeaders{
			ContentDisposition: fmt.Sprintf(`attachment; filename="booking-%s.pdf"`, b.ID),
		},
	}, nil
}

// --- mapping helpers --------------------------------------------------------

func bookingToResponse(b domain.Booking) gen.Booking {
	resp := gen.Booking{
		Id:                b.ID,
		PackageId:         b.PackageID,
		PackageName:       b.PackageName,
		DestinationName:   b.DestinationName,
		BookingDate:       b.BookingDate,
		TravelDate:        openapi_types.Date{Time: b.TravelDate},
		NumberOfTravelers: b.NumberOfTravelers,
		TotalPrice:        b.TotalPrice.String(),
		Status:            gen.BookingStatus(b.Status),
		ContactPhone:      b.ContactPhone,
		ContactEmail:      openapi_types.Email(b.ContactEmail),
		UpdatedAt:         b.UpdatedAt,
	}
	if b.SpecialRequests != "" {
		resp.SpecialRequests = &b.SpecialRequests
	}
	return resp
}
