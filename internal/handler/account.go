package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-booking/internal/auth"
	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/handler/gen"
)

// msgAccountGone is returned when a valid token names a user that no longer exists.
const msgAccountGone = "account no longer exists"

// Register handles POST /accounts.
func (s *Server) Register(ctx context.Context, req gen.RegisterRequestObject) (gen.RegisterResponseObject, error) {
	if req.Body == nil {
		return gen.Register422JSONResponse(requestBody("request body is required")), nil
	}

	u, err := s.accounts.Register(ctx, domain.Registration{
		Username:        req.Body.Username,
		Email:           string(req.Body.Email),
		FirstName:       req.Body.FirstName,
		LastName:        req.Body.LastName,
		Password:        req.Body.Password,
		PasswordConfirm: req.Body.PasswordConfirm,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return gen.Register409JSONResponse(conflictBody("username is already taken")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.Register422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.Register201JSONResponse(userToResponse(u)), nil
}

// Login handles POST /sessions.
// On success it returns a bearer token for the Authorization header.
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	if req.Body == nil {
		return gen.Login401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody("invalid username or password")}, nil
	}

	u, err := s.accounts.Authenticate(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return gen.Login401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(unwrapMessage(err))}, nil
		}
		return nil, err
	}

	token, expires, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token for user %s: %w", u.ID, err)
	}
	return gen.Login200JSONResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expires,
		User:      userToResponse(u),
	}, nil
}

// GetProfile handles GET /profile.
func (s *Server) GetProfile(ctx context.Context, _ gen.GetProfileRequestObject) (gen.GetProfileResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.GetProfile401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}

	p, err := s.accounts.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetProfile401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAccountGone)}, nil
		}
		return nil, err
	}
	return gen.GetProfile200JSONResponse(profileToResponse(p)), nil
}

// UpdateProfile handles PUT /profile.
// Omitted fields are cleared.
func (s *Server) UpdateProfile(ctx context.Context, req gen.UpdateProfileRequestObject) (gen.UpdateProfileResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.UpdateProfile401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAuthRequired)}, nil
	}
	if req.Body == nil {
		return gen.UpdateProfile422JSONResponse(requestBody("request body is required")), nil
	}

	p, err := s.accounts.UpdateProfile(ctx, requestToProfile(userID, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateProfile401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody(msgAccountGone)}, nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateProfile422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateProfile200JSONResponse(profileToResponse(p)), nil
}

// --- mapping helpers --------------------------------------------------------

func requestToProfile(userID uuid.UUID, body *gen.UpdateProfileRequest) domain.Profile {
	p := domain.Profile{UserID: userID}
	if body.PhoneNumber != nil {
		p.PhoneNumber = *body.PhoneNumber
	}
	if body.Address != nil {
		p.Address = *body.Address
	}
	if body.PassportNumber != nil {
		p.PassportNumber = *body.PassportNumber
	}
	if body.DateOfBirth != nil {
		dob := body.DateOfBirth.Time
		p.DateOfBirth = &dob
	}
	return p
}

func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     openapi_types.Email(u.Email),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func profileToResponse(p domain.Profile) gen.Profile {
	resp := gen.Profile{
		UserId:         p.UserID,
		Username:       p.Username,
		Email:          openapi_types.Email(p.Email),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		Address:        p.Address,
		PassportNumber: p.PassportNumber,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = &openapi_types.Date{Time: *p.DateOfBirth}
	}
	return resp
}
