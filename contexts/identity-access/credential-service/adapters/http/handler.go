package httpadapter

import (
	"context"
	"log/slog"

	"taskhub/contexts/identity-access/credential-service/application"
	httptransport "taskhub/contexts/identity-access/credential-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// SignupHandler godoc
// @Summary Register a new account
// @Description Creates an account and returns a bearer identity token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.SignupRequest true "Signup payload"
// @Success 201 {object} httptransport.AuthResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /auth/signup [post]
func (h Handler) SignupHandler(ctx context.Context, req httptransport.SignupRequest) (httptransport.AuthResponse, error) {
	minted, err := h.Service.Register(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{
		Status:  true,
		Data:    &httptransport.TokenData{Token: minted},
		Message: "Sign up successful",
	}, nil
}

// LoginHandler godoc
// @Summary Authenticate an account
// @Description Verifies credentials and returns a bearer identity token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Login payload"
// @Success 200 {object} httptransport.AuthResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /auth/login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.AuthResponse, error) {
	minted, err := h.Service.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{
		Status:  true,
		Data:    &httptransport.TokenData{Token: minted},
		Message: "Login successful",
	}, nil
}
