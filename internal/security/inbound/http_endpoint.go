package inbound

import (
	"strings"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/router"
	"github.com/RaveKev/security-jwt-service/internal/security/usecase"
)

// HTTPEndpoint exposes HTTP handlers for token issuance and introspection.
type HTTPEndpoint struct {
	uc uc
}

// Login authenticates a user and returns an access/refresh token pair.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new access/refresh token pair.
func (h *HTTPEndpoint) Refresh(r *router.Request) (any, error) {
	var req RefreshRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Refresh(r.Context(), usecase.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return RefreshResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout revokes the caller's tokens. The body is optional.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	var req LogoutRequest
	if r.ContentLength > 0 {
		if err := r.DecodeBody(&req); err != nil {
			return nil, err
		}
	}

	if err := h.uc.Logout(r.Context(), usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return nil, err
	}

	return nil, nil
}

// CheckToken reports whether a token is currently usable.
func (h *HTTPEndpoint) CheckToken(r *router.Request) (any, error) {
	var req CheckTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CheckToken(r.Context(), usecase.CheckTokenInput{Token: req.Token})
	if err != nil {
		return nil, err
	}

	return CheckTokenResponse{Active: resp.Active}, nil
}

// AuthorizationInfo returns the identity projection of the bearer token.
func (h *HTTPEndpoint) AuthorizationInfo(r *router.Request) (any, error) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	resp, err := h.uc.AuthorizationInfo(r.Context(), usecase.AuthorizationInfoInput{Token: parts[1]})
	if err != nil {
		return nil, err
	}

	return AuthorizationInfoResponse{
		Username: resp.Username,
		Roles:    resp.Roles,
		Claims:   resp.Claims,
	}, nil
}
