package inbound

import (
	"context"

	"github.com/RaveKev/security-jwt-service/internal/pkg/router"
	"github.com/RaveKev/security-jwt-service/internal/security/usecase"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Refresh(ctx context.Context, in usecase.RefreshInput) (*usecase.RefreshOutput, error)
	Logout(ctx context.Context, in usecase.LogoutInput) error
	CheckToken(ctx context.Context, in usecase.CheckTokenInput) (*usecase.CheckTokenOutput, error)
	AuthorizationInfo(ctx context.Context, in usecase.AuthorizationInfoInput) (*usecase.AuthorizationInfoOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/security/login", end.Login)
	r.POST("/api/v1/security/refresh", end.Refresh)
	r.POST("/api/v1/security/check_token", end.CheckToken)
	r.POST("/api/v1/security/logout", end.Logout)                       // need authenticated
	r.GET("/api/v1/security/authorization-info", end.AuthorizationInfo) // need authenticated
}
