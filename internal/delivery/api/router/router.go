// Package router wires handlers and middleware to the API routes.
package router

import (
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router/handler"
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/confirm-email", r.authHandler.ConfirmEmail)

		authGroup.POST("/resend-confirmation", r.authHandler.ResendConfirmation, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	usersGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser, entity.RoleAdmin))
	{
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}
}
