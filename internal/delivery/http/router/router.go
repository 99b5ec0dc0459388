// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TodoHandler         *handler.TodoHandler
	CommentHandler      *handler.CommentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	todoHandler         *handler.TodoHandler
	commentHandler      *handler.CommentHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		todoHandler:         params.TodoHandler,
		commentHandler:      params.CommentHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Me reads the session itself so an anonymous caller gets
	// null instead of a 401.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.GET("/me", r.userHandler.Me)
	}

	// Todo routes all require an authenticated session.
	todoGroup := e.Group("/todos")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.GET("", r.todoHandler.List)
		todoGroup.POST("", r.todoHandler.Create)
		todoGroup.GET("/:id", r.todoHandler.Get)
		todoGroup.PUT("/:id", r.todoHandler.Update)
		todoGroup.DELETE("/:id", r.todoHandler.Delete)
		todoGroup.POST("/:id/toggle", r.todoHandler.ToggleComplete)
		todoGroup.GET("/:id/comments", r.commentHandler.ListByTodo)
		todoGroup.POST("/:id/comments", r.commentHandler.Create)
	}

	// Comment deletion addresses the comment directly; ownership of the
	// parent todo is checked in the use case.
	commentGroup := e.Group("/comments")
	commentGroup.Use(r.authMiddleware.Authenticate)
	{
		commentGroup.DELETE("/:id", r.commentHandler.Delete)
	}
}
