// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"restops/config"
	"restops/internal/delivery/http/middleware"
	"restops/internal/delivery/http/router/handler"
	"restops/internal/delivery/ws"
	"restops/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	MessageHandler  *handler.MessageHandler
	PresenceHandler *handler.PresenceHandler
	WSHandler       *ws.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	messageHandler  *handler.MessageHandler
	presenceHandler *handler.PresenceHandler
	wsHandler       *ws.Handler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		messageHandler:  params.MessageHandler,
		presenceHandler: params.PresenceHandler,
		wsHandler:       params.WSHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Browsers cannot set headers on the upgrade request, so the token may
	// also arrive as ?token=.
	e.GET("/ws", r.wsHandler.Handle, r.authMiddleware.Authenticate)

	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.GET("", r.messageHandler.ListMessages)
		messageGroup.POST("/send", r.messageHandler.SendDirect)
		messageGroup.GET("/unread-count", r.messageHandler.UnreadCount)
		messageGroup.PUT("/:messageId/read", r.messageHandler.MarkRead)
		messageGroup.DELETE("/:messageId", r.messageHandler.DeleteMessage)
		messageGroup.GET("/conversation/:otherUserId/:otherUserRole", r.messageHandler.Conversation)

		messageGroup.POST("/branch/:branchId/broadcast", r.messageHandler.BranchBroadcast,
			r.authMiddleware.RequireRole(entity.ManagementRoles...))
		messageGroup.GET("/branch/:branchId/broadcasts", r.messageHandler.BranchBroadcasts)

		messageGroup.POST("/shop/broadcast", r.messageHandler.ShopBroadcast,
			r.authMiddleware.RequireRole(entity.RoleAdmin))
		messageGroup.GET("/shop/broadcasts", r.messageHandler.ShopBroadcasts)
	}

	presenceGroup := e.Group("/presence")
	presenceGroup.Use(r.authMiddleware.Authenticate)
	{
		presenceGroup.GET("/online", r.presenceHandler.IsOnline)
		presenceGroup.GET("/counts", r.presenceHandler.Counts)
	}
}
