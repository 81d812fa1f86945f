package ws

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"restops/config"
	deliverycontext "restops/internal/delivery/context"
	"restops/internal/delivery/http/response"
	"restops/internal/delivery/http/validator"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/service"
	"restops/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for the WebSocket endpoint, injected by Fx.
type HandlerParams struct {
	fx.In

	Config   *config.Config
	Dispatch usecase.DispatchUsecase
	Alerts   usecase.AlertUsecase
	Registry service.ConnectionRegistry
	Router   service.TopicRouter
	Logger   *slog.Logger
}

// Handler upgrades authenticated requests and runs one session per connection.
type Handler struct {
	cfg      config.WebSocketConfig
	upgrader websocket.Upgrader
	dispatch usecase.DispatchUsecase
	alerts   usecase.AlertUsecase
	registry service.ConnectionRegistry
	router   service.TopicRouter
	validate echo.Validator
	logger   *slog.Logger
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	cfg := config.Defaults().WebSocket
	if params.Config != nil && params.Config.WebSocket != nil {
		cfg = params.Config.WebSocket
	}

	return &Handler{
		cfg: *cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
		dispatch: params.Dispatch,
		alerts:   params.Alerts,
		registry: params.Registry,
		router:   params.Router,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// Handle serves GET /ws. It blocks for the lifetime of the connection.
func (h *Handler) Handle(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authentication required")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.logger.Debug("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	cl := newClient(conn, h.cfg, logger)
	logger = logger.With(
		slog.String("connection_id", cl.ID()),
		slog.String("principal", principal.Key().String()),
	)
	cl.logger = logger

	sess := &session{
		principal: principal,
		client:    cl,
		dispatch:  h.dispatch,
		alerts:    h.alerts,
		registry:  h.registry,
		router:    h.router,
		validate:  h.validate,
		logger:    logger,
	}

	// The connection outlives request cancellation but keeps its values.
	ctx := deliverycontext.WithLogger(context.WithoutCancel(c.Request().Context()), logger)
	ctx = deliverycontext.WithRequestID(ctx, cl.ID())

	logger.Debug("WebSocket connected")
	go cl.writePump()
	cl.readPump(func(raw []byte) { sess.handle(ctx, raw) })
	sess.close()

	return nil
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		return origin == "" || slices.Contains(allowed, origin) || slices.Contains(allowed, "*")
	}
}
