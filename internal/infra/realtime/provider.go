package realtime

import (
	"context"
	"log/slog"

	"restops/config"
	"restops/internal/domain/lifecycle"
	"restops/internal/domain/service"
	"restops/internal/infra/broker"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the topic router, injected by Fx
type RouterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRouter returns the local router, or a cluster router when RabbitMQ is enabled.
func NewRouter(params RouterParams) (service.TopicRouter, error) {
	logger := params.Logger
	local := NewTopicRouter(logger)

	cfg := params.Config.RabbitMQ
	if cfg == nil || !cfg.Enabled {
		logger.Info("RabbitMQ disabled, topic fan-out stays node-local")

		return local, nil
	}
	if cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required when rabbitmq is enabled")
	}

	nodeID := uuid.New().String()
	client, err := broker.NewRabbitMQClient(cfg.URL, cfg.Exchange, nodeID)
	if err != nil {
		return nil, err
	}

	router := NewClusterRouter(local, client, logger.With(slog.String("node_id", nodeID)))
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := router.Run(runCtx); err != nil {
					logger.Error("Cluster router stopped", slog.Any("error", err))
				}
			}()
			logger.Info("Cluster topic router started",
				slog.String("exchange", cfg.Exchange),
				slog.String("node_id", nodeID),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			stopCtx, stop := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer stop()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			logger.Info("Closing RabbitMQ client")

			return client.Close()
		},
	})

	return router, nil
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewConnectionRegistry,
		NewRouter,
	),
)
