package pubsub

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops catalog events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	p.logger.DebugContext(ctx, "Catalog event dropped, no publisher configured",
		slog.String("resource", event.Resource),
		slog.String("resource_id", event.ResourceID),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the catalog event publisher for the configured provider.
// An empty pubsub section disables publishing; an incomplete one fails startup.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "catalog_events"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Catalog events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog events enabled", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(publisher.Close(), "failed to close catalog event publisher")
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

func openPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
}

// Module provides the catalog event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
