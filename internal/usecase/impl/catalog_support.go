package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/query"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"

	"github.com/google/uuid"
)

// Listing schemas per resource.
var (
	brandSchema = query.Schema{
		SearchMode:    query.SearchColumns,
		SearchColumns: []string{"name", "description"},
		Equality: []query.EqualityParam{
			{Param: "isShow", Column: "is_show", Kind: query.KindBool},
		},
	}

	productSchema = query.Schema{
		SearchMode: query.SearchTextIndex,
		TextIndex:  "search_vector",
		Equality: []query.EqualityParam{
			{Param: "brand", Column: "brand_id", Kind: query.KindUUID},
			{Param: "isPublish", Column: "is_publish", Kind: query.KindBool},
			{Param: "isFeatured", Column: "is_featured", Kind: query.KindBool},
		},
	}

	bannerSchema = query.Schema{
		SearchMode:    query.SearchColumns,
		SearchColumns: []string{"title"},
		Equality: []query.EqualityParam{
			{Param: "isShow", Column: "is_show", Kind: query.KindBool},
		},
	}
)

// parseListing turns raw parameters into a filter and a page for schema.
func parseListing(schema query.Schema, params query.Params) (query.Filter, query.Page, error) {
	filter, err := query.BuildFilter(schema, params)
	if err != nil {
		return query.Filter{}, query.Page{}, err
	}

	page, err := query.ParsePage(params)
	if err != nil {
		return query.Filter{}, query.Page{}, err
	}

	return filter, page, nil
}

// catalogEffects runs the side effects that follow a successful catalog write.
// Neither publishing nor media release can fail the write that triggered it.
type catalogEffects struct {
	publisher service.EventPublisher
	blobStore service.BlobStore
	logger    *slog.Logger
	now       func() time.Time
}

func (e *catalogEffects) publish(ctx context.Context, resource string, id uuid.UUID, action service.CatalogAction, actor *entity.Identity) {
	event := &service.CatalogEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Resource:   resource,
		ResourceID: id.String(),
		Action:     action,
		OccurredAt: e.now().UTC(),
	}
	if actor != nil {
		event.ActorID = actor.Subject.String()
	}

	if err := e.publisher.PublishCatalogEvent(ctx, event); err != nil {
		logs.FromContext(ctx, e.logger).WarnContext(ctx, "Failed to publish catalog event",
			slog.String("resource", resource),
			slog.String("resource_id", event.ResourceID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

func (e *catalogEffects) releaseMedia(ctx context.Context, resource string, url string) {
	if url == "" {
		return
	}

	if err := e.blobStore.Remove(ctx, url); err != nil {
		logs.FromContext(ctx, e.logger).WarnContext(ctx, "Failed to release media of removed resource",
			slog.String("resource", resource),
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

func newCatalogEffects(publisher service.EventPublisher, blobStore service.BlobStore, logger *slog.Logger) *catalogEffects {
	return &catalogEffects{
		publisher: publisher,
		blobStore: blobStore,
		logger:    logger,
		now:       time.Now,
	}
}
