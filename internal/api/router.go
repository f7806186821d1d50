// Package api exposes the paginated read endpoints over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Alp4ka/listpager"
)

// APIPrefix is the versioned prefix of every resource route.
const APIPrefix = "/api/v2"

// Dependencies are the readers the handlers serve from.
type Dependencies struct {
	Subscribers          SubscriberReader
	Lists                SubscriberListReader
	Messages             MessageReader
	EventLogs            EventLogReader
	AttributeValues      AdminAttributeValueReader
	AttributeDefinitions AdminAttributeDefinitionReader
	URLCache             URLCacheReader
	Ping                 Pinger
	// MaxLimit caps the page size requested by clients.
	MaxLimit int
}

func NewHandler(deps Dependencies) *Handler {
	maxLimit := deps.MaxLimit
	if maxLimit <= 0 {
		maxLimit = listpager.MaxLimit
	}

	return &Handler{
		subscribers:          deps.Subscribers,
		lists:                deps.Lists,
		messages:             deps.Messages,
		eventLogs:            deps.EventLogs,
		attributeValues:      deps.AttributeValues,
		attributeDefinitions: deps.AttributeDefinitions,
		urlCache:             deps.URLCache,
		ping:                 deps.Ping,
		maxLimit:             maxLimit,
	}
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(deps Dependencies, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	Register(r, NewHandler(deps))

	return r
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, h *Handler) {
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIPrefix)
	{
		api.GET("/subscribers", h.ListSubscribers)
		api.GET("/lists", h.ListSubscriberLists)
		api.GET("/lists/:listId/subscribers", h.ListListMembers)
		api.GET("/campaigns", h.ListCampaigns)
		api.GET("/event-logs", h.ListEventLogs)
		api.GET("/administrators/:adminId/attributes", h.ListAdminAttributes)
		api.GET("/attribute-definitions", h.ListAttributeDefinitions)
		api.GET("/url-cache", h.ListURLCache)
	}
}
