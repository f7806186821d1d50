package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
	"github.com/Alp4ka/listpager/internal/repository"
)

type SubscriberReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest, filter *repository.SubscriberFilter) (*listpager.PaginationResult[model.Subscriber], error)
}

type SubscriberListReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest, filter *repository.SubscriberListFilter) (*listpager.PaginationResult[model.SubscriberList], error)
	FindByID(ctx context.Context, id int64) (*model.SubscriberList, error)
}

type MessageReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest, filter *repository.MessageFilter) (*listpager.PaginationResult[model.Message], error)
}

type EventLogReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest, filter *repository.EventLogFilter) (*listpager.PaginationResult[model.EventLog], error)
}

type AdminAttributeValueReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest, filter *repository.AdminAttributeValueFilter) (*listpager.PaginationResult[model.AdminAttributeValue], error)
}

type AdminAttributeDefinitionReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.AdminAttributeDefinition], error)
}

type URLCacheReader interface {
	Paginate(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.URLCache], error)
}

// Pinger reports database availability.
type Pinger func(ctx context.Context) error

type Handler struct {
	subscribers          SubscriberReader
	lists                SubscriberListReader
	messages             MessageReader
	eventLogs            EventLogReader
	attributeValues      AdminAttributeValueReader
	attributeDefinitions AdminAttributeDefinitionReader
	urlCache             URLCacheReader
	ping                 Pinger
	maxLimit             int
}

type subscribersQuery struct {
	listpager.RawPageRequest
	ListID      int64  `form:"list_id" binding:"gte=0"`
	Confirmed   *bool  `form:"confirmed"`
	Blacklisted *bool  `form:"blacklisted"`
	Email       string `form:"email" binding:"max=255"`
}

type listsQuery struct {
	listpager.RawPageRequest
	OwnerID int64 `form:"owner_id" binding:"gte=0"`
	Public  *bool `form:"public"`
}

type campaignsQuery struct {
	listpager.RawPageRequest
	OwnerID int64    `form:"owner_id" binding:"gte=0"`
	Status  []string `form:"status" binding:"dive,oneof=draft submitted inprocess sent suspended prepared"`
}

type eventLogsQuery struct {
	listpager.RawPageRequest
	Page     string     `form:"page" binding:"max=100"`
	DateFrom *time.Time `form:"date_from"`
	DateTo   *time.Time `form:"date_to"`
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	var q subscribersQuery
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q.RawPageRequest, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.Subscriber], error) {
		return h.subscribers.Paginate(ctx, req, &repository.SubscriberFilter{
			ListID:      q.ListID,
			Confirmed:   q.Confirmed,
			Blacklisted: q.Blacklisted,
			Email:       q.Email,
		})
	})
}

func (h *Handler) ListSubscriberLists(c *gin.Context) {
	var q listsQuery
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q.RawPageRequest, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.SubscriberList], error) {
		return h.lists.Paginate(ctx, req, &repository.SubscriberListFilter{
			OwnerID: q.OwnerID,
			Public:  q.Public,
		})
	})
}

func (h *Handler) ListListMembers(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	var q listpager.RawPageRequest
	if !bindQuery(c, &q) {
		return
	}

	if _, err := h.lists.FindByID(c.Request.Context(), listID); err != nil {
		writeError(c, err)
		return
	}

	respondPage(c, h.maxLimit, q, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.Subscriber], error) {
		return h.subscribers.Paginate(ctx, req, &repository.SubscriberFilter{ListID: listID})
	})
}

func (h *Handler) ListCampaigns(c *gin.Context) {
	var q campaignsQuery
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q.RawPageRequest, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.Message], error) {
		return h.messages.Paginate(ctx, req, &repository.MessageFilter{
			OwnerID:  q.OwnerID,
			Statuses: q.Status,
		})
	})
}

func (h *Handler) ListEventLogs(c *gin.Context) {
	var q eventLogsQuery
	if !bindQuery(c, &q) {
		return
	}

	if q.DateFrom != nil && q.DateTo != nil && q.DateTo.Before(*q.DateFrom) {
		writeError(c, fmt.Errorf("%w: date_to is before date_from", listpager.ErrInvalidArgument))
		return
	}

	respondPage(c, h.maxLimit, q.RawPageRequest, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.EventLog], error) {
		return h.eventLogs.Paginate(ctx, req, &repository.EventLogFilter{
			Page:     q.Page,
			DateFrom: q.DateFrom,
			DateTo:   q.DateTo,
		})
	})
}

func (h *Handler) ListAdminAttributes(c *gin.Context) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}

	var q listpager.RawPageRequest
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q, func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.AdminAttributeValue], error) {
		return h.attributeValues.Paginate(ctx, req, &repository.AdminAttributeValueFilter{AdminID: adminID})
	})
}

func (h *Handler) ListAttributeDefinitions(c *gin.Context) {
	var q listpager.RawPageRequest
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q, h.attributeDefinitions.Paginate)
}

func (h *Handler) ListURLCache(c *gin.Context) {
	var q listpager.RawPageRequest
	if !bindQuery(c, &q) {
		return
	}

	respondPage(c, h.maxLimit, q, h.urlCache.Paginate)
}

func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Readiness(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func respondPage[T any](
	c *gin.Context,
	maxLimit int,
	raw listpager.RawPageRequest,
	fetch func(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[T], error),
) {
	req, err := raw.Decode(maxLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := fetch(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(res))
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return false
	}

	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, fmt.Errorf("%w: invalid %s '%s'", errBadRequest, name, c.Param(name)))
		return 0, false
	}

	return id, true
}
