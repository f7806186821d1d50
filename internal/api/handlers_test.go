package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
	"github.com/Alp4ka/listpager/internal/repository"
)

// stubPage records the last request and filter and returns a canned result.
type stubPage[T any, F any] struct {
	req    listpager.PageRequest
	filter F
	calls  int
	res    *listpager.PaginationResult[T]
	err    error
}

func (s *stubPage[T, F]) Paginate(_ context.Context, req listpager.PageRequest, filter F) (*listpager.PaginationResult[T], error) {
	s.calls++
	s.req = req
	s.filter = filter
	if s.err != nil {
		return nil, s.err
	}
	if s.res == nil {
		return &listpager.PaginationResult[T]{AppliedLimit: req.Limit}, nil
	}

	return s.res, nil
}

// stubUnfiltered serves readers without filter variants.
type stubUnfiltered[T any] struct {
	req listpager.PageRequest
	res *listpager.PaginationResult[T]
	err error
}

func (s *stubUnfiltered[T]) Paginate(_ context.Context, req listpager.PageRequest) (*listpager.PaginationResult[T], error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}

	return s.res, nil
}

type stubLists struct {
	stubPage[model.SubscriberList, *repository.SubscriberListFilter]
	findErr error
}

func (s *stubLists) FindByID(_ context.Context, id int64) (*model.SubscriberList, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}

	return &model.SubscriberList{ID: id}, nil
}

type stubs struct {
	subscribers *stubPage[model.Subscriber, *repository.SubscriberFilter]
	lists       *stubLists
	messages    *stubPage[model.Message, *repository.MessageFilter]
	eventLogs   *stubPage[model.EventLog, *repository.EventLogFilter]
	attributes  *stubPage[model.AdminAttributeValue, *repository.AdminAttributeValueFilter]
	definitions *stubUnfiltered[model.AdminAttributeDefinition]
	urlCache    *stubUnfiltered[model.URLCache]
	pingErr     error
}

func newStubs() *stubs {
	return &stubs{
		subscribers: &stubPage[model.Subscriber, *repository.SubscriberFilter]{},
		lists:       &stubLists{},
		messages:    &stubPage[model.Message, *repository.MessageFilter]{},
		eventLogs:   &stubPage[model.EventLog, *repository.EventLogFilter]{},
		attributes:  &stubPage[model.AdminAttributeValue, *repository.AdminAttributeValueFilter]{},
		definitions: &stubUnfiltered[model.AdminAttributeDefinition]{},
		urlCache:    &stubUnfiltered[model.URLCache]{},
	}
}

func newTestRouter(s *stubs) *gin.Engine {
	gin.SetMode(gin.TestMode)

	return NewRouter(Dependencies{
		Subscribers:          s.subscribers,
		Lists:                s.lists,
		Messages:             s.messages,
		EventLogs:            s.eventLogs,
		AttributeValues:      s.attributes,
		AttributeDefinitions: s.definitions,
		URLCache:             s.urlCache,
		Ping:                 func(context.Context) error { return s.pingErr },
		MaxLimit:             50,
	}, zerolog.Nop())
}

func get(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func Test_ListSubscribers(t *testing.T) {
	s := newStubs()
	s.subscribers.res = &listpager.PaginationResult[model.Subscriber]{
		Items:         []model.Subscriber{{ID: 3, Email: "a@example.com"}, {ID: 4, Email: "b@example.com"}},
		Total:         5,
		AppliedLimit:  2,
		HasMore:       true,
		NextPageToken: listpager.NewIDCursor(4),
	}
	r := newTestRouter(s)

	w := get(t, r, "/api/v2/subscribers?after_id=2&limit=2&list_id=9&confirmed=true&email=example")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Equal(t, listpager.PageRequest{LastID: 2, Limit: 2}, s.subscribers.req)
	require.Equal(t, int64(9), s.subscribers.filter.ListID)
	require.NotNil(t, s.subscribers.filter.Confirmed)
	require.True(t, *s.subscribers.filter.Confirmed)
	require.Nil(t, s.subscribers.filter.Blacklisted)
	require.Equal(t, "example", s.subscribers.filter.Email)

	var resp PageResponse[model.Subscriber]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	require.Equal(t, int64(3), resp.Items[0].ID)
	require.Equal(t, int64(5), resp.Pagination.Total)
	require.Equal(t, 2, resp.Pagination.Limit)
	require.True(t, resp.Pagination.HasMore)
	require.NotNil(t, resp.Pagination.NextCursor)
	require.Equal(t, int64(4), *resp.Pagination.NextCursor)
}

func Test_PageLimitNormalization(t *testing.T) {
	testCases := []struct {
		name   string
		query  string
		expect listpager.PageRequest
	}{
		{name: "default", query: "", expect: listpager.PageRequest{Limit: listpager.DefaultLimit}},
		{name: "clamped", query: "?limit=500", expect: listpager.PageRequest{Limit: 50}},
		{name: "explicit", query: "?limit=7&after_id=70", expect: listpager.PageRequest{LastID: 70, Limit: 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStubs()
			r := newTestRouter(s)

			w := get(t, r, "/api/v2/subscribers"+tc.query)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			require.Equal(t, tc.expect, s.subscribers.req)
		})
	}
}

func Test_EmptyPage(t *testing.T) {
	s := newStubs()
	r := newTestRouter(s)

	w := get(t, r, "/api/v2/lists?owner_id=1&public=false")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"items":[],"pagination":{"total":0,"limit":25,"has_more":false}}`, w.Body.String())

	require.Equal(t, int64(1), s.lists.filter.OwnerID)
	require.NotNil(t, s.lists.filter.Public)
	require.False(t, *s.lists.filter.Public)
}

func Test_BadRequests(t *testing.T) {
	testCases := []struct {
		name   string
		target string
	}{
		{name: "negative after_id", target: "/api/v2/subscribers?after_id=-1"},
		{name: "non numeric limit", target: "/api/v2/subscribers?limit=ten"},
		{name: "negative list id", target: "/api/v2/subscribers?list_id=-3"},
		{name: "unknown status", target: "/api/v2/campaigns?status=archived"},
		{name: "bad date", target: "/api/v2/event-logs?date_from=yesterday"},
		{name: "inverted dates", target: "/api/v2/event-logs?date_from=2024-03-02T00:00:00Z&date_to=2024-03-01T00:00:00Z"},
		{name: "bad list id", target: "/api/v2/lists/abc/subscribers"},
		{name: "zero admin id", target: "/api/v2/administrators/0/attributes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStubs()
			r := newTestRouter(s)

			w := get(t, r, tc.target)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			require.Equal(t, ErrorValidation, decodeError(t, w).Error)

			assert.Zero(t, s.subscribers.calls)
			assert.Zero(t, s.messages.calls)
			assert.Zero(t, s.eventLogs.calls)
			assert.Zero(t, s.attributes.calls)
		})
	}
}

func Test_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
		errType  ErrorType
	}{
		{name: "invalid argument", err: listpager.ErrInvalidArgument, expected: http.StatusBadRequest, errType: ErrorValidation},
		{name: "unsupported filter", err: listpager.ErrUnsupportedFilter, expected: http.StatusBadRequest, errType: ErrorValidation},
		{name: "not found", err: repository.ErrNotFound, expected: http.StatusNotFound, errType: ErrorNotFound},
		{name: "persistence", err: errors.Join(listpager.ErrPersistence, errors.New("connection reset")), expected: http.StatusInternalServerError, errType: ErrorInternal},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError, errType: ErrorInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStubs()
			s.messages.err = tc.err
			r := newTestRouter(s)

			w := get(t, r, "/api/v2/campaigns?status=sent&status=draft&owner_id=2")
			require.Equal(t, tc.expected, w.Code)

			resp := decodeError(t, w)
			require.Equal(t, tc.errType, resp.Error)
			if tc.expected == http.StatusInternalServerError {
				require.NotContains(t, resp.Message, "connection reset")
			}

			require.Equal(t, []string{"sent", "draft"}, s.messages.filter.Statuses)
			require.Equal(t, int64(2), s.messages.filter.OwnerID)
		})
	}
}

func Test_ListListMembers(t *testing.T) {
	t.Run("members of an existing list", func(t *testing.T) {
		s := newStubs()
		r := newTestRouter(s)

		w := get(t, r, "/api/v2/lists/12/subscribers?after_id=40&limit=10")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, int64(12), s.subscribers.filter.ListID)
		require.Equal(t, listpager.PageRequest{LastID: 40, Limit: 10}, s.subscribers.req)
	})

	t.Run("unknown list", func(t *testing.T) {
		s := newStubs()
		s.lists.findErr = repository.ErrNotFound
		r := newTestRouter(s)

		w := get(t, r, "/api/v2/lists/12/subscribers")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Zero(t, s.subscribers.calls)
	})
}

func Test_ListEventLogs(t *testing.T) {
	s := newStubs()
	r := newTestRouter(s)

	w := get(t, r, "/api/v2/event-logs?page=login&date_from=2024-03-01T00:00:00Z&date_to=2024-03-02T00:00:00Z")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	filter := s.eventLogs.filter
	require.Equal(t, "login", filter.Page)
	require.NotNil(t, filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	require.True(t, filter.DateFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, filter.DateTo.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
}

func Test_ListAdminAttributes(t *testing.T) {
	s := newStubs()
	r := newTestRouter(s)

	w := get(t, r, "/api/v2/administrators/7/attributes?limit=3")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, int64(7), s.attributes.filter.AdminID)
	require.Equal(t, 3, s.attributes.req.Limit)
}

func Test_UnfilteredResources(t *testing.T) {
	s := newStubs()
	s.definitions.res = &listpager.PaginationResult[model.AdminAttributeDefinition]{
		Items:        []model.AdminAttributeDefinition{{ID: 1, Name: "phone"}},
		Total:        1,
		AppliedLimit: 5,
	}
	s.urlCache.err = errors.New("table missing")
	r := newTestRouter(s)

	w := get(t, r, "/api/v2/attribute-definitions?limit=5")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, listpager.PageRequest{Limit: 5}, s.definitions.req)

	w = get(t, r, "/api/v2/url-cache?after_id=9")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, int64(9), s.urlCache.req.LastID)
}

func Test_Probes(t *testing.T) {
	s := newStubs()
	r := newTestRouter(s)

	require.Equal(t, http.StatusOK, get(t, r, "/live").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/ready").Code)

	s.pingErr = errors.New("database is down")
	require.Equal(t, http.StatusServiceUnavailable, get(t, r, "/ready").Code)
}
