package web

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/mocks"
	"todo-list/internal/view"
)

var created = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*mocks.MockTodoService, *Server) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTodoService(ctrl)

	renderer, err := view.NewRenderer("2006-01-02 15:04")
	require.NoError(t, err)

	return service, NewServer(service, renderer, logging.Discard(), Options{ShutdownTimeout: time.Second})
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleIndex(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().ListItems(gomock.Any()).Return([]domain.Item{
		{ID: 2, Title: "Walk dog", CreatedAt: created},
		{ID: 1, Title: "Buy milk", Done: true, CreatedAt: created},
	}, nil)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Walk dog")
	assert.Contains(t, body, `href="/toggle/1"`)
	assert.Less(t, strings.Index(body, "Walk dog"), strings.Index(body, "Buy milk"))
}

func TestHandleIndex_Empty(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().ListItems(gomock.Any()).Return([]domain.Item{}, nil)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing to do.")
}

func TestHandleIndex_StoreError(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().ListItems(gomock.Any()).Return(nil, errors.NewDatabaseError("list items", nil))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "A database error occurred")
}

func TestHandleAdd(t *testing.T) {
	tests := []struct {
		name  string
		form  url.Values
		title string
	}{
		{"with title", url.Values{"title": {"Buy milk"}}, "Buy milk"},
		{"empty title", url.Values{"title": {""}}, ""},
		{"missing title", url.Values{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, s := newTestServer(t)

			var added *domain.Item
			if tt.title != "" {
				added = &domain.Item{ID: 1, Title: tt.title}
			}
			service.EXPECT().AddItem(gomock.Any(), tt.title).Return(added, nil)

			w := serve(s, postForm("/add", tt.form))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
		})
	}
}

func TestHandleToggle(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().ToggleItem(gomock.Any(), int64(3)).Return(&domain.Item{ID: 3, Done: true}, nil)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/toggle/3", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestHandleToggle_NotFound(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().ToggleItem(gomock.Any(), int64(999)).Return(nil, errors.NewNotFoundError("item", "999"))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/toggle/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Location"), "a missing item is never redirected")
	assert.Contains(t, w.Body.String(), "item not found: 999")
}

func TestHandleDelete(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().DeleteItem(gomock.Any(), int64(5)).Return(nil)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/delete/5", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestHandleDelete_NotFound(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().DeleteItem(gomock.Any(), int64(7)).Return(errors.NewNotFoundError("item", "7"))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/delete/7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidPathIDIsNotFound(t *testing.T) {
	// No service call is expected for any of these.
	_, s := newTestServer(t)

	for _, path := range []string{"/toggle/abc", "/toggle/0", "/toggle/-1", "/toggle/+5", "/delete/+5", "/delete/1.5", "/delete/x"} {
		t.Run(path, func(t *testing.T) {
			w := serve(s, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestNoRoute(t *testing.T) {
	_, s := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")

	w = serve(s, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestMethodNotAllowed(t *testing.T) {
	_, s := newTestServer(t)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/add", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Method Not Allowed")

	w = serve(s, postForm("/toggle/1", url.Values{}))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = serve(s, httptest.NewRequest(http.MethodPut, "/api/items", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestHandleHealth(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().CountItems(gomock.Any()).Return(4, nil)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(4), body["items"])
}

func TestHandleHealth_Unavailable(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().CountItems(gomock.Any()).Return(0, errors.NewDatabaseError("count items", nil))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequestFailureIsLoggedWithErrorContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTodoService(ctrl)
	renderer, err := view.NewRenderer("2006-01-02 15:04")
	require.NoError(t, err)

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	s := NewServer(service, renderer, log, Options{ShutdownTimeout: time.Second})

	service.EXPECT().ListItems(gomock.Any()).Return(nil, errors.NewDatabaseError("list items", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "trace-9")
	serve(s, req)

	var failure map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record))
		if record["msg"] == "Request failed" {
			failure = record
		}
	}

	require.NotNil(t, failure)
	assert.Equal(t, "trace-9", failure["request_id"])
	assert.Equal(t, "DATABASE_ERROR", failure["code"])
	assert.Equal(t, map[string]any{"operation": "list items"}, failure["context"])
}

func TestRequestID(t *testing.T) {
	service, s := newTestServer(t)
	service.EXPECT().CountItems(gomock.Any()).Return(0, nil).Times(2)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36, "a uuid is generated when the caller sends none")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "trace-123")
	w = serve(s, req)
	assert.Equal(t, "trace-123", w.Header().Get(requestIDHeader))
}

func TestRequestID_StoresLoggerInContext(t *testing.T) {
	service, s := newTestServer(t)

	service.EXPECT().CountItems(gomock.Any()).DoAndReturn(func(ctx context.Context) (int, error) {
		assert.NotSame(t, s.log, logging.FromContext(ctx, s.log), "handlers see a request-scoped logger")
		return 0, nil
	})

	serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
}
