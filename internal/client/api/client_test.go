package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
	"github.com/dmitrijs2005/finkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * helpers
 *************/

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL, 5*time.Second, NewCoordinator(), testLogger())
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, env any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
		"message": "ok",
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": "unauthorized",
	})
}

// handle registers h for path, rejecting other methods — the pre-Go 1.22
// ServeMux has no method patterns.
func handle(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

// fakeBackend simulates the refresh flow: protected endpoints demand the
// current token, the refresh endpoint rotates it.
type fakeBackend struct {
	mu            sync.Mutex
	validToken    string
	refreshTo     string
	refreshFails  bool
	logoutRejects bool
	refreshDelay  time.Duration
	refreshCalls  int32
	totalRequests int32
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	handle(mux, http.MethodPost, "/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.totalRequests, 1)
		atomic.AddInt32(&b.refreshCalls, 1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		if b.refreshFails {
			writeUnauthorized(w)
			return
		}
		b.mu.Lock()
		b.validToken = b.refreshTo
		b.mu.Unlock()
		writeSuccess(w, map[string]any{"accessToken": b.refreshTo})
	})

	handle(mux, http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.totalRequests, 1)
		writeSuccess(w, map[string]any{
			"user":        map[string]any{"id": "u1", "email": "a@b.c", "name": "Al"},
			"accessToken": "fresh",
		})
	})

	handle(mux, http.MethodPost, "/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.totalRequests, 1)
		if b.logoutRejects {
			writeEnvelope(w, http.StatusOK, map[string]any{"success": false, "message": "logout rejected"})
			return
		}
		writeSuccess(w, map[string]any{})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.totalRequests, 1)
		b.mu.Lock()
		valid := "Bearer " + b.validToken
		b.mu.Unlock()
		if r.Header.Get("Authorization") != valid {
			writeUnauthorized(w)
			return
		}
		switch r.URL.Path {
		case "/expenses":
			writeSuccess(w, map[string]any{"items": []any{}, "total": 0, "page": 1, "totalPages": 1})
		case "/expenses/stats":
			writeSuccess(w, map[string]any{"total": 12.5, "count": 1})
		case "/auth/me":
			writeSuccess(w, map[string]any{"user": map[string]any{"id": "u1", "email": "a@b.c", "name": "Al"}})
		default:
			writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
		}
	})

	return mux
}

/*************
 * refresh flow
 *************/

func TestConcurrent401s_ShareOneRefresh(t *testing.T) {
	backend := &fakeBackend{validToken: "good", refreshTo: "good", refreshDelay: 100 * time.Millisecond}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAccessToken("expired")

	var wg sync.WaitGroup
	var expensesErr, statsErr error
	var expenses *Envelope[models.Paged[models.Expense]]
	var stats *Envelope[models.Stats]

	wg.Add(2)
	go func() {
		defer wg.Done()
		expenses, expensesErr = c.ListExpenses(context.Background(), models.ListFilter{})
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = c.ExpenseStats(context.Background(), models.StatsRange{})
	}()
	wg.Wait()

	// Neither caller observed the 401: both got their envelopes after a
	// single shared refresh.
	require.NoError(t, expensesErr)
	require.NoError(t, statsErr)
	assert.True(t, expenses.Success)
	assert.True(t, stats.Success)
	assert.InDelta(t, 12.5, stats.Data.Total, 0.001)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
	assert.False(t, c.Coordinator().Invalid())
}

func TestRefreshFailure_InvalidatesAndBroadcastsOnce(t *testing.T) {
	backend := &fakeBackend{validToken: "good", refreshFails: true, refreshDelay: 50 * time.Millisecond}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAccessToken("expired")

	var broadcasts int32
	c.Coordinator().OnInvalidated(func() { atomic.AddInt32(&broadcasts, 1) })

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = c.ListExpenses(context.Background(), models.ListFilter{})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = c.ExpenseStats(context.Background(), models.StatsRange{})
	}()
	wg.Wait()

	for _, err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReauthRequired)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&broadcasts))
	assert.True(t, c.Coordinator().Invalid())
}

func TestInvalidState_RejectsWithoutNetworkUntilReset(t *testing.T) {
	backend := &fakeBackend{validToken: "good", refreshFails: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAccessToken("expired")

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrReauthRequired)

	before := atomic.LoadInt32(&backend.totalRequests)

	// Terminal state: no network call is made.
	_, err = c.Me(context.Background())
	require.ErrorIs(t, err, ErrReauthRequired)
	_, err = c.ListExpenses(context.Background(), models.ListFilter{})
	require.ErrorIs(t, err, ErrReauthRequired)
	assert.Equal(t, before, atomic.LoadInt32(&backend.totalRequests))

	// Login resets the coordinator before its network call.
	env, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.False(t, c.Coordinator().Invalid())
}

func TestRefreshEndpoint401_IsNeverRetried(t *testing.T) {
	backend := &fakeBackend{validToken: "good", refreshFails: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var broadcasts int32
	c.Coordinator().OnInvalidated(func() { atomic.AddInt32(&broadcasts, 1) })

	_, err := c.Refresh(context.Background())
	require.ErrorIs(t, err, ErrReauthRequired)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&broadcasts))
	assert.True(t, c.Coordinator().Invalid())

	// No further network attempt before reset.
	before := atomic.LoadInt32(&backend.totalRequests)
	_, err = c.Me(context.Background())
	require.ErrorIs(t, err, ErrReauthRequired)
	assert.Equal(t, before, atomic.LoadInt32(&backend.totalRequests))
}

func TestSecond401AfterRetry_PropagatesAsAPIError(t *testing.T) {
	// Refresh succeeds but the resource keeps answering 401: the request
	// is retried exactly once and the second 401 reaches the caller.
	var refreshCalls, resourceCalls int32
	mux := http.NewServeMux()
	handle(mux, http.MethodPost, "/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		writeSuccess(w, map[string]any{"accessToken": "T2"})
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&resourceCalls, 1)
		writeUnauthorized(w)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.ListCategories(context.Background(), models.ListFilter{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&resourceCalls))
	assert.False(t, c.Coordinator().Invalid(), "a propagated 401 is a normal failure, not a terminal one")
}

/*************
 * envelope & error mapping
 *************/

func TestCreateExpense_RoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	handle(mux, http.MethodPost, "/expenses", func(w http.ResponseWriter, r *http.Request) {
		var in models.ExpenseInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeSuccess(w, models.Expense{
			ID:          "e1",
			Amount:      in.Amount,
			Description: in.Description,
			CategoryID:  in.CategoryID,
			Date:        in.Date,
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	env, err := c.CreateExpense(context.Background(), models.ExpenseInput{
		Amount:      42.50,
		Description: "Lunch",
		CategoryID:  "c1",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)
	require.True(t, env.Success)
	assert.Equal(t, 42.50, env.Data.Amount)
	assert.Equal(t, "Lunch", env.Data.Description)
	assert.Equal(t, "c1", env.Data.CategoryID)
}

func TestValidationFailure_ReturnsEnvelopeWithFieldErrors(t *testing.T) {
	mux := http.NewServeMux()
	handle(mux, http.MethodPost, "/expenses", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "validation failed",
			"errors":  map[string][]string{"amount": {"must be positive"}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	env, err := c.CreateExpense(context.Background(), models.ExpenseInput{Amount: -1})
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, "validation failed", env.Message)
	assert.Equal(t, []string{"must be positive"}, env.Errors["amount"])
}

func TestNonAuthFailures_BecomeAPIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{name: "forbidden", status: http.StatusForbidden, message: "forbidden"},
		{name: "not found", status: http.StatusNotFound, message: "no such expense"},
		{name: "server fault", status: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, map[string]any{"success": false, "message": tt.message})
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)

			_, err := c.ListExpenses(context.Background(), models.ListFilter{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestNetworkFailure_IsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := newTestClient(t, srv.URL)

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestListFilter_IsEncodedAsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeSuccess(w, map[string]any{"items": []any{}, "total": 0, "page": 1, "totalPages": 1})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.ListExpenses(context.Background(), models.ListFilter{
		Page: 2, Limit: 10, From: "2024-01-01", To: "2024-02-01", CategoryID: "c1", Search: "lunch",
	})
	require.NoError(t, err)
	for _, part := range []string{"page=2", "limit=10", "from=2024-01-01", "to=2024-02-01", "categoryId=c1", "search=lunch"} {
		assert.Contains(t, gotQuery, part)
	}
}

func TestOutboundInterceptor_TagsRequests(t *testing.T) {
	ids := make(map[string]bool)
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids[r.Header.Get("X-Request-ID")] = true
		mu.Unlock()
		writeSuccess(w, map[string]any{"user": map[string]any{"id": "u1"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	for i := 0; i < 3; i++ {
		_, err := c.Me(context.Background())
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, ids, 3, "every request carries a distinct request id")
	for id := range ids {
		assert.NotEmpty(t, id)
	}
}

func TestLoginAndRegister_ResetBeforeNetworkCall(t *testing.T) {
	backend := &fakeBackend{validToken: "good", refreshFails: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAccessToken("expired")

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrReauthRequired)
	require.True(t, c.Coordinator().Invalid())

	env, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.True(t, env.Success)
	assert.Equal(t, "a@b.c", env.Data.User.Email)
	assert.Equal(t, "fresh", c.accessToken())
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Status: 404, Message: "gone"}
	assert.Equal(t, "api error: status 404: gone", err.Error())
	err = &APIError{Status: 500}
	assert.Equal(t, "api error: status 500", err.Error())
	assert.False(t, errors.Is(fmt.Errorf("wrap: %w", err), ErrReauthRequired))
}

func TestLogout_ClearsTokenOnlyOnServerConfirmation(t *testing.T) {
	backend := &fakeBackend{validToken: "fresh", refreshTo: "fresh", logoutRejects: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "fresh", c.accessToken())

	// A rejected logout must leave the credential usable.
	env, err := c.Logout(context.Background())
	require.NoError(t, err)
	require.False(t, env.Success)
	assert.Equal(t, "fresh", c.accessToken())

	_, err = c.Me(context.Background())
	require.NoError(t, err)

	backend.logoutRejects = false
	env, err = c.Logout(context.Background())
	require.NoError(t, err)
	require.True(t, env.Success)
	assert.Equal(t, "", c.accessToken())
}
