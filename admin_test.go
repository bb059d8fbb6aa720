package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/store"
)

func login(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req)
}

func TestAdminLogin(t *testing.T) {
	a, r := newTestApp(t, reposHandler(`[]`))

	w := login(t, r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = login(t, r, "admin", "s3cret")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, a.adminToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAdminRequiresToken(t *testing.T) {
	_, r := newTestApp(t, reposHandler(`[]`))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: "forged"})
	w = serve(r, req)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminStatsReflectLoads(t *testing.T) {
	a, r := newTestApp(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/projects", nil))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: a.adminToken})
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalLoads)
	assert.Equal(t, int64(1), stats.BySource["fallback-error"])
	assert.Equal(t, "GitHub API responded with 403", stats.LastError)
	require.Len(t, stats.RecentEvents, 1)
	assert.Equal(t, 3, stats.RecentEvents[0].ProjectCount)

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: a.adminToken})
	w = serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fallback-error")

	req = httptest.NewRequest(http.MethodGet, "/admin/export/stats", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: a.adminToken})
	w = serve(r, req)
	assert.Equal(t, "attachment; filename=load-stats.json", w.Header().Get("Content-Disposition"))
}

func TestAdminPrune(t *testing.T) {
	a, r := newTestApp(t, reposHandler(`[]`))
	ctx := context.Background()
	require.NoError(t, a.events.RecordLoad(ctx, store.LoadEvent{
		Handle: "alextaylor-ai", Source: "live", Status: "old",
		CreatedAt: time.Now().AddDate(-2, 0, 0),
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/events/prune", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: a.adminToken})
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":1}`, w.Body.String())
}

func TestCleanupOldLoadEvents(t *testing.T) {
	a, _ := newTestApp(t, reposHandler(`[]`))
	ctx := context.Background()
	require.NoError(t, a.events.RecordLoad(ctx, store.LoadEvent{Handle: "h", Source: "live", Status: "old", CreatedAt: time.Now().AddDate(-2, 0, 0)}))
	require.NoError(t, a.events.RecordLoad(ctx, store.LoadEvent{Handle: "h", Source: "live", Status: "new"}))

	a.cleanupOldLoadEvents(ctx)

	events, err := a.events.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].Status)
}

func TestHashIP(t *testing.T) {
	a, _ := newTestApp(t, reposHandler(`[]`))

	h := a.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, a.hashIP("203.0.113.8"))
}
