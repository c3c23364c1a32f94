package announcements_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/goshen-supply/storefront/internal/announcements"
	"github.com/goshen-supply/storefront/internal/auth"
	"github.com/goshen-supply/storefront/internal/shared"
	"github.com/goshen-supply/storefront/internal/view"
	_ "github.com/goshen-supply/storefront/testing"
)

type adFixture struct {
	router   http.Handler
	service  *announcements.Service
	sessions *shared.SessionManager
}

func newAdFixture(t *testing.T) *adFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionManager := shared.NewSessionManager(redisClient, "test_session", "secret", time.Hour, false)
	csrfManager := shared.NewCSRFManager("csrfsecret")
	templates, err := view.NewEngine()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	service := announcements.NewService(announcements.NewMemoryRepository())
	handler := announcements.NewHandler(nil, service, templates, csrfManager, auth.Middleware{})

	r := chi.NewRouter()
	handler.MountRoutes(r)
	return &adFixture{router: r, service: service, sessions: sessionManager}
}

func (f *adFixture) do(t *testing.T, admin bool, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	sess, err := f.sessions.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	sess.SetAdmin(admin)

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	res := httptest.NewRecorder()
	f.router.ServeHTTP(res, req)
	return res
}

func TestAnonymousAdMutationIsRejected(t *testing.T) {
	f := newAdFixture(t)

	form := url.Values{}
	form.Set("content", "Big sale")
	res := f.do(t, false, http.MethodPost, "/add_ad", form)

	if res.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.Code)
	}
	if loc := res.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	ads, err := f.service.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("store must be unchanged, got %d ads", len(ads))
	}
}

func TestAdminPostsAd(t *testing.T) {
	f := newAdFixture(t)

	form := url.Values{}
	form.Set("content", "Big sale this weekend")
	res := f.do(t, true, http.MethodPost, "/add_ad", form)

	if res.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.Code)
	}
	if loc := res.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	ads, err := f.service.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ads) != 1 || ads[0].Content != "Big sale this weekend" {
		t.Fatalf("expected the ad to be stored, got %+v", ads)
	}
}

func TestEmptyAdContentRejected(t *testing.T) {
	f := newAdFixture(t)

	form := url.Values{}
	form.Set("content", "")
	res := f.do(t, true, http.MethodPost, "/add_ad", form)

	if res.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", res.Code)
	}
	if loc := res.Header().Get("Location"); loc != "/add_ad" {
		t.Fatalf("expected redirect back to /add_ad, got %q", loc)
	}
	ads, err := f.service.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("store must be unchanged, got %d ads", len(ads))
	}
}

func TestDeleteMissingAdRenders404(t *testing.T) {
	f := newAdFixture(t)

	res := f.do(t, true, http.MethodPost, "/delete_ad/99", url.Values{})
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}
