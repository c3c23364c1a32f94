package shared_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/goshen-supply/storefront/internal/shared"
	_ "github.com/goshen-supply/storefront/testing"
)

func newManager(t *testing.T) *shared.SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newManager(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := sm.Load(ctx, req)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.IsAdmin() {
		t.Fatalf("new session must be anonymous")
	}

	sess.SetAdmin(true)
	sess.AddFlash(shared.FlashMessage{Kind: "success", Message: "hi"})

	res := httptest.NewRecorder()
	if err := sm.Commit(ctx, res, req, sess); err != nil {
		t.Fatalf("commit: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(&http.Cookie{Name: sm.CookieName(), Value: sess.ID})
	reloaded, err := sm.Load(ctx, next)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.IsAdmin() {
		t.Fatalf("admin flag must survive the round trip")
	}
	flash := reloaded.PopFlash()
	if flash == nil || flash.Message != "hi" {
		t.Fatalf("expected flash to survive, got %+v", flash)
	}
	if reloaded.PopFlash() != nil {
		t.Fatalf("flash must pop exactly once")
	}

	// Popping marks the session dirty, so the follow-up commit must
	// persist the removal and a later request must see no flash.
	if err := sm.Commit(ctx, httptest.NewRecorder(), next, reloaded); err != nil {
		t.Fatalf("commit after pop: %v", err)
	}
	third := httptest.NewRequest(http.MethodGet, "/", nil)
	third.AddCookie(&http.Cookie{Name: sm.CookieName(), Value: sess.ID})
	final, err := sm.Load(ctx, third)
	if err != nil {
		t.Fatalf("third load: %v", err)
	}
	if final.PopFlash() != nil {
		t.Fatalf("consumed flash must not reappear on later requests")
	}
}

func TestUnknownCookieGetsFreshSessionID(t *testing.T) {
	sm := newManager(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sm.CookieName(), Value: "attacker-chosen-id"})
	sess, err := sm.Load(ctx, req)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.ID == "attacker-chosen-id" {
		t.Fatalf("client-supplied id for an unknown session must not be adopted")
	}

	sess.SetAdmin(true)
	res := httptest.NewRecorder()
	if err := sm.Commit(ctx, res, req, sess); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// The planted id must never resolve to the privileged session.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(&http.Cookie{Name: sm.CookieName(), Value: "attacker-chosen-id"})
	reloaded, err := sm.Load(ctx, next)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsAdmin() {
		t.Fatalf("planted session id must not carry the admin flag")
	}
}

func TestDestroyRemovesSession(t *testing.T) {
	sm := newManager(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := sm.Load(ctx, req)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sess.SetAdmin(true)
	if err := sm.Commit(ctx, httptest.NewRecorder(), req, sess); err != nil {
		t.Fatalf("commit: %v", err)
	}

	sm.Destroy(sess)
	res := httptest.NewRecorder()
	if err := sm.Commit(ctx, res, req, sess); err != nil {
		t.Fatalf("commit destroy: %v", err)
	}

	cookies := res.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge != -1 {
		t.Fatalf("destroy must expire the cookie, got %+v", cookies)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(&http.Cookie{Name: sm.CookieName(), Value: sess.ID})
	reloaded, err := sm.Load(ctx, next)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsAdmin() {
		t.Fatalf("destroyed session must not resolve to admin")
	}
}

func TestCSRFTokenLifecycle(t *testing.T) {
	sm := newManager(t)
	cm := shared.NewCSRFManager("csrfsecret")
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	token, err := cm.EnsureToken(ctx, sess)
	if err != nil {
		t.Fatalf("ensure token: %v", err)
	}
	again, err := cm.EnsureToken(ctx, sess)
	if err != nil {
		t.Fatalf("ensure token again: %v", err)
	}
	if token != again {
		t.Fatalf("token must be stable within a session")
	}

	if err := cm.VerifyToken(ctx, sess, token); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := cm.VerifyToken(ctx, sess, "forged"); err == nil {
		t.Fatalf("forged token must be rejected")
	}
	if err := cm.VerifyToken(ctx, sess, ""); err == nil {
		t.Fatalf("empty token must be rejected")
	}
}
