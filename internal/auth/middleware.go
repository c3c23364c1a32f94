package auth

import (
	"log/slog"
	"net/http"

	"github.com/goshen-supply/storefront/internal/shared"
)

// Middleware guards mutating routes behind the session admin flag.
type Middleware struct {
	Logger *slog.Logger
}

// RequireAdmin rejects requests whose session has not authenticated as the
// admin. The decision is re-evaluated on every request; nothing is cached.
// Denied requests never reach the wrapped handler: the visitor gets a
// warning flash and a redirect to the login page.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || !sess.IsAdmin() {
			if m.Logger != nil {
				m.Logger.Warn("admin gate denied", slog.String("path", r.URL.Path))
			}
			if sess != nil {
				sess.AddFlash(shared.FlashMessage{Kind: "warning", Message: shared.UserSafeMessage(shared.ErrAdminRequired)})
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
