package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
)

type contextKey string

const (
	ownerContextKey contextKey = "owner"

	tokenCookiePrefix = "wt_"
)

// TokenCookieName returns the cookie holding the owner token for a game
func TokenCookieName(id model.GameID) string {
	return tokenCookiePrefix + string(id)
}

// SetGameToken remembers the owner token for a game in this browser
func SetGameToken(w http.ResponseWriter, id model.GameID, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName(id),
		Value:    token,
		Path:     "/games/" + string(id),
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IsOwner reports whether the request carried a valid owner token
func IsOwner(ctx context.Context) bool {
	owner, _ := ctx.Value(ownerContextKey).(bool)
	return owner
}

// OptionalOwner marks the request as coming from the game's owner when the
// token cookie checks out
func OptionalOwner(controller game.ControllerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := checkOwner(r, controller)
			ctx := context.WithValue(r.Context(), ownerContextKey, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Owner returns middleware that requires the game's owner token.
// Other visitors are sent back to the read-only game page.
func Owner(controller game.ControllerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checkOwner(r, controller) {
				SetFlash(w, "error", "Only the player who started this game can do that")
				http.Redirect(w, r, "/games/"+mux.Vars(r)["id"], http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ownerContextKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func checkOwner(r *http.Request, controller game.ControllerInterface) bool {
	id := model.GameID(mux.Vars(r)["id"])
	cookie, err := r.Cookie(TokenCookieName(id))
	if err != nil {
		return false
	}
	return controller.Authorize(r.Context(), id, cookie.Value) == nil
}
