package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meshfit/meshfit-backend/internal/users"
)

// UserEnsurer is implemented by users.Repo.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, u users.UpsertUser) (string, error)
}

// WithUser trusts the X-User-* headers and falls back to "demo-user".
// Use this ONLY for development/testing, when no Firebase credentials are configured.
func WithUser(userRepo UserEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		fuid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if fuid == "" {
			fuid = "demo-user"
		}

		ensure(c, userRepo, users.UpsertUser{
			FirebaseUID: fuid,
			Email:       c.GetHeader("X-User-Email"),
			DisplayName: c.GetHeader("X-User-Name"),
			PhotoURL:    c.GetHeader("X-User-Photo"),
		})
	}
}

// EnsureUser maps the verified Firebase UID onto a users row. It must run after
// middleware.FirebaseAuthMiddleware.
func EnsureUser(userRepo UserEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		fuid := UserFirebaseUID(c)
		if fuid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
			return
		}

		ensure(c, userRepo, users.UpsertUser{
			FirebaseUID: fuid,
			Email:       c.GetString(CtxEmail),
		})
	}
}

func ensure(c *gin.Context, userRepo UserEnsurer, u users.UpsertUser) {
	uid, err := userRepo.EnsureUser(c.Request.Context(), u)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
		return
	}

	c.Set(CtxFirebaseUID, u.FirebaseUID)
	c.Set(CtxUserDBID, uid)
	c.Next()
}
