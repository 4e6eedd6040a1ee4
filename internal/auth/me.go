package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meshfit/meshfit-backend/internal/users"
)

// UserGetter is implemented by users.Repo.
type UserGetter interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

// MeHandler returns the caller's profile.
func MeHandler(repo UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := UserDBID(c)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
			return
		}

		u, err := repo.Get(c.Request.Context(), uid)
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
	}
}
