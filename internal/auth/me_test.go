package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/meshfit/meshfit-backend/internal/users"
)

type fakeGetter map[string]*users.User

func (f fakeGetter) Get(_ context.Context, id string) (*users.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, users.ErrUserNotFound
}

func TestMeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := fakeGetter{"db-alice": {ID: "db-alice", FirebaseUID: "alice"}}

	serve := func(uid string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			if uid != "" {
				c.Set(CtxUserDBID, uid)
			}
			c.Next()
		}, MeHandler(repo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		return w
	}

	w := serve("db-alice")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firebase_uid":"alice"`)

	assert.Equal(t, http.StatusNotFound, serve("db-bob").Code)
	assert.Equal(t, http.StatusUnauthorized, serve("").Code)
}
