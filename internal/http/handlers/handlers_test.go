package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shuttle/internal/auth"
	intconfig "shuttle/internal/config"
	"shuttle/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// newTestDB points the shared DB at a sqlmock instance for the duration of a
// test.
func newTestDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = nil
		db.Close()
	})
	return mock
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetTokens(auth.NewTokenService("test-secret", time.Hour))
	return gin.New()
}

// identityAs pretends the request carries a valid session.
func identityAs(userID int64, username string, isStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, userID, username, isStaff)
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
