package middleware

import (
	"net/http"

	"shuttle/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxIsStaff  = "isStaff"
)

// Session resolves the session cookie into per-request identity when present.
// It never rejects on its own; the guards below enforce access.
func Session(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err == nil && token != "" {
			if claims, err := tokens.Validate(token); err == nil {
				SetIdentity(c, claims.UserID, claims.Username, claims.IsStaff)
			}
		}
		c.Next()
	}
}

// SetIdentity attaches an authenticated identity to the request context.
func SetIdentity(c *gin.Context, userID int64, username string, isStaff bool) {
	c.Set(ctxUserID, userID)
	c.Set(ctxUsername, username)
	c.Set(ctxIsStaff, isStaff)
}

// CurrentUser returns the session identity, if any.
func CurrentUser(c *gin.Context) (int64, string, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, "", false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		return 0, "", false
	}
	return id, c.GetString(ctxUsername), true
}

func IsStaff(c *gin.Context) bool {
	return c.GetBool(ctxIsStaff)
}

// RequireStaffPage guards page routes. Non-staff requests are sent to the
// admin login page before handler logic runs.
func RequireStaffPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaffJSON guards AJAX routes with a 403 payload.
func RequireStaffJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Staff access required",
			})
			return
		}
		c.Next()
	}
}
