package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"shuttle/internal/auth"
	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"
	"shuttle/internal/services"

	"github.com/gin-gonic/gin"
)

var tokens *auth.TokenService

// SetTokens wires the session token service used by auth handlers.
func SetTokens(t *auth.TokenService) {
	tokens = t
}

func authService() services.AuthService {
	return services.AuthService{
		Users: repositories.UserRepository{},
		Logs:  repositories.AuthLogRepository{},
	}
}

func analyticsService() services.AnalyticsService {
	return services.AnalyticsService{
		Users:    repositories.UserRepository{},
		Bookings: repositories.BookingRepository{},
		Logs:     repositories.AuthLogRepository{},
	}
}

// ajaxOK sends the uniform AJAX success shape, with optional extra fields.
func ajaxOK(c *gin.Context, extra gin.H) {
	payload := gin.H{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// ajaxFail sends the uniform AJAX failure shape. Error kinds are not
// distinguished at this boundary; message carries whatever text the failure
// produced.
func ajaxFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func invalidRequest(c *gin.Context) {
	ajaxFail(c, "Invalid request")
}

// establishSession issues a session token for u and sets the cookie.
func establishSession(c *gin.Context, u models.User) error {
	token, err := tokens.Generate(u)
	if err != nil {
		return err
	}
	c.SetCookie(auth.SessionCookie, token, int(tokens.TTL().Seconds()), "/", "", false, true)
	return nil
}

func clearSession(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
}

const flashCookie = "shuttle_flash"

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, true)
}

// takeFlash reads and clears the flash cookie.
func takeFlash(c *gin.Context) (Flash, bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return Flash{}, false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return Flash{}, false
	}
	kind, message, found := strings.Cut(decoded, "|")
	if !found {
		return Flash{Kind: "info", Message: decoded}, true
	}
	return Flash{Kind: kind, Message: message}, true
}
