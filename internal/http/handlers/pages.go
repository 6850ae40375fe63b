package handlers

import (
	"net/http"

	"shuttle/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}

func Operator(c *gin.Context) {
	c.HTML(http.StatusOK, "operator.html", nil)
}

func Track2(c *gin.Context) {
	c.HTML(http.StatusOK, "track2.html", nil)
}

// BookingPage renders the booking form, with the session username when
// authenticated.
func BookingPage(c *gin.Context) {
	username := ""
	if _, name, ok := middleware.CurrentUser(c); ok {
		username = name
	}
	c.HTML(http.StatusOK, "booking.html", gin.H{"username": username})
}

// AuthDashboard requires a session; it currently exposes no log data.
func AuthDashboard(c *gin.Context) {
	if _, _, ok := middleware.CurrentUser(c); !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"logs": []any{}})
}
