package api

import (
	"log"
	stdhttp "net/http"

	"shuttle/internal/auth"
	intconfig "shuttle/internal/config"
	h "shuttle/internal/http/handlers"
	"shuttle/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	tokens := auth.NewTokenService(env.SessionSecret, env.SessionTTL)
	h.SetTokens(tokens)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Session(tokens))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.LoadHTMLGlob(env.TemplateGlob)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Public pages
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/track2", h.Track2)
	r.GET("/operator", h.Operator)
	r.GET("/booking", h.BookingPage)
	r.GET("/dashboard", h.AuthDashboard)
	r.GET("/logout", h.Logout)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// AJAX auth; handlers reject anything but POST themselves
		api.Any("/login", h.Login)
		api.Any("/signup", h.Signup)
		api.GET("/me", h.Me)

		api.Any("/bookings", h.CreateBooking)
		api.GET("/bookings/:id/eticket", h.GetBookingETicket)
	}

	admin := r.Group("/admin")
	{
		admin.Any("/login", h.AdminLogin)
		admin.Any("/signup", h.AdminSignup)

		pages := admin.Group("", middleware.RequireStaffPage())
		pages.GET("/dashboard", h.AdminDashboard)
		pages.GET("/logs", h.AdminLogs)
		pages.GET("/bookings", h.AdminBookings)
		pages.GET("/bookings/:id/approve", h.ApproveBooking)

		ajax := admin.Group("/api", middleware.RequireStaffJSON())
		ajax.GET("/bookings/latest", h.FetchLatestBookings)
		ajax.Any("/bookings/:id/cancel", h.CancelBooking)
		ajax.Any("/bookings/:id/status", h.UpdateBookingStatus)
	}

	h.SetRouter(r)
	return r
}
