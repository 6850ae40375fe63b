package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminDashboard renders the read-only aggregates over the whole booking
// collection.
func AdminDashboard(c *gin.Context) {
	stats, err := analyticsService().Dashboard(time.Now())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load dashboard: %v", err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"total_users":    stats.TotalUsers,
		"total_bookings": stats.TotalBookings,
		"total_seats":    stats.TotalSeats,
		"total_revenue":  stats.TotalRevenue,
		"zone_stats":     stats.ZoneStats,
		"route_stats":    stats.RouteStats,
		"trend_data":     stats.Trend,
		"logs":           stats.Logs,
	})
}
