package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"
	"shuttle/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminBookings renders the bookings dashboard: aggregates over the filtered
// set plus the option lists driving the filter controls.
func AdminBookings(c *gin.Context) {
	zoneFilter := strings.TrimSpace(c.Query("zone"))
	statusFilter := strings.TrimSpace(c.Query("status"))
	dateFilter := strings.TrimSpace(c.Query("date"))

	f := repositories.BookingFilter{Zone: zoneFilter, Status: statusFilter, Date: dateFilter}
	overview, err := analyticsService().Overview(f)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load bookings: %v", err)
		return
	}

	// zone options come from the whole collection, not the filtered set
	zones, err := repositories.BookingRepository{}.DistinctZones()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load zones: %v", err)
		return
	}

	zoneOptions := make([]gin.H, 0, len(zones))
	for _, z := range zones {
		zoneOptions = append(zoneOptions, gin.H{"name": z, "selected": z == zoneFilter})
	}

	statusOptions := make([]gin.H, 0, len(models.StatusChoices))
	for _, choice := range models.StatusChoices {
		statusOptions = append(statusOptions, gin.H{
			"name":     choice.Name,
			"label":    choice.Label,
			"selected": choice.Name == statusFilter,
		})
	}

	dateOptions := make([]gin.H, 0, len(models.DateChoices))
	for _, choice := range models.DateChoices {
		dateOptions = append(dateOptions, gin.H{
			"name":     choice.Name,
			"label":    choice.Label,
			"selected": choice.Name == dateFilter,
		})
	}

	c.HTML(http.StatusOK, "admin_bookings.html", gin.H{
		"zones":                 zones,
		"zone_options":          zoneOptions,
		"status_options":        statusOptions,
		"date_options":          dateOptions,
		"zone_filter":           zoneFilter,
		"status_filter":         statusFilter,
		"date_filter":           dateFilter,
		"total_bookings":        overview.Total,
		"approved_count":        overview.Approved,
		"pending_count":         overview.Pending,
		"cancelled_count":       overview.Canceled,
		"total_seats":           overview.TotalSeats,
		"zone_chart_labels":     overview.ZoneChart.Labels,
		"zone_chart_values":     overview.ZoneChart.Values,
		"payment_chart_labels":  overview.PaymentChart.Labels,
		"payment_chart_values":  overview.PaymentChart.Values,
		"recent_bookings":       overview.Recent,
	})
}

// FetchLatestBookings is the staff polling endpoint over the unfiltered
// collection.
func FetchLatestBookings(c *gin.Context) {
	payload, err := analyticsService().Latest()
	if err != nil {
		ajaxFail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, payload)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CancelBooking sets a booking to Canceled. A missing id surfaces as a plain
// not-found rather than the uniform AJAX failure shape.
func CancelBooking(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		invalidRequest(c)
		return
	}

	id, ok := bookingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
		return
	}

	err := repositories.BookingRepository{}.UpdateStatus(id, models.StatusCanceled)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
			return
		}
		ajaxFail(c, err.Error())
		return
	}

	ajaxOK(c, nil)
}

// ApproveBooking sets a booking to Approved, then redirects back to the
// bookings page. Page flow, unlike its JSON siblings.
func ApproveBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		c.String(http.StatusNotFound, "booking not found")
		return
	}

	err := repositories.BookingRepository{}.UpdateStatus(id, models.StatusApproved)
	if err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusNotFound, "booking not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to approve booking: %v", err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/bookings")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus persists the supplied status string verbatim (no enum
// validation), then returns refreshed aggregates so the caller can update
// its view without a reload.
func UpdateBookingStatus(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		invalidRequest(c)
		return
	}

	id, ok := bookingID(c)
	if !ok {
		ajaxFail(c, "booking not found")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ajaxFail(c, err.Error())
		return
	}

	if err := (repositories.BookingRepository{}).UpdateStatus(id, req.Status); err != nil {
		ajaxFail(c, err.Error())
		return
	}

	overview, err := analyticsService().Overview(repositories.BookingFilter{})
	if err != nil {
		ajaxFail(c, err.Error())
		return
	}

	recent := make([]gin.H, 0, len(overview.Recent))
	for _, b := range overview.Recent {
		recent = append(recent, gin.H{
			"id":              b.ID,
			"passenger_name":  b.PassengerName,
			"zone":            b.Zone,
			"pickup_location": b.PickupLocation,
			"drop_location":   b.DropLocation,
			"seats":           b.Seats,
			"payment_method":  b.PaymentMethod,
			"status":          b.Status,
			"created_at":      utils.FormatDisplay(b.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"counts": gin.H{
			"approved":    overview.Approved,
			"pending":     overview.Pending,
			"canceled":    overview.Canceled,
			"total":       overview.Total,
			"total_seats": overview.TotalSeats,
		},
		"zone_chart":      overview.ZoneChart,
		"payment_chart":   overview.PaymentChart,
		"recent_bookings": recent,
	})
}
