package handlers

import (
	"net/http"

	"shuttle/internal/domain"
	"shuttle/internal/http/middleware"
	"shuttle/internal/repositories"
	"shuttle/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingETicket streams a PDF receipt for a booking. Owners can fetch
// their own bookings; staff can fetch any.
func GetBookingETicket(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		ajaxFail(c, "Login required")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
		return
	}

	repo := repositories.BookingRepository{}
	booking, err := repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
			return
		}
		ajaxFail(c, err.Error())
		return
	}

	if booking.PassengerID != userID && !middleware.IsStaff(c) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "not your booking"})
		return
	}

	pdfBytes, filename, err := services.DocsService{
		BookingRepo: repo,
		RequestID:   middleware.GetRequestID(c),
	}.GenerateETicket(id)
	if err != nil {
		ajaxFail(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
