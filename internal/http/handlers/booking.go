package handlers

import (
	"net/http"

	"shuttle/internal/http/middleware"
	"shuttle/internal/repositories"
	"shuttle/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateBooking books a ride for the session user. Status is fixed to
// Confirmed server-side; any status in the payload is ignored.
func CreateBooking(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		invalidRequest(c)
		return
	}

	userID, username, ok := middleware.CurrentUser(c)
	if !ok {
		ajaxFail(c, "Login required")
		return
	}

	var in services.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ajaxFail(c, err.Error())
		return
	}

	svc := services.BookingService{Bookings: repositories.BookingRepository{}}
	id, err := svc.Create(userID, username, in)
	if err != nil {
		ajaxFail(c, err.Error())
		return
	}

	ajaxOK(c, gin.H{"booking_id": id})
}
