package services

import (
	"strings"

	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"
)

// BookingInput is the create_booking payload. Omitted fields fall back to
// their documented defaults.
type BookingInput struct {
	Zone           string `json:"zone"`
	PickupLocation string `json:"pickup_location"`
	DropLocation   string `json:"drop_location"`
	Seats          int    `json:"seats"`
	PaymentMethod  string `json:"payment_method"`
	PassengerName  string `json:"passenger_name"`
}

type BookingService struct {
	Bookings repositories.BookingRepository
}

// Create books a ride owned by the given user and returns the new booking id.
// Status is always Confirmed at creation; callers cannot supply one.
func (s BookingService) Create(userID int64, username string, in BookingInput) (int64, error) {
	if in.Seats <= 0 {
		in.Seats = 1
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		in.PaymentMethod = "UPI"
	}
	if strings.TrimSpace(in.PassengerName) == "" {
		in.PassengerName = username
	}

	return s.Bookings.Create(models.Booking{
		PassengerID:    userID,
		PassengerName:  in.PassengerName,
		Zone:           in.Zone,
		PickupLocation: in.PickupLocation,
		DropLocation:   in.DropLocation,
		Seats:          in.Seats,
		PaymentMethod:  in.PaymentMethod,
		Status:         models.StatusConfirmed,
	})
}
