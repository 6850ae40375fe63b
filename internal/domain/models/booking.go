package models

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusApproved  = "Approved"
	StatusCanceled  = "Canceled"
)

// Choice pairs a stored value with its display label, for filter dropdowns.
type Choice struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// StatusChoices lists recognized booking statuses in display order.
// The status column itself is free text; update_booking_status persists
// whatever string the caller sends.
var StatusChoices = []Choice{
	{Name: StatusPending, Label: "Pending"},
	{Name: StatusConfirmed, Label: "Confirmed"},
	{Name: StatusApproved, Label: "Approved"},
	{Name: StatusCanceled, Label: "Canceled"},
}

// DateChoices lists the supported created_at buckets for booking filters.
var DateChoices = []Choice{
	{Name: "today", Label: "Today"},
	{Name: "week", Label: "This Week"},
	{Name: "month", Label: "This Month"},
}

type Booking struct {
	ID             int64     `json:"id"`
	PassengerID    int64     `json:"passenger_id"`
	PassengerName  string    `json:"passenger_name"`
	Zone           string    `json:"zone"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	Seats          int       `json:"seats"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
