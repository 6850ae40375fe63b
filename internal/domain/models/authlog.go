package models

import "time"

const (
	EventLogin       = "login"
	EventLogout      = "logout"
	EventSignup      = "signup"
	EventLoginFailed = "login_failed"
	EventAdminLogin  = "admin_login"
	EventAdminSignup = "admin_signup"
)

// EventChoices lists recognized auth event kinds in display order.
var EventChoices = []Choice{
	{Name: EventLogin, Label: "Login"},
	{Name: EventLogout, Label: "Logout"},
	{Name: EventSignup, Label: "Signup"},
	{Name: EventLoginFailed, Label: "Login Failed"},
	{Name: EventAdminLogin, Label: "Admin Login"},
	{Name: EventAdminSignup, Label: "Admin Signup"},
}

// AuthLog is an append-only auth event record. UserID is 0 when the event
// has no acting user (e.g. a failed login for an unknown username).
type AuthLog struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	UserID    int64     `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}
