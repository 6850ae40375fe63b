package services

import (
	"time"

	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"
	"shuttle/internal/utils"
)

// FarePerSeat is the flat fare used for the dashboard revenue figure.
const FarePerSeat = 50

// Chart is the labels/values pair the admin charts consume.
type Chart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardStats backs the admin dashboard page.
type DashboardStats struct {
	TotalUsers    int
	TotalBookings int
	TotalSeats    int
	TotalRevenue  int
	ZoneStats     []repositories.LabelCount
	RouteStats    []repositories.RouteCount
	Trend         []TrendPoint
	Logs          []models.AuthLog
}

// BookingsOverview aggregates a (possibly filtered) booking set for the
// admin bookings page and the status-refresh response.
type BookingsOverview struct {
	Total        int
	Approved     int
	Pending      int
	Canceled     int
	TotalSeats   int
	ZoneChart    Chart
	PaymentChart Chart
	Recent       []models.Booking
}

// LatestBookingRow is one row of the fetch_latest_bookings polling payload,
// flattened with a human-formatted timestamp.
type LatestBookingRow struct {
	ID            int64  `json:"id"`
	PassengerName string `json:"passenger_name"`
	Zone          string `json:"zone"`
	Pickup        string `json:"pickup"`
	Drop          string `json:"drop"`
	Seats         int    `json:"seats"`
	Payment       string `json:"payment"`
	Status        string `json:"status"`
	Created       string `json:"created"`
}

// LatestCounts are the global status buckets of the polling payload. The
// approved bucket counts Confirmed rows.
type LatestCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Canceled int `json:"canceled"`
}

type LatestPayload struct {
	Bookings     []LatestBookingRow `json:"bookings"`
	Counts       LatestCounts       `json:"counts"`
	ZoneChart    Chart              `json:"zone_chart"`
	PaymentChart Chart              `json:"payment_chart"`
}

type AnalyticsService struct {
	Users    repositories.UserRepository
	Bookings repositories.BookingRepository
	Logs     repositories.AuthLogRepository
}

// Dashboard computes the read-only aggregates the admin dashboard renders.
func (s AnalyticsService) Dashboard(now time.Time) (DashboardStats, error) {
	var out DashboardStats
	var err error

	if out.TotalUsers, err = s.Users.CountAll(); err != nil {
		return out, err
	}
	if out.TotalBookings, err = s.Bookings.Count(repositories.BookingFilter{}); err != nil {
		return out, err
	}
	if out.TotalSeats, err = s.Bookings.SumSeats(repositories.BookingFilter{}); err != nil {
		return out, err
	}
	out.TotalRevenue = out.TotalSeats * FarePerSeat

	if out.ZoneStats, err = s.Bookings.TopZones(3); err != nil {
		return out, err
	}
	if out.RouteStats, err = s.Bookings.TopRoutes(3); err != nil {
		return out, err
	}

	// 7-day trend ending today, oldest first
	out.Trend = make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count, err := s.Bookings.CountOnDate(day)
		if err != nil {
			return out, err
		}
		out.Trend = append(out.Trend, TrendPoint{Date: utils.FormatDayLabel(day), Count: count})
	}

	if out.Logs, err = s.Logs.List("", 10); err != nil {
		return out, err
	}
	return out, nil
}

// Overview aggregates the booking set matched by f.
func (s AnalyticsService) Overview(f repositories.BookingFilter) (BookingsOverview, error) {
	var out BookingsOverview
	var err error

	if out.Total, err = s.Bookings.Count(f); err != nil {
		return out, err
	}
	if out.Approved, err = s.Bookings.CountByStatus(f, models.StatusApproved); err != nil {
		return out, err
	}
	if out.Pending, err = s.Bookings.CountByStatus(f, models.StatusPending); err != nil {
		return out, err
	}
	if out.Canceled, err = s.Bookings.CountByStatus(f, models.StatusCanceled); err != nil {
		return out, err
	}
	if out.TotalSeats, err = s.Bookings.SumSeats(f); err != nil {
		return out, err
	}

	zoneCounts, err := s.Bookings.ZoneCounts(f)
	if err != nil {
		return out, err
	}
	out.ZoneChart = chartFrom(zoneCounts)

	paymentCounts, err := s.Bookings.PaymentCounts(f)
	if err != nil {
		return out, err
	}
	out.PaymentChart = chartFrom(paymentCounts)

	if out.Recent, err = s.Bookings.Recent(f, 10); err != nil {
		return out, err
	}
	return out, nil
}

// Latest builds the fetch_latest_bookings payload over the unfiltered
// collection.
func (s AnalyticsService) Latest() (LatestPayload, error) {
	var out LatestPayload

	recent, err := s.Bookings.Recent(repositories.BookingFilter{}, 10)
	if err != nil {
		return out, err
	}
	out.Bookings = make([]LatestBookingRow, 0, len(recent))
	for _, b := range recent {
		out.Bookings = append(out.Bookings, LatestBookingRow{
			ID:            b.ID,
			PassengerName: b.PassengerName,
			Zone:          b.Zone,
			Pickup:        b.PickupLocation,
			Drop:          b.DropLocation,
			Seats:         b.Seats,
			Payment:       b.PaymentMethod,
			Status:        b.Status,
			Created:       utils.FormatDisplay(b.CreatedAt),
		})
	}

	all := repositories.BookingFilter{}
	if out.Counts.Total, err = s.Bookings.Count(all); err != nil {
		return out, err
	}
	// approved bucket counts Confirmed rows
	if out.Counts.Approved, err = s.Bookings.CountByStatus(all, models.StatusConfirmed); err != nil {
		return out, err
	}
	if out.Counts.Pending, err = s.Bookings.CountByStatus(all, models.StatusPending); err != nil {
		return out, err
	}
	if out.Counts.Canceled, err = s.Bookings.CountByStatus(all, models.StatusCanceled); err != nil {
		return out, err
	}

	zoneCounts, err := s.Bookings.ZoneCounts(all)
	if err != nil {
		return out, err
	}
	out.ZoneChart = chartFrom(zoneCounts)

	paymentCounts, err := s.Bookings.PaymentCounts(all)
	if err != nil {
		return out, err
	}
	out.PaymentChart = chartFrom(paymentCounts)

	return out, nil
}

func chartFrom(counts []repositories.LabelCount) Chart {
	chart := Chart{Labels: []string{}, Values: []int{}}
	for _, c := range counts {
		chart.Labels = append(chart.Labels, c.Label)
		chart.Values = append(chart.Values, c.Count)
	}
	return chart
}
