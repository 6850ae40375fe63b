package services

import (
	"testing"
	"time"

	"shuttle/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func analyticsWithMock(t *testing.T) (AnalyticsService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AnalyticsService{
		Users:    repositories.UserRepository{DB: db},
		Bookings: repositories.BookingRepository{DB: db},
		Logs:     repositories.AuthLogRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func bookingColumns() []string {
	return []string{"id", "passenger_id", "passenger_name", "zone", "pickup_location", "drop_location", "seats", "payment_method", "status", "created_at"}
}

func TestLatestZoneChartAndCounts(t *testing.T) {
	svc, mock, closeDB := analyticsWithMock(t)
	defer closeDB()

	now := time.Now()
	recent := sqlmock.NewRows(bookingColumns())
	for i := 0; i < 3; i++ {
		recent.AddRow(int64(10+i), int64(1), "rider", "North", "Gate A", "Campus", 1, "UPI", "Confirmed", now)
	}
	for i := 0; i < 2; i++ {
		recent.AddRow(int64(20+i), int64(1), "rider", "South", "Gate B", "Campus", 1, "UPI", "Confirmed", now)
	}

	mock.ExpectQuery("FROM bookings").WillReturnRows(recent)                                                        // Recent
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))                   // total
	mock.ExpectQuery("SELECT COUNT").WithArgs("Confirmed").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(5)) // approved bucket
	mock.ExpectQuery("SELECT COUNT").WithArgs("Pending").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT").WithArgs("Canceled").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT zone, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"zone", "count"}).AddRow("North", 3).AddRow("South", 2))
	mock.ExpectQuery("SELECT payment_method, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"payment_method", "count"}).AddRow("UPI", 5))

	payload, err := svc.Latest()
	if err != nil {
		t.Fatalf("latest error: %v", err)
	}

	if payload.Counts.Total != 5 {
		t.Fatalf("counts.total = %d, want 5", payload.Counts.Total)
	}
	if len(payload.ZoneChart.Labels) != 2 || payload.ZoneChart.Labels[0] != "North" || payload.ZoneChart.Labels[1] != "South" {
		t.Fatalf("unexpected zone labels: %v", payload.ZoneChart.Labels)
	}
	if payload.ZoneChart.Values[0] != 3 || payload.ZoneChart.Values[1] != 2 {
		t.Fatalf("unexpected zone values: %v", payload.ZoneChart.Values)
	}
	if len(payload.Bookings) != 5 {
		t.Fatalf("expected 5 recent rows, got %d", len(payload.Bookings))
	}
	if payload.Bookings[0].Created == "" {
		t.Fatalf("created timestamp should be formatted")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardRevenueAndTrend(t *testing.T) {
	svc, mock, closeDB := analyticsWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(4))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(6))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats\\), 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"s"}).AddRow(9))
	mock.ExpectQuery("SELECT zone, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"zone", "cnt"}).AddRow("North", 4))
	mock.ExpectQuery("SELECT pickup_location, drop_location, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"p", "d", "cnt"}).AddRow("Gate A", "Campus", 4))
	for i := 0; i < 7; i++ {
		mock.ExpectQuery("DATE\\(created_at\\) = DATE").
			WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(i))
	}
	mock.ExpectQuery("FROM auth_logs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event", "user_id", "username", "timestamp"}).
			AddRow(1, "login", 2, "rider", time.Now()))

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	stats, err := svc.Dashboard(now)
	if err != nil {
		t.Fatalf("dashboard error: %v", err)
	}

	if stats.TotalRevenue != 9*FarePerSeat {
		t.Fatalf("revenue = %d, want %d", stats.TotalRevenue, 9*FarePerSeat)
	}
	if len(stats.Trend) != 7 {
		t.Fatalf("trend should span 7 days, got %d", len(stats.Trend))
	}
	if stats.Trend[0].Date != "Aug 25" || stats.Trend[6].Date != "Aug 31" {
		t.Fatalf("trend should run oldest to newest, got %s..%s", stats.Trend[0].Date, stats.Trend[6].Date)
	}
	if stats.Trend[6].Count != 6 {
		t.Fatalf("today's trend point should be the last, got %d", stats.Trend[6].Count)
	}
	if len(stats.Logs) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(stats.Logs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOverviewEmptySetDefaults(t *testing.T) {
	svc, mock, closeDB := analyticsWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT").WithArgs("Approved").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT").WithArgs("Pending").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT").WithArgs("Canceled").WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats\\), 0\\)").WillReturnRows(sqlmock.NewRows([]string{"s"}).AddRow(0))
	mock.ExpectQuery("SELECT zone, COUNT").WillReturnRows(sqlmock.NewRows([]string{"z", "c"}))
	mock.ExpectQuery("SELECT payment_method, COUNT").WillReturnRows(sqlmock.NewRows([]string{"p", "c"}))
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(bookingColumns()))

	out, err := svc.Overview(repositories.BookingFilter{})
	if err != nil {
		t.Fatalf("overview error: %v", err)
	}
	if out.TotalSeats != 0 {
		t.Fatalf("empty set should sum to 0 seats, got %d", out.TotalSeats)
	}
	if out.ZoneChart.Labels == nil || out.ZoneChart.Values == nil {
		t.Fatalf("charts should marshal as empty arrays, not null")
	}
	if len(out.Recent) != 0 {
		t.Fatalf("expected no recent rows, got %d", len(out.Recent))
	}
}
