package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "shuttle/internal/config"
	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
)

// BookingFilter narrows booking queries. Zero-value fields are not applied;
// present fields combine with AND. Date is one of "", "today", "week",
// "month", computed relative to Now (time.Now when zero).
type BookingFilter struct {
	Zone   string
	Status string
	Date   string
	Now    time.Time
}

func (f BookingFilter) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

// clause renders the WHERE fragment (leading " WHERE ..." or "") and its args.
func (f BookingFilter) clause() (string, []any) {
	conds := []string{}
	args := []any{}

	if f.Zone != "" {
		conds = append(conds, "zone = ?")
		args = append(args, f.Zone)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	switch f.Date {
	case "today":
		conds = append(conds, "DATE(created_at) = DATE(?)")
		args = append(args, f.now())
	case "week":
		conds = append(conds, "created_at >= ?")
		args = append(args, f.now().AddDate(0, 0, -7))
	case "month":
		conds = append(conds, "created_at >= ?")
		args = append(args, f.now().AddDate(0, 0, -30))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// LabelCount is one row of a group-by-count aggregate.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RouteCount counts bookings sharing a pickup/drop pair.
type RouteCount struct {
	PickupLocation string `json:"pickup_location"`
	DropLocation   string `json:"drop_location"`
	Count          int    `json:"count"`
}

// BookingRepository wraps DB access for the bookings table, including the
// group-by aggregates behind the admin dashboards.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a booking and returns its id. created_at is set by the DB.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
        INSERT INTO bookings
            (passenger_id, passenger_name, zone, pickup_location, drop_location, seats, payment_method, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
    `, b.PassengerID, b.PassengerName, b.Zone, b.PickupLocation, b.DropLocation, b.Seats, b.PaymentMethod, b.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
        SELECT id, passenger_id, passenger_name, zone, pickup_location, drop_location, seats, payment_method, status, created_at
        FROM bookings
        WHERE id = ?
    `, id).Scan(
		&b.ID,
		&b.PassengerID,
		&b.PassengerName,
		&b.Zone,
		&b.PickupLocation,
		&b.DropLocation,
		&b.Seats,
		&b.PaymentMethod,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// UpdateStatus persists a status string verbatim. Blind last-write-wins;
// there is no version check against concurrent edits.
func (r BookingRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// distinguish a missing row from a no-op write to the same status
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

func (r BookingRepository) Count(f BookingFilter) (int, error) {
	where, args := f.clause()
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count)
	return count, err
}

// CountByStatus counts rows matching the filter AND the given status. The
// status condition stacks on top of any status already in the filter, the
// same way chained filters compose.
func (r BookingRepository) CountByStatus(f BookingFilter, status string) (int, error) {
	where, args := f.clause()
	if where == "" {
		where = " WHERE status = ?"
	} else {
		where += " AND status = ?"
	}
	args = append(args, status)

	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count)
	return count, err
}

func (r BookingRepository) SumSeats(f BookingFilter) (int, error) {
	where, args := f.clause()
	var total int
	err := r.db().QueryRow(`SELECT COALESCE(SUM(seats), 0) FROM bookings`+where, args...).Scan(&total)
	return total, err
}

func (r BookingRepository) ZoneCounts(f BookingFilter) ([]LabelCount, error) {
	where, args := f.clause()
	return r.labelCounts(`SELECT zone, COUNT(id) FROM bookings`+where+` GROUP BY zone`, args)
}

func (r BookingRepository) PaymentCounts(f BookingFilter) ([]LabelCount, error) {
	where, args := f.clause()
	return r.labelCounts(`SELECT payment_method, COUNT(id) FROM bookings`+where+` GROUP BY payment_method`, args)
}

// TopZones returns the most-booked zones, count descending.
func (r BookingRepository) TopZones(limit int) ([]LabelCount, error) {
	return r.labelCounts(`SELECT zone, COUNT(id) AS cnt FROM bookings GROUP BY zone ORDER BY cnt DESC LIMIT ?`, []any{limit})
}

func (r BookingRepository) labelCounts(query string, args []any) ([]LabelCount, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LabelCount{}
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// TopRoutes returns the most frequent pickup/drop pairs, count descending.
func (r BookingRepository) TopRoutes(limit int) ([]RouteCount, error) {
	rows, err := r.db().Query(`
        SELECT pickup_location, drop_location, COUNT(id) AS cnt
        FROM bookings
        GROUP BY pickup_location, drop_location
        ORDER BY cnt DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RouteCount{}
	for rows.Next() {
		var rc RouteCount
		if err := rows.Scan(&rc.PickupLocation, &rc.DropLocation, &rc.Count); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// CountOnDate counts bookings created on the given calendar date.
func (r BookingRepository) CountOnDate(day time.Time) (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE DATE(created_at) = DATE(?)`, day).Scan(&count)
	return count, err
}

// Recent returns the newest matching bookings, created_at descending.
func (r BookingRepository) Recent(f BookingFilter, limit int) ([]models.Booking, error) {
	where, args := f.clause()
	args = append(args, limit)

	rows, err := r.db().Query(`
        SELECT id, passenger_id, passenger_name, zone, pickup_location, drop_location, seats, payment_method, status, created_at
        FROM bookings`+where+`
        ORDER BY created_at DESC
        LIMIT ?
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.PassengerID,
			&b.PassengerName,
			&b.Zone,
			&b.PickupLocation,
			&b.DropLocation,
			&b.Seats,
			&b.PaymentMethod,
			&b.Status,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// DistinctZones lists every zone value system-wide, unfiltered.
func (r BookingRepository) DistinctZones() ([]string, error) {
	rows, err := r.db().Query(`SELECT DISTINCT zone FROM bookings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []string{}
	for rows.Next() {
		var z string
		if err := rows.Scan(&z); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}
