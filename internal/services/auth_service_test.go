package services

import (
	"testing"
	"time"

	"shuttle/internal/domain"
	"shuttle/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func authServiceWithMock(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		Users: repositories.UserRepository{DB: db},
		Logs:  repositories.AuthLogRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func userRow(t *testing.T, id int64, username, password string, isStaff bool) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_staff", "created_at"}).
		AddRow(id, username, username+"@example.com", string(hash), isStaff, time.Now())
}

func TestLoginSuccess(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, username, email, password_hash, is_staff, created_at").
		WithArgs("rider").
		WillReturnRows(userRow(t, 3, "rider", "pass123", false))

	u, err := svc.Login("rider", "pass123")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if u.ID != 3 || u.Username != "rider" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.IsStaff {
		t.Fatalf("rider should not be staff")
	}
}

func TestLoginWrongPasswordRecordsFailure(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, username, email, password_hash, is_staff, created_at").
		WithArgs("rider").
		WillReturnRows(userRow(t, 3, "rider", "pass123", false))
	mock.ExpectExec("INSERT INTO auth_logs").
		WithArgs("login_failed", int64(3), "rider").
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := svc.Login("rider", "wrong")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginUnknownUserRecordsFailure(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, username, email, password_hash, is_staff, created_at").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_staff", "created_at"}))
	mock.ExpectExec("INSERT INTO auth_logs").
		WithArgs("login_failed", int64(0), "ghost").
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := svc.Login("ghost", "whatever")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupRejectsTakenUsername(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("rider").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Signup("rider", "rider@example.com", "pass123", false)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	// no INSERT expected: taken usernames make no state change
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupCreatesUser(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("newbie").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(8, 1))

	u, err := svc.Signup("newbie", "newbie@example.com", "pass123", false)
	if err != nil {
		t.Fatalf("signup error: %v", err)
	}
	if u.ID != 8 {
		t.Fatalf("expected id 8, got %d", u.ID)
	}
	if u.IsStaff {
		t.Fatalf("self-service signup must create a non-staff user")
	}
}

func TestSignupCreatesStaffUserWhenAsked(t *testing.T) {
	svc, mock, closeDB := authServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("boss").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(9, 1))

	u, err := svc.Signup("boss", "", "pass123", true)
	if err != nil {
		t.Fatalf("signup error: %v", err)
	}
	if !u.IsStaff {
		t.Fatalf("admin signup must create a staff user")
	}
}
