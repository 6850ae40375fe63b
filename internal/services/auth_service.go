package services

import (
	"log"
	"strings"
	"time"

	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates users and appends auth_logs entries.
type AuthService struct {
	Users repositories.UserRepository
	Logs  repositories.AuthLogRepository
}

// Login checks a username/password pair. A failed attempt is recorded as a
// login_failed event; the caller records the success event for its flow.
func (s AuthService) Login(username, password string) (models.User, error) {
	u, err := s.Users.GetByUsername(username)
	if err != nil {
		if domain.IsNotFound(err) {
			s.Record(models.EventLoginFailed, 0, username)
			return models.User{}, domain.ValidationError{Msg: "Invalid credentials"}
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.Record(models.EventLoginFailed, u.ID, username)
		return models.User{}, domain.ValidationError{Msg: "Invalid credentials"}
	}

	return u, nil
}

// Signup creates a new user. A taken username yields a conflict error and no
// state change.
func (s AuthService) Signup(username, email, password string, isStaff bool) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "required"}
	}

	exists, err := s.Users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "username"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	id, err := s.Users.Create(username, strings.TrimSpace(email), string(hash), isStaff)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:        id,
		Username:  username,
		Email:     strings.TrimSpace(email),
		IsStaff:   isStaff,
		CreatedAt: time.Now(),
	}, nil
}

// Record appends an auth event. Failing to write a log line never fails the
// auth flow itself.
func (s AuthService) Record(event string, userID int64, username string) {
	if err := s.Logs.Append(event, userID, username); err != nil {
		log.Printf("[AUTH] action=record_event event=%s err=%v", event, err)
	}
}
