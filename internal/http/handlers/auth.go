package handlers

import (
	"net/http"

	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
	"shuttle/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles the AJAX login flow: JSON in, {success, message?} out, with
// a session cookie on success.
func Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		invalidRequest(c)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ajaxFail(c, err.Error())
		return
	}

	svc := authService()
	user, err := svc.Login(req.Username, req.Password)
	if err != nil {
		if domain.IsValidation(err) {
			ajaxFail(c, "Invalid credentials")
			return
		}
		ajaxFail(c, err.Error())
		return
	}

	if err := establishSession(c, user); err != nil {
		ajaxFail(c, err.Error())
		return
	}
	svc.Record(models.EventLogin, user.ID, user.Username)
	ajaxOK(c, nil)
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a non-staff user and logs it straight in.
func Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		invalidRequest(c)
		return
	}

	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ajaxFail(c, err.Error())
		return
	}

	svc := authService()
	user, err := svc.Signup(req.Username, req.Email, req.Password, false)
	if err != nil {
		if domain.IsConflict(err) {
			ajaxFail(c, "Username already taken")
			return
		}
		ajaxFail(c, err.Error())
		return
	}

	if err := establishSession(c, user); err != nil {
		ajaxFail(c, err.Error())
		return
	}
	svc.Record(models.EventSignup, user.ID, user.Username)
	ajaxOK(c, nil)
}

// Me reports the authenticated user behind the current session.
func Me(c *gin.Context) {
	_, username, ok := middleware.CurrentUser(c)
	if !ok {
		ajaxFail(c, "Login required")
		return
	}

	user, err := authService().Users.GetByUsername(username)
	if err != nil {
		ajaxFail(c, err.Error())
		return
	}
	ajaxOK(c, gin.H{"user": user.ToPublic()})
}

// Logout tears the session down unconditionally and goes home.
func Logout(c *gin.Context) {
	if id, name, ok := middleware.CurrentUser(c); ok {
		authService().Record(models.EventLogout, id, name)
	}
	clearSession(c)
	c.Redirect(http.StatusFound, "/")
}
