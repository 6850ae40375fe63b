package handlers

import (
	"net/http"
	"strings"

	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
	"shuttle/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// AdminLogin is a page flow: form POST in, flash + redirect out. Only valid
// credentials on a staff account establish a session.
func AdminLogin(c *gin.Context) {
	if middleware.IsStaff(c) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	if c.Request.Method == http.MethodPost {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")

		svc := authService()
		user, err := svc.Login(username, password)
		if err != nil || !user.IsStaff {
			setFlash(c, "error", "Invalid admin credentials or not authorized")
			c.Redirect(http.StatusFound, "/admin/login")
			return
		}

		if err := establishSession(c, user); err != nil {
			setFlash(c, "error", err.Error())
			c.Redirect(http.StatusFound, "/admin/login")
			return
		}
		svc.Record(models.EventAdminLogin, user.ID, user.Username)
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	flash, _ := takeFlash(c)
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"flash": flash})
}

// AdminSignup creates a staff user via a page flow.
func AdminSignup(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")

		svc := authService()
		user, err := svc.Signup(username, "", password, true)
		if err != nil {
			if domain.IsConflict(err) {
				setFlash(c, "error", "Admin username already exists")
			} else {
				setFlash(c, "error", err.Error())
			}
			c.Redirect(http.StatusFound, "/admin/signup")
			return
		}

		svc.Record(models.EventAdminSignup, user.ID, user.Username)
		setFlash(c, "success", "Admin created successfully! Please log in.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	flash, _ := takeFlash(c)
	c.HTML(http.StatusOK, "admin_signup.html", gin.H{"flash": flash})
}
