package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tufail-188/SkinAI-Hub/authentication"
	"github.com/Tufail-188/SkinAI-Hub/models"
)

// UserController handles signup, login and logout.
type UserController struct {
	auth       *authentication.Service
	sessionTTL int
}

func NewUserController(auth *authentication.Service, sessionTTLSeconds int) *UserController {
	return &UserController{auth: auth, sessionTTL: sessionTTLSeconds}
}

func (uc *UserController) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup registers a new user from the form fields and redirects to the
// login page. Duplicate usernames re-render the form with an error and
// leave no partial state behind.
func (uc *UserController) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": "All fields required"})
		return
	}

	if _, err := uc.auth.Register(c.Request.Context(), username, password); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			c.HTML(http.StatusConflict, "signup.html", gin.H{"error": "Username already exists"})
			return
		}
		log.Println("signup failed for user", username, ":", err)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (uc *UserController) LoginPage(c *gin.Context) {
	// An already logged-in user goes straight to the prediction page.
	if token, err := c.Cookie(authentication.SessionCookie); err == nil {
		if _, err := uc.auth.Authorize(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates the form credentials and sets the session cookie.
func (uc *UserController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	token, err := uc.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid username or password"})
			return
		}
		log.Println("login failed for user", username, ":", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	c.SetCookie(authentication.SessionCookie, token, uc.sessionTTL, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout ends the session immediately; the token is useless afterwards even
// though it is still signed correctly.
func (uc *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(authentication.SessionCookie); err == nil {
		if err := uc.auth.End(c.Request.Context(), token); err != nil {
			log.Println("ending session failed:", err)
		}
	}
	c.SetCookie(authentication.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
