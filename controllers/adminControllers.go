package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tufail-188/SkinAI-Hub/storage"
)

// AdminController exposes read-only views over the stored rows for admin
// review. It never mutates anything.
type AdminController struct {
	appointments *storage.AppointmentStore
	users        *storage.UserStore
}

func NewAdminController(appointments *storage.AppointmentStore, users *storage.UserStore) *AdminController {
	return &AdminController{appointments: appointments, users: users}
}

// ListAppointments returns every booking, newest first.
func (ac *AdminController) ListAppointments(c *gin.Context) {
	appts, err := ac.appointments.ListNewestFirst(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

type userView struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUsers returns registered users without their password hashes.
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
	}
	c.JSON(http.StatusOK, views)
}
