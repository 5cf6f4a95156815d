package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Tufail-188/SkinAI-Hub/authentication"
	"github.com/Tufail-188/SkinAI-Hub/controllers"
)

// Controllers bundles the handlers wired into the engine.
type Controllers struct {
	Users       *controllers.UserController
	Predictions *controllers.PredictionController
	Payments    *controllers.PaymentController
	Bookings    *controllers.BookingController
	Admin       *controllers.AdminController
}

// SetupRouter builds the gin engine. The session gate wraps every protected
// route: HTML pages redirect to /login, API routes answer 401.
func SetupRouter(auth *authentication.Service, ctrl Controllers, uploadDir string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// public
	r.GET("/signup", ctrl.Users.SignupPage)
	r.POST("/signup", ctrl.Users.Signup)
	r.GET("/login", ctrl.Users.LoginPage)
	r.POST("/login", ctrl.Users.Login)
	r.GET("/logout", ctrl.Users.Logout)

	// session-gated pages
	pages := r.Group("/")
	pages.Use(authentication.RequirePage(auth))
	{
		pages.GET("/", ctrl.Predictions.Index)
		pages.POST("/", ctrl.Predictions.Predict)
		pages.Static("/uploads", uploadDir)
	}

	// session-gated API
	api := r.Group("/")
	api.Use(authentication.RequireJSON(auth))
	{
		api.POST("/create_order", ctrl.Payments.CreateOrder)
		api.POST("/save_appointment", ctrl.Bookings.SaveAppointment)
	}

	// Read-only admin views; no gate, matching the original tooling.
	admin := r.Group("/admin")
	{
		admin.GET("/appointments", ctrl.Admin.ListAppointments)
		admin.GET("/users", ctrl.Admin.ListUsers)
	}

	return r
}
