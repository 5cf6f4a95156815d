package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Tufail-188/SkinAI-Hub/models"
	"github.com/Tufail-188/SkinAI-Hub/notification"
	"github.com/Tufail-188/SkinAI-Hub/storage"
)

// paymentVerifier is what the booking flow needs from the payment service.
type paymentVerifier interface {
	Configured() bool
	VerifyPayment(paymentID string) error
}

// BookingController writes the appointment ledger. The confirmation mail is
// a post-commit hook: its error is logged and dropped, never surfaced to
// the caller and never able to roll the booking back.
type BookingController struct {
	appointments *storage.AppointmentStore
	payments     paymentVerifier
	sender       notification.Sender
	validate     *validator.Validate
}

func NewBookingController(appointments *storage.AppointmentStore, payments paymentVerifier, sender notification.Sender) *BookingController {
	return &BookingController{
		appointments: appointments,
		payments:     payments,
		sender:       sender,
		validate:     validator.New(),
	}
}

type bookingRequest struct {
	Doctor    string `json:"doctor" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	PaymentID string `json:"payment_id"`
}

func (r *bookingRequest) trim() {
	r.Doctor = strings.TrimSpace(r.Doctor)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.PaymentID = strings.TrimSpace(r.PaymentID)
}

// SaveAppointment validates the booking, verifies a supplied payment
// reference when the provider is configured, and performs the single atomic
// insert before firing the confirmation mail.
func (bc *BookingController) SaveAppointment(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	req.trim()
	if err := bc.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": missingFieldMessage(err)})
		return
	}

	if req.PaymentID != "" && bc.payments.Configured() {
		if err := bc.payments.VerifyPayment(req.PaymentID); err != nil {
			log.Println("payment verification failed for reference", req.PaymentID, ":", err)
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": models.ErrPaymentNotVerified.Error()})
			return
		}
	}

	appt := models.Appointment{
		DoctorName:      req.Doctor,
		PatientName:     req.Name,
		PatientEmail:    req.Email,
		PatientPhone:    req.Phone,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
	}
	if req.PaymentID != "" {
		ref := req.PaymentID
		appt.PaymentReference = &ref
	}

	if err := bc.appointments.Create(c.Request.Context(), &appt); err != nil {
		log.Printf("booking insert failed (doctor=%s patient=%s date=%s time=%s): %v",
			req.Doctor, req.Name, req.Date, req.Time, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save appointment"})
		return
	}

	// Best-effort, post-commit. The booking already succeeded.
	if err := bc.sender.SendConfirmation(appt.PatientEmail, appt.PatientName, appt.DoctorName,
		appt.AppointmentDate, appt.AppointmentTime, appt.PaymentReference); err != nil {
		log.Println("confirmation mail to", appt.PatientEmail, "failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// missingFieldMessage names the first missing field for the caller.
func missingFieldMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "missing required field: " + strings.ToLower(verrs[0].Field())
	}
	return "missing required field"
}
