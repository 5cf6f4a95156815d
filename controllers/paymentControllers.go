package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tufail-188/SkinAI-Hub/models"
	"github.com/Tufail-188/SkinAI-Hub/payment"
)

// orderCreator is what this controller needs from the payment service.
type orderCreator interface {
	CreateOrder(amount int) (map[string]interface{}, error)
}

// PaymentController creates the provider-side order a client pays before
// booking. It never confirms a payment itself.
type PaymentController struct {
	payments orderCreator
}

func NewPaymentController(payments orderCreator) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateOrder accepts an optional {"amount": N} body (whole currency units,
// default 99) and returns the provider order as-is.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	var req struct {
		Amount *int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidAmount.Error()})
		return
	}

	amount := payment.DefaultAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	order, err := pc.payments.CreateOrder(amount)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPaymentNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment provider is not configured"})
		case errors.Is(err, models.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidAmount.Error()})
		default:
			log.Println("creating payment order failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
