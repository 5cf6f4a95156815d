package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

// Currency for all consultation fees.
const Currency = "INR"

// DefaultAmount is the consultation fee, in whole currency units, applied
// when the client does not send one.
const DefaultAmount = 99

// orderAPI and paymentAPI cover the two razorpay endpoints the service
// touches; the real client satisfies both, tests substitute fakes.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Service creates payment orders and verifies client-supplied payment
// references. A Service built without credentials stays usable but reports
// ErrPaymentNotConfigured, so operators can tell "feature disabled" from a
// user mistake.
type Service struct {
	orders   orderAPI
	payments paymentAPI
}

func NewService(keyID, keySecret string) *Service {
	if keyID == "" || keySecret == "" {
		return &Service{}
	}
	client := razorpay.NewClient(keyID, keySecret)
	return &Service{orders: client.Order, payments: client.Payment}
}

func (s *Service) Configured() bool {
	return s.orders != nil
}

// CreateOrder converts the fee to minor units (paise) and creates a capture
// order with the provider. The returned map is the provider's order body,
// handed to the caller unchanged.
func (s *Service) CreateOrder(amount int) (map[string]interface{}, error) {
	if !s.Configured() {
		return nil, models.ErrPaymentNotConfigured
	}
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	data := map[string]interface{}{
		"amount":          amount * 100,
		"currency":        Currency,
		"payment_capture": 1,
	}

	order, err := s.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	return order, nil
}

// VerifyPayment fetches the referenced payment from the provider and accepts
// it only when the money was actually authorized or captured. This closes
// the gap where a fabricated payment id would otherwise be trusted as-is.
func (s *Service) VerifyPayment(paymentID string) error {
	if !s.Configured() {
		return models.ErrPaymentNotConfigured
	}

	body, err := s.payments.Fetch(paymentID, nil, nil)
	if err != nil {
		return fmt.Errorf("fetch payment %s: %w", paymentID, err)
	}

	status, _ := body["status"].(string)
	if status != "captured" && status != "authorized" {
		return models.ErrPaymentNotVerified
	}
	return nil
}
