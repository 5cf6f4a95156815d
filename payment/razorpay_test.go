package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

type fakeOrders struct {
	gotData map[string]interface{}
	resp    map[string]interface{}
	err     error
}

func (f *fakeOrders) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	f.gotData = data
	return f.resp, f.err
}

type fakePayments struct {
	status string
	err    error
}

func (f *fakePayments) Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"id": paymentID, "status": f.status}, nil
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_123"}}
	svc := &Service{orders: orders, payments: &fakePayments{}}

	order, err := svc.CreateOrder(150)
	require.NoError(t, err)

	assert.Equal(t, "order_123", order["id"])
	assert.Equal(t, 15000, orders.gotData["amount"])
	assert.Equal(t, "INR", orders.gotData["currency"])
	assert.Equal(t, 1, orders.gotData["payment_capture"])
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	svc := &Service{orders: &fakeOrders{}, payments: &fakePayments{}}

	for _, amount := range []int{0, -5} {
		_, err := svc.CreateOrder(amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount, "amount %d", amount)
	}
}

func TestServiceWithoutCredentials(t *testing.T) {
	svc := NewService("", "")
	assert.False(t, svc.Configured())

	_, err := svc.CreateOrder(99)
	assert.ErrorIs(t, err, models.ErrPaymentNotConfigured)

	err = svc.VerifyPayment("pay_123")
	assert.ErrorIs(t, err, models.ErrPaymentNotConfigured)
}

func TestVerifyPayment(t *testing.T) {
	for _, status := range []string{"captured", "authorized"} {
		svc := &Service{orders: &fakeOrders{}, payments: &fakePayments{status: status}}
		assert.NoError(t, svc.VerifyPayment("pay_123"), "status %s", status)
	}

	svc := &Service{orders: &fakeOrders{}, payments: &fakePayments{status: "failed"}}
	assert.ErrorIs(t, svc.VerifyPayment("pay_123"), models.ErrPaymentNotVerified)

	svc = &Service{orders: &fakeOrders{}, payments: &fakePayments{err: errors.New("boom")}}
	assert.Error(t, svc.VerifyPayment("pay_123"))
}
