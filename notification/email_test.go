package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendConfirmationUnconfiguredIsNoop(t *testing.T) {
	s := NewEmailSender("", 0, "", "")
	err := s.SendConfirmation("jane@x.com", "Jane", "Dr. A", "2024-05-01", "10:00", nil)
	assert.NoError(t, err)
}

func TestBuildReceiptPDF(t *testing.T) {
	pdf, err := buildReceiptPDF("Jane", "Dr. A", "2024-05-01", "10:00", "pay_abc")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
